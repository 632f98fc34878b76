package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"barnsight.xyz/pigsty-monitor-service/pkg/backend"
	"barnsight.xyz/pigsty-monitor-service/pkg/poller"
)

type RestfulServer struct {
	Server           *gin.Engine
	Source           backend.Source
	Holder           *poller.Holder
	Tokens           *TokenIssuer
	RateLimiterStore *RateLimiterStore
}

func (rs *RestfulServer) SetLimiter(username string, userRate float64, userBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(username, rate.Limit(userRate), userBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.POST("/api/auth/login", rs.Login)

	api := rs.Server.Group("/api", rs.RequireSession(), rs.RateLimit())
	{
		api.GET("/dashboard", rs.GetDashboard)
		api.GET("/alerts", rs.GetAlerts)
		api.POST("/alerts/:alert_id/acknowledge", rs.AcknowledgeAlert)
	}

	admin := api.Group("", rs.RequireAdmin())
	{
		admin.GET("/admin/users", rs.GetUsers)
		admin.POST("/admin/users", rs.AddUser)
		admin.DELETE("/admin/users/:user_id", rs.DeleteUser)
		admin.POST("/admin/limits/:username", rs.PostLimiter)

		admin.GET("/pigsties", rs.GetPigsties)
		admin.POST("/pigsties", rs.AddPigsty)
		admin.PUT("/pigsties/:pigsty_id", rs.UpdatePigsty)
		admin.PUT("/pigsties/:pigsty_id/thresholds", rs.UpdatePigstyThresholds)
		admin.DELETE("/pigsties/:pigsty_id", rs.DeletePigsty)

		admin.GET("/devices", rs.GetDevices)
		admin.POST("/devices", rs.AddDevice)
		admin.POST("/devices/:device_id/toggle", rs.ToggleDevice)
		admin.DELETE("/devices/:device_id", rs.DeleteDevice)
	}
}
