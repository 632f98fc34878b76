package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barnsight.xyz/pigsty-monitor-service/pkg/assoc"
	"barnsight.xyz/pigsty-monitor-service/pkg/backend"
	"barnsight.xyz/pigsty-monitor-service/pkg/common"
	"barnsight.xyz/pigsty-monitor-service/pkg/dashboard"
	"barnsight.xyz/pigsty-monitor-service/pkg/models"
	"barnsight.xyz/pigsty-monitor-service/pkg/registry"
	"barnsight.xyz/pigsty-monitor-service/pkg/threshold"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, backend.ErrUserAssigned), errors.Is(err, backend.ErrDuplicateDevice):
		return http.StatusConflict
	case errors.Is(err, backend.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Required(),
	"Password": z.String().Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	logger := common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAuth),
	)

	user, err := rs.Source.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("Login rejected", zap.String("username", req.Username))
		abortWithError(c, err)
		return
	}

	logger.Info("Login accepted", zap.String("username", user.Username), zap.String("role", string(user.Role)))

	token, err := rs.Tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GetDashboard evaluates the latest applied snapshot for the caller. Before
// the first successful refresh there is nothing to show; partial data is
// never served.
func (rs *RestfulServer) GetDashboard(c *gin.Context) {
	snap := rs.Holder.Latest()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot available yet"})
		return
	}

	views := dashboard.Build(snap, viewer(c))
	c.JSON(http.StatusOK, gin.H{"fetchedAt": snap.FetchedAt, "pigsties": views})
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	snap := rs.Holder.Latest()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot available yet"})
		return
	}

	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visible := make(map[string]bool)
	for _, p := range assoc.Scope(snap.Pigsties, viewer(c)) {
		visible[assoc.RefKey(p.ID)] = true
	}

	var alerts []models.Alert
	for _, a := range snap.Alerts {
		if !visible[assoc.RefKey(a.PigstyRef)] {
			continue
		}
		if !from.IsZero() && a.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && a.Timestamp.After(to) {
			continue
		}
		alerts = append(alerts, a)
	}

	unacknowledged := common.Reducer(alerts, func(acc int, a models.Alert) int {
		if !a.Acknowledged {
			acc++
		}
		return acc
	}, 0)

	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "unacknowledged": unacknowledged})
}

func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if fromStr != "" {
		if from, err = time.Parse("2006-01-02", fromStr); err != nil {
			return from, to, errors.New("from must be YYYY-MM-DD")
		}
	}
	if toStr != "" {
		if to, err = time.Parse("2006-01-02", toStr); err != nil {
			return from, to, errors.New("to must be YYYY-MM-DD")
		}
		// inclusive end of day
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

func (rs *RestfulServer) AcknowledgeAlert(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("alert_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alert id must be numeric"})
		return
	}

	if err := rs.Source.AcknowledgeAlert(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetUsers(c *gin.Context) {
	snap := rs.Holder.Latest()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot available yet"})
		return
	}

	c.JSON(http.StatusOK, common.Mapper(snap.Users, func(u models.User) gin.H {
		return gin.H{"id": u.ID, "name": u.Name, "username": u.Username, "role": u.Role}
	}))
}

type AddUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

var addUserRequestSchema = z.Struct(z.Shape{
	"Name":     z.String().Required(),
	"Username": z.String().Required(),
	"Password": z.String().Required(),
})

func (rs *RestfulServer) AddUser(c *gin.Context) {
	var req AddUserRequest
	if err := addUserRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Source.CreateUser(c.Request.Context(), models.User{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (rs *RestfulServer) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user id must be numeric"})
		return
	}

	if err := rs.Source.DeleteUser(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetPigsties(c *gin.Context) {
	snap := rs.Holder.Latest()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot available yet"})
		return
	}
	c.JSON(http.StatusOK, snap.Pigsties)
}

type PigstyRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Capacity     int    `json:"capacity"`
	TechnicianID *int64 `json:"technicianId"`
}

func (rs *RestfulServer) bindPigsty(c *gin.Context) (*models.Pigsty, bool) {
	var req PigstyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if req.Name == "" || req.Capacity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and a positive capacity are required"})
		return nil, false
	}
	return &models.Pigsty{
		Name:         req.Name,
		Location:     req.Location,
		Capacity:     req.Capacity,
		TechnicianID: req.TechnicianID,
	}, true
}

func (rs *RestfulServer) AddPigsty(c *gin.Context) {
	input, ok := rs.bindPigsty(c)
	if !ok {
		return
	}

	pigsty, err := rs.Source.CreatePigsty(c.Request.Context(), *input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pigsty)
}

func (rs *RestfulServer) UpdatePigsty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("pigsty_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pigsty id must be numeric"})
		return
	}

	input, ok := rs.bindPigsty(c)
	if !ok {
		return
	}

	pigsty, err := rs.Source.UpdatePigsty(c.Request.Context(), id, *input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pigsty)
}

// UpdatePigstyThresholds replaces a facility's partial overrides. Each
// override is validated against the merged effective band so an edit cannot
// leave warn above danger.
func (rs *RestfulServer) UpdatePigstyThresholds(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("pigsty_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pigsty id must be numeric"})
		return
	}

	var thresholds map[models.MetricKind]models.ThresholdBand
	if err := c.ShouldBindJSON(&thresholds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for kind, band := range thresholds {
		if !registry.Known(kind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown metric kind: " + string(kind)})
			return
		}
		if err := threshold.ValidateBand(threshold.EffectiveBand(kind, band)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": registry.DisplayName(kind) + ": " + err.Error()})
			return
		}
	}

	pigsty, err := rs.Source.UpdatePigstyThresholds(c.Request.Context(), id, thresholds)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pigsty)
}

func (rs *RestfulServer) DeletePigsty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("pigsty_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pigsty id must be numeric"})
		return
	}

	if err := rs.Source.DeletePigsty(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetDevices(c *gin.Context) {
	snap := rs.Holder.Latest()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot available yet"})
		return
	}
	c.JSON(http.StatusOK, snap.Devices)
}

type AddDeviceRequest struct {
	PigstyID     int    `json:"pigstyId"`
	Type         string `json:"type"`
	ModelNumber  string `json:"modelNumber"`
	SerialNumber string `json:"serialNumber"`
}

var addDeviceRequestSchema = z.Struct(z.Shape{
	"PigstyID":     z.Int().Required(),
	"Type":         z.String().Required(),
	"ModelNumber":  z.String(),
	"SerialNumber": z.String(),
})

func (rs *RestfulServer) AddDevice(c *gin.Context) {
	var req AddDeviceRequest
	if err := addDeviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	kind := models.MetricKind(strings.ToLower(req.Type))
	if !registry.Known(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown metric kind: " + req.Type})
		return
	}

	device, err := rs.Source.CreateDevice(c.Request.Context(), models.Device{
		PigstyID:     int64(req.PigstyID),
		PigstyRef:    models.Ref(strconv.Itoa(req.PigstyID)),
		Kind:         kind,
		ModelNumber:  req.ModelNumber,
		SerialNumber: req.SerialNumber,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, device)
}

func (rs *RestfulServer) ToggleDevice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("device_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "device id must be numeric"})
		return
	}

	device, err := rs.Source.ToggleDevice(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) DeleteDevice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("device_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "device id must be numeric"})
		return
	}

	if err := rs.Source.DeleteDevice(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	username := c.Param("username")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(username, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
