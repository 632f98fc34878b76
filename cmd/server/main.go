package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"barnsight.xyz/pigsty-monitor-service/pkg/backend"
	"barnsight.xyz/pigsty-monitor-service/pkg/backend/remote"
	"barnsight.xyz/pigsty-monitor-service/pkg/backend/sim"
	"barnsight.xyz/pigsty-monitor-service/pkg/common"
	"barnsight.xyz/pigsty-monitor-service/pkg/db"
	styHttp "barnsight.xyz/pigsty-monitor-service/pkg/http"
	"barnsight.xyz/pigsty-monitor-service/pkg/poller"
)

func envSeconds(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Fatalf("Invalid %s: should be a positive integer of seconds", key)
	}
	return time.Duration(n) * time.Second
}

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyStyDefaultRate), 64); err != nil {
		log.Fatal("Invalid STY_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyStyDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid STY_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	jwtSecret := strings.TrimSpace(os.Getenv(common.EnvKeyStyJwtSecret))
	if jwtSecret == "" {
		log.Fatal("STY_JWT_SECRET must be set in .env")
	}

	tokenTTL := 60 * time.Minute
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyStyTokenTTLMinutes)); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			log.Fatal("Invalid STY_TOKEN_TTL_MINUTES, should be a positive integer of minutes")
		}
		tokenTTL = time.Duration(minutes) * time.Minute
	}

	pollInterval := envSeconds(common.EnvKeyStyPollIntervalSeconds, 5*time.Second)
	simTick := envSeconds(common.EnvKeyStySimTickSeconds, 5*time.Second)

	logger := common.GetLoggerWith(common.LoggerNameMonitorCore)
	ctx := context.Background()

	var source backend.Source
	stySource := strings.TrimSpace(os.Getenv(common.EnvKeyStySource))
	switch stySource {
	case "sim", "":
		var dbInstance *db.DB
		styDbType := os.Getenv(common.EnvKeyStyDBType)
		switch styDbType {
		case "file":
			dbInstance = db.GetInstance(db.UseSqliteDialector())
		case "memory":
			dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
		default:
			log.Fatal("Unknown STY_DB_TYPE: " + styDbType)
		}

		simulator := sim.New(dbInstance, simTick)
		if err := simulator.Seed(ctx); err != nil {
			log.Fatalf("failed to seed simulator: %v", err)
		}
		go func() {
			if err := simulator.Run(ctx); err != nil && ctx.Err() == nil {
				log.Fatalf("simulator stopped: %v", err)
			}
		}()
		source = simulator

	case "remote":
		upstream := strings.TrimSpace(os.Getenv(common.EnvKeyStyUpstreamURL))
		if upstream == "" {
			log.Fatal("STY_UPSTREAM_URL must be set when STY_SOURCE is remote")
		}
		source = remote.NewClient(upstream)

	default:
		log.Fatal("Unknown STY_SOURCE: " + stySource)
	}

	holder := &poller.Holder{}
	feedPoller := &poller.Poller{
		Source:   source,
		Interval: pollInterval,
		Holder:   holder,
	}
	if client, ok := source.(*remote.Client); ok {
		// an upstream rejection means the session is gone, drop the token
		// so the next login starts clean
		feedPoller.OnFailure = func(err error) {
			client.ClearToken()
		}
	}
	go func() {
		if err := feedPoller.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatalf("poller stopped: %v", err)
		}
	}()

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyStyHttpHostPort))
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &styHttp.RestfulServer{
		Server: gin.Default(),
		Source: source,
		Holder: holder,
		Tokens: &styHttp.TokenIssuer{
			Secret: []byte(jwtSecret),
			TTL:    tokenTTL,
		},
		RateLimiterStore: styHttp.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
