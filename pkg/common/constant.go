package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyStyDBType string = "STY_DB_TYPE"
	EnvKeyStyDbPath string = "STY_DB_PATH"

	EnvKeyStyHttpHostPort string = "STY_HTTP_HOST_PORT"

	EnvKeyStySource      string = "STY_SOURCE"
	EnvKeyStyUpstreamURL string = "STY_UPSTREAM_URL"

	EnvKeyStyPollIntervalSeconds string = "STY_POLL_INTERVAL_SECONDS"
	EnvKeyStySimTickSeconds      string = "STY_SIM_TICK_SECONDS"

	EnvKeyStyJwtSecret       string = "STY_JWT_SECRET"
	EnvKeyStyTokenTTLMinutes string = "STY_TOKEN_TTL_MINUTES"

	EnvKeyStyDefaultRate  string = "STY_DEFAULT_RATE"
	EnvKeyStyDefaultBurst string = "STY_DEFAULT_BURST"

	LoggerNameMonitorCore   string = "monitor_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNamePoller        string = "poller"
	LoggerNameSimBackend    string = "sim_backend"

	LoggerFieldCategory     string = "category"
	LoggerCategoryFeed      string = "feed"
	LoggerCategoryAlert     string = "alert"
	LoggerCategoryAdmin     string = "admin"
	LoggerCategoryAuth      string = "auth"
	LoggerCategoryRefresh   string = "refresh"
	LoggerCategoryGenerator string = "generator"
)
