package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names so
// the prefix mostly documents intent.
const EnvPrefix = "JCHAIR"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "JCHAIR_APP_ENV"
	EnvPort     = "JCHAIR_APP_PORT"
	EnvDBDSN    = "JCHAIR_DB_DSN"
	EnvDBHost   = "JCHAIR_DB_HOST"
	EnvDBUser   = "JCHAIR_DB_USER"
	EnvDBName   = "JCHAIR_DB_NAME"
	EnvRedisURL = "JCHAIR_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
