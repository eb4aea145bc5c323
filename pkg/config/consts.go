package config

const (
	EnvPrefix = "SISTEMA"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv   = "SISTEMA_APP_ENV"
	EnvPort     = "SISTEMA_APP_PORT"
	EnvLogLevel = "SISTEMA_LOG_LEVEL"

	EnvDBDSN  = "SISTEMA_DB_DSN"
	EnvDBHost = "SISTEMA_DB_HOST"
	EnvDBUser = "SISTEMA_DB_USER"
	EnvDBName = "SISTEMA_DB_NAME"

	EnvRedisURL   = "SISTEMA_REDIS_URL"
	EnvJWTSecret  = "SISTEMA_JWT_SECRET"
	EnvJWTIssuer  = "SISTEMA_JWT_ISSUER"
	EnvJWTExpMins = "SISTEMA_JWT_EXPIRATION_MINUTES"
)

// legacyDBEnvVars are the discrete connection vars accepted when a full DSN
// is not provided.
var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
