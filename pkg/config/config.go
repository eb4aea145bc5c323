package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Service       ServiceConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Listings      ListingsConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SISTEMA_APP_ENV" required:"true"`
	Port         string `envconfig:"SISTEMA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SISTEMA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SISTEMA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"SISTEMA_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"SISTEMA_DB_DSN"`
	Driver string `envconfig:"SISTEMA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SISTEMA_DB_HOST"`
	LegacyPort     int    `envconfig:"SISTEMA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SISTEMA_DB_USER"`
	LegacyPassword string `envconfig:"SISTEMA_DB_PASSWORD"`
	LegacyName     string `envconfig:"SISTEMA_DB_NAME"`
	LegacySSLMode  string `envconfig:"SISTEMA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SISTEMA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SISTEMA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SISTEMA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SISTEMA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SISTEMA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SISTEMA_REDIS_ADDR"`
	Password     string        `envconfig:"SISTEMA_REDIS_PASSWORD"`
	DB           int           `envconfig:"SISTEMA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SISTEMA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SISTEMA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SISTEMA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SISTEMA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SISTEMA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SISTEMA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SISTEMA_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"SISTEMA_JWT_EXPIRATION_MINUTES" required:"true"`
	SessionTTLMinutes int    `envconfig:"SISTEMA_SESSION_TTL_MINUTES" default:"43200"`
}

// SessionTTL returns the server-side session TTL configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SISTEMA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SISTEMA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SISTEMA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SISTEMA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SISTEMA_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"SISTEMA_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"SISTEMA_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"SISTEMA_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"SISTEMA_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"1h"`
	RegisterEmailLimit int           `envconfig:"SISTEMA_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"SISTEMA_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"10"`
}

type ListingsConfig struct {
	DefaultExpirationDays int           `envconfig:"SISTEMA_LISTINGS_DEFAULT_EXPIRATION_DAYS" default:"30"`
	DefaultPageSize       int           `envconfig:"SISTEMA_LISTINGS_DEFAULT_PAGE_SIZE" default:"10"`
	MaxPageSize           int           `envconfig:"SISTEMA_LISTINGS_MAX_PAGE_SIZE" default:"50"`
	SimilarLimit          int           `envconfig:"SISTEMA_LISTINGS_SIMILAR_LIMIT" default:"4"`
	SweepInterval         time.Duration `envconfig:"SISTEMA_LISTINGS_SWEEP_INTERVAL" default:"1h"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"SISTEMA_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"SISTEMA_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
