package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Catalog      CatalogConfig
	Wishlist     WishlistConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
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
	Env          string `envconfig:"JCHAIR_APP_ENV" required:"true"`
	Port         string `envconfig:"JCHAIR_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"JCHAIR_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"JCHAIR_LOG_WARN_STACK" default:"false"`

	CORSOrigins []string `envconfig:"JCHAIR_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"JCHAIR_DB_DSN"`
	Driver string `envconfig:"JCHAIR_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"JCHAIR_DB_HOST"`
	LegacyPort     int    `envconfig:"JCHAIR_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"JCHAIR_DB_USER"`
	LegacyPassword string `envconfig:"JCHAIR_DB_PASSWORD"`
	LegacyName     string `envconfig:"JCHAIR_DB_NAME"`
	LegacySSLMode  string `envconfig:"JCHAIR_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"JCHAIR_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"JCHAIR_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"JCHAIR_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"JCHAIR_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"JCHAIR_REDIS_URL" required:"true"`
	Address      string        `envconfig:"JCHAIR_REDIS_ADDR"`
	Password     string        `envconfig:"JCHAIR_REDIS_PASSWORD"`
	DB           int           `envconfig:"JCHAIR_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"JCHAIR_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"JCHAIR_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"JCHAIR_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"JCHAIR_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"JCHAIR_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CatalogConfig struct {
	SnapshotTTL  time.Duration `envconfig:"JCHAIR_CATALOG_SNAPSHOT_TTL" default:"5m"`
	DefaultLimit int           `envconfig:"JCHAIR_CATALOG_DEFAULT_LIMIT" default:"24"`
	MaxLimit     int           `envconfig:"JCHAIR_CATALOG_MAX_LIMIT" default:"100"`
}

type RateLimitConfig struct {
	Window time.Duration `envconfig:"JCHAIR_RATE_LIMIT_WINDOW" default:"1m"`
	Limit  int           `envconfig:"JCHAIR_RATE_LIMIT_LIMIT" default:"240"`
}

type WishlistConfig struct {
	SessionTTL time.Duration `envconfig:"JCHAIR_WISHLIST_SESSION_TTL" default:"720h"`
	MaxItems   int           `envconfig:"JCHAIR_WISHLIST_MAX_ITEMS" default:"200"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"JCHAIR_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"JCHAIR_AUTO_MIGRATE" default:"false"`
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
