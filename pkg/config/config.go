package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "DEBATEHUB"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names shared with tests and deploy tooling.
const (
	EnvAppEnv    = "DEBATEHUB_APP_ENV"
	EnvPort      = "DEBATEHUB_APP_PORT"
	EnvJWTSecret = "DEBATEHUB_JWT_SECRET"
	EnvJWTIssuer = "DEBATEHUB_JWT_ISSUER"
)

type Config struct {
	App           AppConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Redis         RedisConfig
	Gemini        GeminiConfig
	Admin         AdminConfig
	CORS          CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DEBATEHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"DEBATEHUB_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"DEBATEHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DEBATEHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type JWTConfig struct {
	Secret            string `envconfig:"DEBATEHUB_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"DEBATEHUB_JWT_ISSUER" default:"debatehub"`
	ExpirationMinutes int    `envconfig:"DEBATEHUB_JWT_EXPIRATION_MINUTES" default:"1440"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"DEBATEHUB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"DEBATEHUB_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"DEBATEHUB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"DEBATEHUB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"DEBATEHUB_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"DEBATEHUB_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"DEBATEHUB_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"DEBATEHUB_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"DEBATEHUB_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"DEBATEHUB_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"DEBATEHUB_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

// RedisConfig is optional: when URL is empty the service runs without a
// rate limiter backend.
type RedisConfig struct {
	URL          string        `envconfig:"DEBATEHUB_REDIS_URL"`
	PoolSize     int           `envconfig:"DEBATEHUB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"DEBATEHUB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DEBATEHUB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"DEBATEHUB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"DEBATEHUB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type GeminiConfig struct {
	APIKey  string        `envconfig:"DEBATEHUB_GOOGLE_API_KEY"`
	Model   string        `envconfig:"DEBATEHUB_GEMINI_MODEL" default:"gemini-2.5-flash"`
	BaseURL string        `envconfig:"DEBATEHUB_GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	Timeout time.Duration `envconfig:"DEBATEHUB_GEMINI_TIMEOUT" default:"20s"`
}

// AdminConfig seeds a single admin account on startup when both values are set.
type AdminConfig struct {
	Email    string `envconfig:"DEBATEHUB_ADMIN_EMAIL"`
	Password string `envconfig:"DEBATEHUB_ADMIN_PASSWORD"`
}

func (a AdminConfig) SeedEnabled() bool {
	return a.Email != "" && a.Password != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"DEBATEHUB_CORS_ALLOWED_ORIGINS" default:"*"`
}
