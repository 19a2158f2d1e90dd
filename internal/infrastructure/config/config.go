package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Payment   PaymentConfig
	Storage   StorageConfig
	Telemetry TelemetryConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds document store connection settings
type DatabaseConfig struct {
	Driver                 string // mongo or memory
	URI                    string // full connection string, wins over the parts below
	Scheme                 string // mongodb or mongodb+srv
	Host                   string
	User                   string
	Password               string
	Name                   string
	AppName                string
	MaxPoolSize            uint64
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	MaxBodySize       int64
	RateLimitEnabled  bool
	RateLimitBackend  string // memory or redis
	RateLimitRequests int
	RateLimitWindow   time.Duration
	CORSAllowOrigins  []string
	CORSAllowMethods  []string
	CORSAllowHeaders  []string
	TrustedProxies    []string
}

// PaymentConfig holds SSLCommerz settings
type PaymentConfig struct {
	StoreID       string
	StorePassword string
	Sandbox       bool
	Currency      string
	// ServerURL is the public base URL of this API, used for gateway callbacks
	ServerURL string
	// FrontendURL is where customers land after the gateway redirects back
	FrontendURL string
	Timeout     time.Duration
}

// Enabled reports whether the payment gateway has credentials
func (p *PaymentConfig) Enabled() bool {
	return p.StoreID != "" && p.StorePassword != ""
}

// StorageConfig holds S3-compatible object storage settings for product images
type StorageConfig struct {
	Enabled         bool
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicURL       string
	UsePathStyle    bool
	KeyPrefix       string
}

// TelemetryConfig holds OpenTelemetry configuration
type TelemetryConfig struct {
	Enabled               bool    // Whether to enable tracing
	CollectorEndpoint     string  // OTEL Collector endpoint (e.g., "localhost:4317")
	SamplingRatio         float64 // Sampling ratio (0.0-1.0, 1.0 = 100%)
	ServiceName           string
	Insecure              bool // Use insecure (non-TLS) connection (development only)
	MetricsEnabled        bool
	MetricsExportInterval time.Duration
	LogsEnabled           bool
}

// Load loads configuration from .env, TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with STORE_ prefix (e.g., STORE_DATABASE_PASSWORD)
// 2. Variables from a local .env file (loaded into the environment)
// 3. config.toml
// 4. Built-in defaults
func Load() (*Config, error) {
	// .env is optional; existing environment variables are never overwritten
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("STORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names kept for deployments that predate the prefix
	_ = v.BindEnv("database.user", "STORE_DATABASE_USER", "DB_USER")
	_ = v.BindEnv("database.password", "STORE_DATABASE_PASSWORD", "DB_PASS")
	_ = v.BindEnv("app.port", "STORE_APP_PORT", "PORT")

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Driver:                 v.GetString("database.driver"),
			URI:                    v.GetString("database.uri"),
			Scheme:                 v.GetString("database.scheme"),
			Host:                   v.GetString("database.host"),
			User:                   v.GetString("database.user"),
			Password:               v.GetString("database.password"),
			Name:                   v.GetString("database.name"),
			AppName:                v.GetString("database.app_name"),
			MaxPoolSize:            v.GetUint64("database.max_pool_size"),
			ConnectTimeout:         v.GetDuration("database.connect_timeout"),
			ServerSelectionTimeout: v.GetDuration("database.server_selection_timeout"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:       v.GetDuration("http.read_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:    v.GetInt("http.max_header_bytes"),
			MaxBodySize:       v.GetInt64("http.max_body_size"),
			RateLimitEnabled:  v.GetBool("http.rate_limit_enabled"),
			RateLimitBackend:  v.GetString("http.rate_limit_backend"),
			RateLimitRequests: v.GetInt("http.rate_limit_requests"),
			RateLimitWindow:   v.GetDuration("http.rate_limit_window"),
			CORSAllowOrigins:  v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods:  v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders:  v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:    v.GetStringSlice("http.trusted_proxies"),
		},
		Payment: PaymentConfig{
			StoreID:       v.GetString("payment.store_id"),
			StorePassword: v.GetString("payment.store_password"),
			Sandbox:       v.GetBool("payment.sandbox"),
			Currency:      v.GetString("payment.currency"),
			ServerURL:     v.GetString("payment.server_url"),
			FrontendURL:   v.GetString("payment.frontend_url"),
			Timeout:       v.GetDuration("payment.timeout"),
		},
		Storage: StorageConfig{
			Enabled:         v.GetBool("storage.enabled"),
			Bucket:          v.GetString("storage.bucket"),
			Region:          v.GetString("storage.region"),
			Endpoint:        v.GetString("storage.endpoint"),
			AccessKeyID:     v.GetString("storage.access_key_id"),
			SecretAccessKey: v.GetString("storage.secret_access_key"),
			PublicURL:       v.GetString("storage.public_url"),
			UsePathStyle:    v.GetBool("storage.use_path_style"),
			KeyPrefix:       v.GetString("storage.key_prefix"),
		},
		Telemetry: TelemetryConfig{
			Enabled:               v.GetBool("telemetry.enabled"),
			CollectorEndpoint:     v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:         v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:           v.GetString("telemetry.service_name"),
			Insecure:              v.GetBool("telemetry.insecure"),
			MetricsEnabled:        v.GetBool("telemetry.metrics_enabled"),
			MetricsExportInterval: v.GetDuration("telemetry.metrics_export_interval"),
			LogsEnabled:           v.GetBool("telemetry.logs_enabled"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "storefront-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "5000"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "mongo"
	}
	if cfg.Database.Scheme == "" {
		cfg.Database.Scheme = "mongodb"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost:27017"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "E-Commerce"
	}
	if cfg.Database.AppName == "" {
		cfg.Database.AppName = cfg.App.Name
	}
	if cfg.Database.MaxPoolSize == 0 {
		cfg.Database.MaxPoolSize = 50
	}
	if cfg.Database.ConnectTimeout == 0 {
		cfg.Database.ConnectTimeout = 10 * time.Second
	}
	if cfg.Database.ServerSelectionTimeout == 0 {
		cfg.Database.ServerSelectionTimeout = 5 * time.Second
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 10 << 20 // 10MB
	}
	if cfg.HTTP.RateLimitBackend == "" {
		cfg.HTTP.RateLimitBackend = "memory"
	}
	if cfg.HTTP.RateLimitRequests == 0 {
		cfg.HTTP.RateLimitRequests = 100
	}
	if cfg.HTTP.RateLimitWindow == 0 {
		cfg.HTTP.RateLimitWindow = time.Minute
	}
	// The storefront has no login, so any origin is accepted until configured otherwise
	if len(cfg.HTTP.CORSAllowOrigins) == 0 {
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "X-Request-ID"}
	}
	if cfg.Payment.Currency == "" {
		cfg.Payment.Currency = "BDT"
	}
	if cfg.Payment.ServerURL == "" {
		cfg.Payment.ServerURL = "http://localhost:" + cfg.App.Port
	}
	if cfg.Payment.FrontendURL == "" {
		cfg.Payment.FrontendURL = "http://localhost:5173"
	}
	if cfg.Payment.Timeout == 0 {
		cfg.Payment.Timeout = 30 * time.Second
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "us-east-1"
	}
	if cfg.Storage.KeyPrefix == "" {
		cfg.Storage.KeyPrefix = "products"
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317"
	}
	if cfg.Telemetry.SamplingRatio == 0 {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.App.Name
	}
	if cfg.Telemetry.MetricsExportInterval == 0 {
		cfg.Telemetry.MetricsExportInterval = 60 * time.Second
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Database.Driver {
	case "mongo", "memory":
	default:
		return fmt.Errorf("database.driver must be mongo or memory, got %q", c.Database.Driver)
	}
	if c.Database.Scheme != "mongodb" && c.Database.Scheme != "mongodb+srv" {
		return fmt.Errorf("database.scheme must be mongodb or mongodb+srv, got %q", c.Database.Scheme)
	}
	if c.HTTP.RateLimitBackend != "memory" && c.HTTP.RateLimitBackend != "redis" {
		return fmt.Errorf("http.rate_limit_backend must be memory or redis, got %q", c.HTTP.RateLimitBackend)
	}
	if c.Storage.Enabled && c.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket is required when storage is enabled")
	}

	if c.App.Env == "production" {
		if c.Database.Driver == "memory" {
			return fmt.Errorf("database.driver cannot be memory in production")
		}
		if !c.Payment.Enabled() {
			return fmt.Errorf("payment.store_id and payment.store_password are required in production")
		}
		if c.Payment.Sandbox {
			return fmt.Errorf("payment.sandbox must be false in production")
		}
	}

	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}

	return nil
}

// ConnectionURI returns the MongoDB connection string with properly escaped credentials
func (d *DatabaseConfig) ConnectionURI() string {
	if d.URI != "" {
		return d.URI
	}
	u := url.URL{
		Scheme: d.Scheme,
		Host:   d.Host,
		Path:   "/",
	}
	if d.User != "" {
		u.User = url.UserPassword(d.User, d.Password)
	}
	q := u.Query()
	q.Set("retryWrites", "true")
	q.Set("w", "majority")
	if d.AppName != "" {
		q.Set("appName", d.AppName)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
