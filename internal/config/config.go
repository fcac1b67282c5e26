package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	LLM       LLMConfig       `yaml:"llm"`
	OCR       OCRConfig       `yaml:"ocr"`
	Library   LibraryConfig   `yaml:"library"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Storage   StorageConfig   `yaml:"storage"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Device-Id,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// LLMConfig holds settings of the extraction model.
type LLMConfig struct {
	APIKey         string        `yaml:"api_key"         env:"ANTHROPIC_API_KEY"`
	BaseURL        string        `yaml:"base_url"        env:"LLM_BASE_URL"`
	Model          string        `yaml:"model"           env:"LLM_MODEL"           env-default:"claude-sonnet-4-5-20250929"`
	MaxTokens      int64         `yaml:"max_tokens"      env:"LLM_MAX_TOKENS"      env-default:"4096"`
	MaxRetries     int           `yaml:"max_retries"     env:"LLM_MAX_RETRIES"     env-default:"2"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"LLM_REQUEST_TIMEOUT" env-default:"60s"`
}

// OCRConfig holds limits and presentation settings of the scan endpoint.
type OCRConfig struct {
	MaxImageBytes        int64         `yaml:"max_image_bytes"       env:"OCR_MAX_IMAGE_BYTES"       env-default:"10485760"`
	AllowedMediaTypesRaw string        `yaml:"allowed_media_types"   env:"OCR_ALLOWED_MEDIA_TYPES"   env-default:"image/jpeg,image/png,image/gif,image/webp"`
	Timeout              time.Duration `yaml:"timeout"               env:"OCR_TIMEOUT"               env-default:"90s"`
	BatchConcurrency     int           `yaml:"batch_concurrency"     env:"OCR_BATCH_CONCURRENCY"     env-default:"3"`
	MaxBatchImages       int           `yaml:"max_batch_images"      env:"OCR_MAX_BATCH_IMAGES"      env-default:"10"`
	SetLabelFormat       string        `yaml:"set_label_format"      env:"OCR_SET_LABEL_FORMAT"      env-default:"%s번"`
	MiscLabel            string        `yaml:"misc_label"            env:"OCR_MISC_LABEL"            env-default:"기타"`

	// AllowedMediaTypes is parsed from AllowedMediaTypesRaw during validation.
	AllowedMediaTypes []string `yaml:"-" env:"-"`
}

// LibraryConfig holds limits of the saved-set library.
type LibraryConfig struct {
	MaxSetsPerDevice int   `yaml:"max_sets_per_device" env:"LIBRARY_MAX_SETS_PER_DEVICE" env-default:"500"`
	MaxWordsPerSet   int   `yaml:"max_words_per_set"   env:"LIBRARY_MAX_WORDS_PER_SET"   env-default:"2000"`
	MaxImportBytes   int64 `yaml:"max_import_bytes"    env:"LIBRARY_MAX_IMPORT_BYTES"    env-default:"5242880"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	OCRPerMinute    int           `yaml:"ocr_per_minute"   env:"RATE_LIMIT_OCR_PER_MINUTE"   env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// StorageConfig holds the optional S3-compatible scan archive settings.
// The archive is disabled when Endpoint is empty.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"   env:"STORAGE_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
	Bucket    string `yaml:"bucket"     env:"STORAGE_BUCKET"     env-default:"wordsnap-scans"`
	Prefix    string `yaml:"prefix"     env:"STORAGE_PREFIX"     env-default:"scans"`
	UseSSL    bool   `yaml:"use_ssl"    env:"STORAGE_USE_SSL"    env-default:"true"`
}

// Enabled reports whether the scan archive is configured.
func (c StorageConfig) Enabled() bool {
	return c.Endpoint != ""
}

// IsMediaTypeAllowed checks a media type against the parsed allow-list.
func (c OCRConfig) IsMediaTypeAllowed(mediaType string) bool {
	return slices.Contains(c.AllowedMediaTypes, mediaType)
}
