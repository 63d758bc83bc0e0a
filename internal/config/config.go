// Package config holds the immutable application configuration, loaded
// once at process start and passed by injection into the components that
// need it.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Cloudinary CloudinaryConfig `yaml:"cloudinary"`
	Upload     UploadConfig     `yaml:"upload"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	CORS       CORSConfig       `yaml:"cors"`
	Log        LogConfig        `yaml:"log"`
	Env        string           `yaml:"env" env:"APP_ENV" env-default:"development"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"DATABASE_PATH" env-default:"./cleanup.db"`
}

// AuthConfig holds token and password-hashing settings.
// AccessSecret and RefreshSecret must differ: a leaked refresh token must
// never verify as an access token, and vice versa.
type AuthConfig struct {
	AccessSecret    string        `yaml:"access_secret"     env:"AUTH_ACCESS_SECRET"     env-required:"true"`
	RefreshSecret   string        `yaml:"refresh_secret"    env:"AUTH_REFRESH_SECRET"    env-required:"true"`
	Issuer          string        `yaml:"issuer"            env:"AUTH_ISSUER"            env-default:"cleanup-backend"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"AUTH_REFRESH_TOKEN_TTL" env-default:"720h"`
	BcryptCost      int           `yaml:"bcrypt_cost"       env:"AUTH_BCRYPT_COST"       env-default:"12"`
	CookieAuth      bool          `yaml:"cookie_auth"       env:"AUTH_COOKIE_AUTH"       env-default:"true"`
}

// CloudinaryConfig holds the media host credentials.
type CloudinaryConfig struct {
	CloudName string `yaml:"cloud_name" env:"CLOUDINARY_CLOUD_NAME" env-required:"true"`
	APIKey    string `yaml:"api_key"    env:"CLOUDINARY_API_KEY"    env-required:"true"`
	APISecret string `yaml:"api_secret" env:"CLOUDINARY_API_SECRET" env-required:"true"`
	Folder    string `yaml:"folder"     env:"CLOUDINARY_FOLDER"     env-default:"cleaning-services/previous-work"`
}

// UploadConfig limits incoming portfolio images.
type UploadConfig struct {
	MaxFileSize int64 `yaml:"max_file_size" env:"UPLOAD_MAX_FILE_SIZE" env-default:"5242880"`
	MaxFiles    int   `yaml:"max_files"     env:"UPLOAD_MAX_FILES"     env-default:"10"`
}

// RateLimitConfig holds the per-IP request budget.
type RateLimitConfig struct {
	Enabled bool          `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	Rate    int           `yaml:"rate"    env:"RATE_LIMIT_RATE"    env-default:"100"`
	Window  time.Duration `yaml:"window"  env:"RATE_LIMIT_WINDOW"  env-default:"1m"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigin    string `yaml:"allowed_origin"    env:"CORS_ALLOWED_ORIGIN"    env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// IsProduction reports whether the service runs in production mode.
// Cookies carry the Secure attribute only in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
