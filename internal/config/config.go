package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default back-office credential for local development. It is only accepted
// outside production; see AdminConfig.
const (
	devAdminEmail    = "admin@connectik.com"
	devAdminPassword = "connectik_admin"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port string
	Env  string

	// PublicDemoRoutes registers the unauthenticated create endpoints and the
	// public contact inbox listing.
	PublicDemoRoutes bool

	DB      DatabaseConfig
	Redis   RedisConfig
	Session SessionConfig
	Admin   AdminConfig
	S3      S3Config
	CORS    CORSConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// URL, when set, wins over the individual fields (hosted Postgres
	// providers hand out a single DATABASE_URL).
	URL            string
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MigrationsPath string
	MaxOpenConns   int
	MaxIdleConns   int
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// SessionConfig controls the admin session store and its cookie.
type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieName   string
	CookieDomain string
	Secure       bool
	SameSite     http.SameSite
}

// AdminConfig is the single back-office operator. When PasswordHash is set it
// is a bcrypt hash and Password is ignored.
type AdminConfig struct {
	Email        string
	Name         string
	Password     string
	PasswordHash string
}

// S3Config contains object storage configuration for product images.
type S3Config struct {
	Region          string
	Bucket          string
	Endpoint        string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	UploadURLTTL    time.Duration
	DownloadURLTTL  time.Duration
}

// CORSConfig lists the browser origins allowed to call the API with credentials.
type CORSConfig struct {
	AllowedOrigins       []string
	AllowNetlifyPreviews bool
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "3000")
	cfg.Env = getEnv("ENV", "development")
	prod := cfg.IsProduction()
	cfg.PublicDemoRoutes = getEnvBool("PUBLIC_DEMO_ROUTES", !prod)

	// Database
	cfg.DB = DatabaseConfig{
		Host:           getEnv("DB_HOST", ""),
		Port:           getEnv("DB_PORT", "5432"),
		User:           getEnv("DB_USER", ""),
		Password:       getEnv("DB_PASSWORD", ""),
		Name:           getEnv("DB_NAME", ""),
		SSLMode:        getEnv("DB_SSLMODE", "disable"),
		URL:            getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		MaxOpenConns:   getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:   getEnvInt("DB_MAX_IDLE_CONNS", 2),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// Session
	sameSiteDefault := "lax"
	if prod {
		sameSiteDefault = "none"
	}
	sameSite, err := parseSameSite(getEnv("SESSION_COOKIE_SAMESITE", sameSiteDefault))
	if err != nil {
		return nil, err
	}
	cfg.Session = SessionConfig{
		Secret:       getEnv("SESSION_SECRET", ""),
		CookieName:   getEnv("SESSION_COOKIE_NAME", "connectik.sid"),
		CookieDomain: getEnv("SESSION_COOKIE_DOMAIN", ""),
		Secure:       getEnvBool("SESSION_COOKIE_SECURE", prod),
		SameSite:     sameSite,
	}
	if cfg.Session.TTL, err = parseDurationEnv("SESSION_TTL", "24h"); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	// Admin
	cfg.Admin = AdminConfig{
		Email:        getEnv("ADMIN_EMAIL", ""),
		Name:         getEnv("ADMIN_NAME", "Administrateur"),
		Password:     getEnv("ADMIN_PASSWORD", ""),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	// S3
	cfg.S3 = S3Config{
		Region:          getEnv("S3_REGION", "eu-west-3"),
		Bucket:          getEnv("S3_BUCKET", ""),
		Endpoint:        getEnv("S3_ENDPOINT", ""),
		Prefix:          strings.Trim(getEnv("S3_PREFIX", "boutique"), "/"),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		UsePathStyle:    getEnvBool("S3_USE_PATH_STYLE", false),
	}
	if cfg.S3.UploadURLTTL, err = parseDurationEnv("S3_UPLOAD_URL_TTL", "15m"); err != nil {
		return nil, fmt.Errorf("invalid S3_UPLOAD_URL_TTL: %w", err)
	}
	if cfg.S3.DownloadURLTTL, err = parseDurationEnv("S3_DOWNLOAD_URL_TTL", "1h"); err != nil {
		return nil, fmt.Errorf("invalid S3_DOWNLOAD_URL_TTL: %w", err)
	}

	// CORS
	cfg.CORS = CORSConfig{
		AllowedOrigins:       splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://connectik1.netlify.app")),
		AllowNetlifyPreviews: getEnvBool("CORS_ALLOW_NETLIFY_PREVIEWS", true),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DB.URL == "" && (c.DB.Host == "" || c.DB.User == "" || c.DB.Name == "") {
		return errors.New("database configuration incomplete: set DATABASE_URL or DB_HOST, DB_USER, and DB_NAME")
	}

	if c.IsProduction() {
		if c.Session.Secret == "" {
			return errors.New("SESSION_SECRET must be set in production")
		}
		if c.Admin.Email == "" || (c.Admin.Password == "" && c.Admin.PasswordHash == "") {
			return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set in production")
		}
		return nil
	}

	if c.Session.Secret == "" {
		c.Session.Secret = "dev-secret"
	}
	if c.Admin.Email == "" {
		c.Admin.Email = devAdminEmail
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		c.Admin.Password = devAdminPassword
	}
	return nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// getEnvBool returns the value of an environment variable as a bool or a default if empty/invalid.
func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}

func parseSameSite(raw string) (http.SameSite, error) {
	switch strings.ToLower(raw) {
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	case "default", "":
		return http.SameSiteDefaultMode, nil
	}
	return 0, fmt.Errorf("invalid SESSION_COOKIE_SAMESITE %q: want lax, strict, none or default", raw)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.TrimSuffix(p, "/"))
		}
	}
	return out
}
