package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process-wide configuration, read once at startup
type Config struct {
	ServerPort      string
	JWTSecret       string
	TokenTTL        time.Duration
	SiteDir         string // holds index.html, admin.html and the page assets
	PublicDir       string
	UploadsDir      string
	MaxUploadBytes  int64
	CORSOrigins     []string
	TrustedProxies  []string // proxies whose X-Forwarded-For is believed; none by default
	RateLimitPerMin int
	GinMode         string
	LogLevel        string
	LogFormat       string
	DB              *DBConfig
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	ttlSeconds, err := intEnv("JWT_EXPIRATION_SECONDS", 86400)
	if err != nil {
		return nil, err
	}
	maxUploadMB, err := intEnv("MAX_UPLOAD_MB", 5)
	if err != nil {
		return nil, err
	}
	rateLimit, err := intEnv("RATE_LIMIT_PER_MINUTE", 30)
	if err != nil {
		return nil, err
	}

	siteDir := stringEnv("SITE_DIR", ".")
	publicDir := stringEnv("PUBLIC_DIR", "public")

	return &Config{
		ServerPort:      stringEnv("SERVER_PORT", "8080"),
		JWTSecret:       jwtSecret,
		TokenTTL:        time.Duration(ttlSeconds) * time.Second,
		SiteDir:         siteDir,
		PublicDir:       publicDir,
		UploadsDir:      stringEnv("UPLOADS_DIR", publicDir+"/uploads"),
		MaxUploadBytes:  int64(maxUploadMB) << 20,
		CORSOrigins:     splitList(stringEnv("CORS_ALLOWED_ORIGINS", "*")),
		TrustedProxies:  splitList(os.Getenv("TRUSTED_PROXIES")),
		RateLimitPerMin: rateLimit,
		GinMode:         os.Getenv("GIN_MODE"),
		LogLevel:        stringEnv("LOG_LEVEL", "info"),
		LogFormat:       stringEnv("LOG_FORMAT", "json"),
		DB:              dbCfg,
	}, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", key, v)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
