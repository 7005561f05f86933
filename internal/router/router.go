// Package router holds the route table and builds the gin engine from it.
package router

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"site_backend/internal/handler"
	"site_backend/internal/middleware"
	"site_backend/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Route is one entry of the dispatch table
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Auth    bool // bearer token required
	Upload  bool // multipart body, size-capped
	Limited bool // public write, per-client rate limit
}

// Handlers groups everything the route table dispatches to
type Handlers struct {
	Auth        *handler.AuthHandler
	Submissions *handler.SubmissionHandler
	Projects    *handler.ProjectHandler
	Packages    *handler.PackageHandler
	Health      *handler.HealthHandler
	Site        *handler.SiteHandler
}

// Options configures the cross-cutting middleware
type Options struct {
	JWT             *utils.JWTUtil
	Logger          zerolog.Logger
	CORSOrigins     []string
	TrustedProxies  []string
	MaxUploadBytes  int64
	RateLimitPerMin int
}

// Routes returns the API route table in registration order
func Routes(h Handlers) []Route {
	return []Route{
		{Method: http.MethodPost, Path: "/api/contact", Handler: h.Submissions.Create, Limited: true},
		{Method: http.MethodGet, Path: "/api/admin/submissions", Handler: h.Submissions.List, Auth: true},
		{Method: http.MethodDelete, Path: "/api/admin/submissions/:id", Handler: h.Submissions.Delete, Auth: true},

		{Method: http.MethodPost, Path: "/api/auth/login", Handler: h.Auth.Login, Limited: true},
		{Method: http.MethodPost, Path: "/api/auth/register", Handler: h.Auth.Register, Auth: true},
		{Method: http.MethodPost, Path: "/api/auth/seed", Handler: h.Auth.SeedAdmin, Limited: true},

		{Method: http.MethodGet, Path: "/api/projects", Handler: h.Projects.List},
		{Method: http.MethodPost, Path: "/api/projects", Handler: h.Projects.Create, Auth: true, Upload: true},
		{Method: http.MethodDelete, Path: "/api/projects/:id", Handler: h.Projects.Delete, Auth: true},

		{Method: http.MethodGet, Path: "/api/packages", Handler: h.Packages.List},
		{Method: http.MethodPut, Path: "/api/packages/:id", Handler: h.Packages.Update, Auth: true},
		{Method: http.MethodPost, Path: "/api/packages/seed", Handler: h.Packages.Seed, Limited: true},

		{Method: http.MethodGet, Path: "/health", Handler: h.Health.Check},
	}
}

// New builds the engine: global middleware, the route table, and the
// catch-all site resolver for everything else. Client IPs come from the
// connection unless it is one of opts.TrustedProxies.
func New(opts Options, h Handlers) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	authMW := middleware.JWTAuthMiddleware(opts.JWT)
	var limitMW gin.HandlerFunc
	if opts.RateLimitPerMin > 0 {
		limitMW = middleware.NewRateLimiter(opts.RateLimitPerMin).Middleware()
	}

	for _, route := range Routes(h) {
		var chain []gin.HandlerFunc
		if route.Limited && limitMW != nil {
			chain = append(chain, limitMW)
		}
		if route.Auth {
			chain = append(chain, authMW)
		}
		if route.Upload && opts.MaxUploadBytes > 0 {
			chain = append(chain, limitBody(opts.MaxUploadBytes))
		}
		chain = append(chain, route.Handler)
		r.Handle(route.Method, route.Path, chain...)
	}

	r.NoRoute(h.Site.Serve)
	return r, nil
}

// multipartOverhead leaves room for form fields and boundaries around the file
const multipartOverhead = 1 << 20

func limitBody(maxFileBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFileBytes+multipartOverhead)
		c.Next()
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
