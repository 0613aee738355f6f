// Package router wires the HTTP route table.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/branch-deploy-status/internal/config"
	"github.com/iliyamo/branch-deploy-status/internal/deployment"
	"github.com/iliyamo/branch-deploy-status/internal/handler"
	mw "github.com/iliyamo/branch-deploy-status/internal/middleware"
)

// Deps holds what the routes need. Redis may be nil, in which case rate
// limiting and page caching are pass-through.
type Deps struct {
	Identity  deployment.Identity
	Redis     *redis.Client
	RateLimit config.RateLimitConfig
	Cache     config.CacheConfig
}

// readOnly are the methods every explicit route answers.
var readOnly = []string{http.MethodGet, http.MethodHead}

// RegisterRoutes installs the route table on e. Anything that does not match
// /health, /version or / answers with the 404 JSON fallback.
func RegisterRoutes(e *echo.Echo, d Deps) {
	e.Renderer = handler.NewRenderer()
	e.HTTPErrorHandler = handler.ErrorHandler(e)

	e.Use(middleware.Recover())
	e.Use(mw.NewTokenBucket(d.RateLimit, d.Redis))

	h := handler.NewDeploymentHandler(d.Identity)
	e.Match(readOnly, "/health", handler.Health)
	e.Match(readOnly, "/version", h.Version)
	e.Match(readOnly, "/", h.Home, mw.NewRedisCache(d.Cache, d.Redis, d.Identity.Branch))

	// echo would otherwise answer OPTIONS on known paths with 204.
	for _, p := range []string{"/health", "/version", "/"} {
		e.OPTIONS(p, handler.NotFound)
	}
}
