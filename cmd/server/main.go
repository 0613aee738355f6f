package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/iliyamo/branch-deploy-status/internal/config"
	"github.com/iliyamo/branch-deploy-status/internal/queue"
	"github.com/iliyamo/branch-deploy-status/internal/router"
	"github.com/iliyamo/branch-deploy-status/internal/service"
)

func main() {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetHeader("${time_rfc3339} ${level}")

	if err := config.LoadDotEnv(); err != nil {
		e.Logger.Fatal(err)
	}
	cfg, err := config.Load()
	if err != nil {
		e.Logger.Fatal(err)
	}
	e.Logger.SetLevel(logLevel(cfg.LogLevel))
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} ${method} ${uri} ${status} ${latency_human}\n",
	}))

	id := cfg.Identity()
	rlCfg := config.LoadRateLimitConfig()
	cacheCfg := config.LoadCacheConfig()

	deps := router.Deps{Identity: id, RateLimit: rlCfg, Cache: cacheCfg}
	if rlCfg.Enabled || cacheCfg.Enabled {
		if deps.Redis = config.NewRedisClient(context.Background()); deps.Redis == nil {
			e.Logger.Warn("redis unavailable; rate limiting and page cache disabled")
		}
	}
	router.RegisterRoutes(e, deps)

	if ev := config.LoadEventsConfig(); ev.Enabled {
		go announce(e.Logger, service.NewAnnouncer(ev.URL, ev.Queue), queue.NewDeploymentStartedEvent(id, cfg.Port, time.Now()))
	}

	// Bind first so the startup lines only appear once the port is ours.
	if err := bind(e, cfg.Addr()); err != nil {
		e.Logger.Fatal(err)
	}

	e.Logger.Infof("✅ Server running on %s", cfg.URL())
	e.Logger.Infof("📦 Branch: %s", id.Branch)
	e.Logger.Infof("🌍 Environment: %s", id.Environment().Label())

	if err := e.Start(cfg.Addr()); err != nil {
		e.Logger.Fatal(err)
	}
}

// bind opens the listening socket and hands it to echo, which then serves on
// it instead of listening again.
func bind(e *echo.Echo, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	e.Listener = ln
	return nil
}

func announce(l echo.Logger, a *service.Announcer, ev queue.DeploymentStartedEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Announce(ctx, ev); err != nil {
		l.Warnf("deployment announcement failed: %v", err)
		return
	}
	l.Infof("deployment announced on queue %s", a.Queue)
}

func logLevel(s string) log.Lvl {
	switch s {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	}
	return log.INFO
}
