// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/config"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/handler"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/middleware"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/model"
)

// Deps carries everything the route table needs.  Rdb may be nil, in
// which case the rate limiter and response cache degrade to no-ops.
type Deps struct {
	Auth         *handler.AuthHandler
	Reservations *handler.ReservationHandler
	Tables       *handler.TableHandler
	JWTSecret    string
	RateLimit    config.RateLimitConfig
	Cache        config.CacheConfig
	Rdb          *redis.Client
}

// Register mounts every route on the provided Echo instance.
// Unauthenticated operations live under /v1/auth plus the health check;
// everything touching reservations or tables requires a staff token.
func Register(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)

	g := e.Group("/v1/auth")
	g.POST("/register", d.Auth.Register)
	g.POST("/login", d.Auth.Login)
	// /refresh rotates the refresh token; /refresh-access only re-issues
	// the short-lived access token.
	g.POST("/refresh", d.Auth.Refresh)
	g.POST("/refresh-access", d.Auth.RefreshAccess)
	g.POST("/logout", d.Auth.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(d.JWTSecret))
	auth.Use(middleware.RequireRole(model.RoleManager, model.RoleHost))
	auth.Use(middleware.NewTokenBucket(d.RateLimit, d.Rdb))

	auth.GET("/me", d.Auth.Me)

	// Dashboard listings may sit behind the response cache; everything
	// reflecting an in-flight seating decision stays uncached.
	cached := middleware.NewRedisCache(d.Cache, d.Rdb)

	auth.POST("/reservations", d.Reservations.Create)
	auth.GET("/reservations", d.Reservations.List, cached)
	auth.GET("/reservations/:id", d.Reservations.Get)
	auth.PUT("/reservations/:id", d.Reservations.Update)
	auth.PUT("/reservations/:id/status", d.Reservations.UpdateStatus)

	auth.POST("/tables", d.Tables.Create)
	auth.GET("/tables", d.Tables.List, cached)
	auth.PUT("/tables/:id/seat", d.Tables.Seat)
	auth.DELETE("/tables/:id/seat", d.Tables.Finish)
}
