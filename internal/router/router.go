// Package router maps the HTTP surface onto handlers and declares the role
// requirement of every route. Public routes carry no middleware; everything
// else passes the JWT access guard first and a role gate second.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/vehicle-registry/internal/auth"
	"github.com/iliyamo/vehicle-registry/internal/config"
	"github.com/iliyamo/vehicle-registry/internal/handler"
	"github.com/iliyamo/vehicle-registry/internal/middleware"
	"github.com/iliyamo/vehicle-registry/internal/model"
)

// Register wires every route. rdb may be nil, which disables rate limiting
// and response caching without affecting the rest of the API.
func Register(e *echo.Echo, cfg config.Config, a *handler.AuthHandler,
	adm *handler.AdminHandler, veh *handler.VehicleHandler,
	codec *auth.TokenCodec, rdb *redis.Client) {

	// Public endpoints: no token required.
	e.GET("/", handler.Home)
	e.GET("/healthz", handler.Health)
	e.POST("/admin/login", a.Login,
		middleware.RateLimit(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow))

	jwtAuth := middleware.JWTAuth(codec)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleEditor)

	// Admin account management requires the admin role throughout. The login
	// route above is unaffected: group middleware applies only to routes
	// registered through the group.
	admins := e.Group("/admin", jwtAuth, adminOnly)
	admins.GET("", adm.List)
	admins.GET("/:id", adm.Get)
	admins.POST("", adm.Create)

	// Vehicles: reads are open to any authenticated role, create/update to
	// admin and editor, delete to admin only.
	vehicles := e.Group("/vehicles", jwtAuth)
	vehicles.GET("", veh.List, anyRole, middleware.ResponseCache(rdb, cfg.CacheTTL))
	vehicles.GET("/:id", veh.Get, anyRole)
	vehicles.POST("", veh.Create, anyRole)
	vehicles.PUT("/:id", veh.Update, anyRole)
	vehicles.DELETE("/:id", veh.Delete, adminOnly)
}
