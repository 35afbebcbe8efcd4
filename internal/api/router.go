package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/cloud-panel/admin-api/docs"
	"github.com/cloud-panel/admin-api/internal/api/handler"
	"github.com/cloud-panel/admin-api/internal/api/middleware"
	"github.com/cloud-panel/admin-api/internal/core/domain"
	"github.com/cloud-panel/admin-api/internal/core/service"
	mongodb "github.com/cloud-panel/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cloud-panel/admin-api/internal/infrastructure/db/redis"
)

// Options carries the configuration the router needs beyond its
// infrastructure handles.
type Options struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes
// registered, and the user service for startup tasks (admin bootstrap).
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) (*echo.Echo, *service.UserService) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("admin_panel"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := service.NewBcryptHasher(opts.BcryptCost)
	tokens := service.NewTokenService(opts.JWTSecret, opts.TokenTTL)
	cache := redisdb.NewDirectoryCache(rdb)
	authService := service.NewAuthService(userRepo, tokens, hasher, opts.Logger)
	userService := service.NewUserService(userRepo, hasher, cache, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	requireAuth := middleware.Auth(tokens)
	requireAdmin := middleware.RBAC(domain.RoleAdministrator)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- User directory (all behind the token gate) ---
	users := e.Group("/users", requireAuth)
	users.GET("", userHandler.List)
	users.GET("/me", userHandler.Me)
	users.POST("/change-password", userHandler.ChangePassword)
	users.POST("", userHandler.Create, requireAdmin)
	users.PUT("/:id", userHandler.Update, requireAdmin)
	users.DELETE("/:id", userHandler.Delete, requireAdmin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operability endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, userService
}
