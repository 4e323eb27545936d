package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studystack/classroom/internal/api/handler"
	"github.com/studystack/classroom/internal/api/middleware"
	"github.com/studystack/classroom/internal/core/domain"
	"github.com/studystack/classroom/internal/core/ports"
)

// Dependencies carries the wired services the router mounts. Mongo and Redis
// are only used by the readiness probe and may be nil in test wiring.
type Dependencies struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Courses   ports.CourseService
	Revoker   ports.TokenRevoker
	JWTSecret string
	Logger    zerolog.Logger

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Paths keep the trailing slashes of the original REST contract.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("classroom"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users)
	courseHandler := handler.NewCourseHandler(deps.Courses)
	authMW := middleware.Auth(deps.JWTSecret, deps.Revoker)

	api := e.Group("/api")

	// --- Auth routes (anonymous) ---
	api.POST("/auth/register/", authHandler.Register)
	api.POST("/auth/login/", authHandler.Login)

	// --- Admin account management ---
	users := api.Group("/users", authMW, middleware.RBAC(domain.RoleAdmin))
	users.GET("/", userHandler.List)
	users.PUT("/:id/approve-mentor/", userHandler.ApproveMentor)
	users.DELETE("/:id/", userHandler.Delete)

	// --- Courses ---
	courses := api.Group("/courses", authMW)
	courses.GET("/", courseHandler.List)
	courses.POST("/", courseHandler.Create, middleware.RBAC(domain.RoleMentor))
	courses.GET("/my/", courseHandler.My, middleware.RBAC(domain.RoleMentor))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
