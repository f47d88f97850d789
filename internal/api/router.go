package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/kachra-seth/engagement-system/docs"
	"github.com/kachra-seth/engagement-system/internal/api/handler"
	"github.com/kachra-seth/engagement-system/internal/api/middleware"
	"github.com/kachra-seth/engagement-system/internal/core/domain"
	"github.com/kachra-seth/engagement-system/internal/core/ports"
	"github.com/kachra-seth/engagement-system/internal/core/session"
)

// Deps carries everything the router needs. Mongo and Redis may be nil
// when the service runs without them; the readiness probe skips absent
// dependencies.
type Deps struct {
	JWTSecret string
	Sessions  *session.Store
	Auth      ports.AuthService
	Citizen   ports.CitizenService
	Fleet     ports.FleetService
	Admin     ports.AdminService
	Reports   handler.ReportSink
	Mongo     *mongo.Database
	Redis     *redis.Client
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("kachra"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Sessions)
	viewHandler := handler.NewViewHandler(d.Sessions)
	citizenHandler := handler.NewCitizenHandler(d.Citizen)
	staffHandler := handler.NewStaffHandler(d.Fleet, d.Reports)
	adminHandler := handler.NewAdminHandler(d.Admin)

	auth := middleware.Auth(d.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	// --- Navigation surface ---
	e.GET("/views/:view", viewHandler.Navigate)

	// --- Citizen dashboard ---
	citizen := e.Group("/v1/citizen", auth, middleware.RBAC(domain.RoleCitizen))
	citizen.GET("/history", citizenHandler.History)
	citizen.POST("/waste", citizenHandler.SubmitWaste)
	citizen.POST("/classify", citizenHandler.Classify)
	citizen.POST("/scan", citizenHandler.Scan)
	citizen.GET("/leaderboard", citizenHandler.Leaderboard)
	citizen.GET("/rewards", citizenHandler.Rewards)
	citizen.POST("/rewards/:id/redeem", citizenHandler.Redeem)
	citizen.GET("/schedule", citizenHandler.Schedule)
	citizen.GET("/events", citizenHandler.Events)

	// --- Staff dashboard (admins may also view it) ---
	staff := e.Group("/v1/staff", auth, middleware.RBAC(domain.RoleStaff, domain.RoleAdmin))
	staff.GET("/route", staffHandler.Route)
	staff.POST("/route/:id/toggle", staffHandler.ToggleStop)
	staff.GET("/bins", staffHandler.Bins)
	staff.POST("/bins/:id/report", staffHandler.ReportBin)
	staff.GET("/vehicle", staffHandler.Vehicle)
	staff.GET("/stats", staffHandler.Stats)

	// --- Admin analytics ---
	admin := e.Group("/v1/admin", auth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/cities", adminHandler.Cities)
	admin.GET("/bins/:id/qr", adminHandler.BinQR)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
