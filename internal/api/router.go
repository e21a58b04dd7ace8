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

	"github.com/residenthub/society-api/internal/api/handler"
	"github.com/residenthub/society-api/internal/api/middleware"
	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/service"
	mongostore "github.com/residenthub/society-api/internal/infrastructure/db/mongo"
	redisstore "github.com/residenthub/society-api/internal/infrastructure/db/redis"
	"github.com/residenthub/society-api/internal/infrastructure/http/handlers"
	"github.com/residenthub/society-api/internal/infrastructure/notify"
)

// RouterOptions carries everything NewRouter needs beyond the two stores.
type RouterOptions struct {
	JWTSecret string
	TokenTTL  time.Duration
	// RevealResetToken echoes reset tokens in the forgot-password response.
	// Enable only in non-production environments.
	RevealResetToken bool
	Logger           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("residenthub"))

	// --- Repositories ---
	users := mongostore.NewUserRepository(db)
	societies := mongostore.NewSocietyRepository(db)
	units := mongostore.NewUnitRepository(db)
	residents := mongostore.NewResidentRepository(db)
	joinRequests := mongostore.NewJoinRequestRepository(db)
	maintenance := mongostore.NewMaintenanceRepository(db)
	issues := mongostore.NewIssueRepository(db)
	announcements := mongostore.NewAnnouncementRepository(db)
	uow := mongostore.NewUnitOfWork(db.Client())
	resetTokens := redisstore.NewResetTokenStore(rdb)
	mailer := notify.NewLogMailer(opts.Logger)

	// --- Services ---
	authService := service.NewAuthService(users, resetTokens, mailer, opts.JWTSecret, opts.TokenTTL, opts.Logger)
	societyService := service.NewSocietyService(societies, units, users, uow, opts.Logger)
	unitService := service.NewUnitService(units, societies, users, opts.Logger)
	residentService := service.NewResidentService(joinRequests, residents, units, users, societies, uow, opts.Logger)
	maintenanceService := service.NewMaintenanceService(maintenance, units, opts.Logger)
	issueService := service.NewIssueService(issues, units, opts.Logger)
	announcementService := service.NewAnnouncementService(announcements, opts.Logger)
	dashboardService := service.NewDashboardService(societies, units, users, joinRequests, maintenance, issues, announcements, opts.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, opts.RevealResetToken)
	societyHandler := handler.NewSocietyHandler(societyService)
	unitHandler := handler.NewUnitHandler(unitService)
	residentHandler := handler.NewResidentHandler(residentService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	issueHandler := handler.NewIssueHandler(issueService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// --- Route middleware ---
	auth := middleware.Auth(opts.JWTSecret, users)
	active := middleware.RequireActive()
	anyRole := middleware.RequireRoles(domain.RolePlatformOwner, domain.RoleSocietyAdmin, domain.RoleResident)
	staff := middleware.RequireRoles(domain.RolePlatformOwner, domain.RoleSocietyAdmin)
	adminOnly := middleware.RequireRoles(domain.RoleSocietyAdmin)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Public routes ---
	v1.POST("/auth/signup", authHandler.Signup)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/forgot-password", authHandler.ForgotPassword)
	v1.POST("/auth/reset-password", authHandler.ResetPassword)
	v1.GET("/public/societies", societyHandler.ListPublic)
	v1.GET("/public/societies/:id/units", unitHandler.ListAvailable)
	v1.POST("/public/join-requests", residentHandler.SubmitJoinRequest)

	// --- Profile: any authenticated account, including pending ones, so an
	// applicant can check who they are and poll their request.
	v1.GET("/me", authHandler.Profile, auth)
	v1.PATCH("/me", authHandler.UpdateProfile, auth)
	v1.GET("/join-requests/mine", residentHandler.MyJoinRequest, auth)

	// --- Societies ---
	v1.POST("/societies", societyHandler.Create, auth, active, adminOnly)
	v1.GET("/societies", societyHandler.List, auth, active, anyRole)
	v1.GET("/societies/:id", societyHandler.Get, auth, active, anyRole)
	v1.PATCH("/societies/:id", societyHandler.Update, auth, active, staff)
	v1.DELETE("/societies/:id", societyHandler.Deactivate, auth, active, staff)
	v1.GET("/societies/:id/units", unitHandler.ListBySociety, auth, active, anyRole)

	// --- Units ---
	v1.POST("/units", unitHandler.Create, auth, active, adminOnly)
	v1.GET("/units", unitHandler.List, auth, active, anyRole)
	v1.GET("/units/:id", unitHandler.Get, auth, active, anyRole)
	v1.PATCH("/units/:id", unitHandler.Update, auth, active, staff)
	v1.DELETE("/units/:id", unitHandler.Delete, auth, active, staff)

	// --- Join requests ---
	v1.GET("/join-requests", residentHandler.ListJoinRequests, auth, active, staff)
	v1.GET("/join-requests/:id", residentHandler.GetJoinRequest, auth, active, staff)
	v1.POST("/join-requests/:id/approve", residentHandler.Approve, auth, active, staff)
	v1.POST("/join-requests/:id/reject", residentHandler.Reject, auth, active, staff)

	// --- Residents ---
	v1.POST("/residents", residentHandler.CreateResident, auth, active, staff)
	v1.GET("/residents", residentHandler.ListResidents, auth, active, anyRole)
	v1.GET("/residents/:id", residentHandler.GetResident, auth, active, anyRole)
	v1.DELETE("/residents/:id", residentHandler.DeactivateResident, auth, active, staff)

	// --- Maintenance ---
	v1.POST("/maintenance", maintenanceHandler.Create, auth, active, staff)
	v1.GET("/maintenance", maintenanceHandler.List, auth, active, anyRole)
	v1.GET("/maintenance/mine/dues", maintenanceHandler.MyDues, auth, active, anyRole)
	v1.GET("/maintenance/mine/history", maintenanceHandler.MyHistory, auth, active, anyRole)
	v1.POST("/maintenance/overdue-sweep", maintenanceHandler.RunOverdueSweep, auth, active, staff)
	v1.GET("/maintenance/:id", maintenanceHandler.Get, auth, active, anyRole)
	v1.PATCH("/maintenance/:id", maintenanceHandler.Update, auth, active, staff)
	v1.POST("/maintenance/:id/pay", maintenanceHandler.MarkPaid, auth, active, staff)

	// --- Issues ---
	v1.POST("/issues", issueHandler.Create, auth, active, anyRole)
	v1.GET("/issues", issueHandler.List, auth, active, anyRole)
	v1.GET("/issues/:id", issueHandler.Get, auth, active, anyRole)
	v1.PATCH("/issues/:id", issueHandler.Update, auth, active, anyRole)

	// --- Announcements ---
	v1.POST("/announcements", announcementHandler.Create, auth, active, adminOnly)
	v1.GET("/announcements", announcementHandler.List, auth, active, anyRole)
	v1.GET("/announcements/:id", announcementHandler.Get, auth, active, anyRole)
	v1.PATCH("/announcements/:id", announcementHandler.Update, auth, active, staff)
	v1.DELETE("/announcements/:id", announcementHandler.Delete, auth, active, staff)

	// --- Dashboard ---
	v1.GET("/dashboard", dashboardHandler.Get, auth, active, anyRole)

	return e
}
