package app

import (
	"aparthotel/internal/auth"
	"aparthotel/internal/booking"
	"aparthotel/internal/config"
	"aparthotel/internal/damagereport"
	"aparthotel/internal/messaging/kafka"
	"aparthotel/internal/middleware"
	"aparthotel/internal/owner"
	"aparthotel/internal/propertygroup"
	"aparthotel/internal/rbac"
	"aparthotel/internal/report"
	"aparthotel/internal/shared/counter"
	"aparthotel/internal/shared/storage"
	"aparthotel/internal/task"
	"aparthotel/internal/unit"
	"aparthotel/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	store storage.Store,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	userRepo := user.NewRepository(db)
	propertyGroupRepo := propertygroup.NewRepository(db)
	unitRepo := unit.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	reportRepo := report.NewRepository(db)
	taskRepo := task.NewRepository(db)
	damageReportRepo := damagereport.NewRepository(db)
	ownerRepo := owner.NewRepository(db)
	counterRepo := counter.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewDefaultService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(db, authRepo, auth.Config{
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.JWTTTL,
		ResetTokenTTL: cfg.ResetTokenTTL,
		FrontendURL:   cfg.FrontendURL,
	})
	userService := user.NewService(userRepo)
	propertyGroupService := propertygroup.NewService(propertyGroupRepo)
	unitService := unit.NewService(db, unitRepo, rdb)
	bookingService := booking.NewService(db, bookingRepo, unitRepo, counterRepo, outboxRepo)
	reportService := report.NewService(db, reportRepo, bookingRepo, propertyGroupRepo, report.NewExporter())
	taskService := task.NewService(db, taskRepo, unitRepo, userRepo, outboxRepo, rdb)
	damageReportService := damagereport.NewService(damageReportRepo, store)
	ownerService := owner.NewService(ownerRepo, userRepo, propertyGroupRepo, unitService, bookingRepo, reportRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	rbacHandler := rbac.NewHandler(rbacService)
	userHandler := user.NewHandler(userService)
	propertyGroupHandler := propertygroup.NewHandler(propertyGroupService)
	unitHandler := unit.NewHandler(unitService)
	bookingHandler := booking.NewHandlerWithRedis(bookingService, rdb)
	reportHandler := report.NewHandler(reportService)
	taskHandler := task.NewHandler(taskService)
	damageReportHandler := damagereport.NewHandler(damageReportService)
	ownerHandler := owner.NewHandler(ownerService)

	// --- Routes Registration ---
	api := router.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	auth.RegisterRoutes(api, protected, authHandler)
	booking.RegisterPublicRoutes(api, bookingHandler)

	rbac.RegisterRoutes(protected, rbacHandler)
	user.RegisterRoutes(protected, userHandler, rbacService)
	propertygroup.RegisterRoutes(protected, propertyGroupHandler, rbacService)
	unit.RegisterRoutes(protected, unitHandler, rbacService)
	booking.RegisterRoutes(protected, bookingHandler, rbacService, rdb)
	report.RegisterRoutes(protected, reportHandler, rbacService)
	task.RegisterRoutes(protected, taskHandler, rbacService)
	damagereport.RegisterRoutes(protected, damageReportHandler, rbacService)
	owner.RegisterRoutes(protected, ownerHandler, rbacService)

	return nil
}
