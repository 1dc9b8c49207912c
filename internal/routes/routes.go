package routes

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/aquareyes/carwash-admin/internal/audit"
	"github.com/aquareyes/carwash-admin/internal/cache"
	"github.com/aquareyes/carwash-admin/internal/config"
	"github.com/aquareyes/carwash-admin/internal/handlers"
	infraRepo "github.com/aquareyes/carwash-admin/internal/infra/repository"
	"github.com/aquareyes/carwash-admin/internal/middleware"
	"github.com/aquareyes/carwash-admin/internal/notification"
	"github.com/aquareyes/carwash-admin/internal/stats"
	"github.com/aquareyes/carwash-admin/internal/timezone"
	ucAdmin "github.com/aquareyes/carwash-admin/internal/usecase/admin"
	ucAppointment "github.com/aquareyes/carwash-admin/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	notificationRepo := infraRepo.NewNotificationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	ledger := notification.NewLedger(notificationRepo)

	var snapshotStore stats.SnapshotStore
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("invalid REDIS_URL, statistics mirror disabled: %v", err)
		} else {
			snapshotStore = cache.NewStatsCache(redis.NewClient(opts))
		}
	}

	tracker := stats.NewTracker(appointmentRepo, loc, snapshotStore)
	if _, err := tracker.Recompute(context.Background()); err != nil {
		log.Printf("initial statistics recompute failed: %v", err)
		if tracker.WarmFromStore(context.Background()) {
			log.Println("statistics seeded from redis mirror")
		}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		tracker,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		tracker,
		ledger,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		tracker,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	resetDataUC := ucAdmin.NewResetData(
		appointmentRepo,
		tracker,
		ledger,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	employeeHandler := handlers.NewEmployeeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsByDateUC,
		loc,
	)

	notificationHandler := handlers.NewNotificationHandler(ledger)
	statsHandler := handlers.NewStatsHandler(tracker)
	reportHandler := handlers.NewReportHandler(db, loc)
	adminHandler := handlers.NewAdminHandler(resetDataUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// REFERENCE DATA (soft delete)
			// ------------------------------
			secured.GET("/employees", employeeHandler.List)
			secured.GET("/employees/:id", employeeHandler.Get)
			secured.POST("/employees", employeeHandler.Create)
			secured.PATCH("/employees/:id", employeeHandler.Update)
			secured.DELETE("/employees/:id", employeeHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/organizations", organizationHandler.List)
			secured.POST("/organizations", organizationHandler.Create)
			secured.PATCH("/organizations/:id", organizationHandler.Update)
			secured.DELETE("/organizations/:id", organizationHandler.Delete)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/notifications", notificationHandler.List)
			secured.GET("/notifications/unread-count", notificationHandler.UnreadCount)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			secured.POST("/notifications/read-all", notificationHandler.MarkAllRead)
			secured.DELETE("/notifications", notificationHandler.ClearAll)

			// ------------------------------
			// STATISTICS & REPORTS
			// ------------------------------
			secured.GET("/statistics", statsHandler.Get)
			secured.GET("/statistics/today", statsHandler.Today)
			secured.GET("/statistics/all-time", statsHandler.AllTime)

			secured.GET("/reports/general", reportHandler.General)
			secured.GET("/reports/employee/:id", reportHandler.Employee)
			secured.GET("/reports/daily", reportHandler.Daily)

			// ------------------------------
			// ADMIN
			// ------------------------------
			secured.DELETE("/admin/data", adminHandler.ResetData)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
