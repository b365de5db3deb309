package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/AgendariaApp/salon-scheduler/internal/audit"
	"github.com/AgendariaApp/salon-scheduler/internal/cache"
	"github.com/AgendariaApp/salon-scheduler/internal/config"
	"github.com/AgendariaApp/salon-scheduler/internal/handlers"
	infraRepo "github.com/AgendariaApp/salon-scheduler/internal/infra/repository"
	"github.com/AgendariaApp/salon-scheduler/internal/middleware"
	ucBooking "github.com/AgendariaApp/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	slotCache := cache.NewRedisSlotCache(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	listSlotsUC := ucBooking.NewListAvailableSlots(
		scheduleRepo,
		slotCache,
	)

	bookAppointmentUC := ucBooking.NewBookAppointment(
		scheduleRepo,
		auditDispatcher,
		slotCache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	availabilityHandler := handlers.NewAvailabilityHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		listSlotsUC,
		bookAppointmentUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (front conversacional)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/availability", bookingHandler.ListAvailability)
			publicAPI.POST("/:slug/bookings", bookingHandler.BookAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (profissional)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/availability", availabilityHandler.Get)
			secured.PUT("/me/availability", availabilityHandler.Update)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
