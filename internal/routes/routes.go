package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/udayanalone/BarberConnect/internal/audit"
	"github.com/udayanalone/BarberConnect/internal/catalog"
	"github.com/udayanalone/BarberConnect/internal/config"
	"github.com/udayanalone/BarberConnect/internal/handlers"
	infraRepo "github.com/udayanalone/BarberConnect/internal/infra/repository"
	"github.com/udayanalone/BarberConnect/internal/middleware"
	"github.com/udayanalone/BarberConnect/internal/models"
	gw "github.com/udayanalone/BarberConnect/internal/payment"
	"github.com/udayanalone/BarberConnect/internal/storage"
	ucBooking "github.com/udayanalone/BarberConnect/internal/usecase/booking"
	ucPayment "github.com/udayanalone/BarberConnect/internal/usecase/payment"
	ucReview "github.com/udayanalone/BarberConnect/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warn("invalid timezone, falling back to UTC", zap.String("tz", cfg.Timezone))
		loc = time.UTC
	}

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	barberRepo := infraRepo.NewBarberGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	cat := catalog.NewLookup(barberRepo, cache, log)
	images := storage.NewImageStore(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		cat,
		appointmentRepo,
		auditDispatcher,
		log,
		loc,
	)
	updateStatusUC := ucBooking.NewUpdateStatus(appointmentRepo, auditDispatcher, log)
	cancelAppointmentUC := ucBooking.NewCancelAppointment(appointmentRepo, auditDispatcher, log)
	listAppointmentsUC := ucBooking.NewListAppointments(appointmentRepo)
	getAppointmentUC := ucBooking.NewGetAppointment(appointmentRepo)

	// ======================================================
	// USE CASES — PAYMENTS
	// ======================================================
	var verifier gw.SignatureVerifier = gw.AcceptAllVerifier{}
	if cfg.PaymentWebhookSecret != "" {
		verifier = gw.NewHMACVerifier(cfg.PaymentWebhookSecret)
	}

	paymentCoordinator := ucPayment.NewCoordinator(
		appointmentRepo,
		gw.SimulatedGateway{},
		verifier,
		auditDispatcher,
		log,
		cfg.PaymentCurrency,
	)

	// ======================================================
	// USE CASES — REVIEWS
	// ======================================================
	aggregator := ucReview.NewAggregator(reviewRepo, cat, log)
	reviewService := ucReview.NewService(reviewRepo, appointmentRepo, aggregator, auditDispatcher, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	barberHandler := handlers.NewBarberHandler(db, cat, images)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		cancelAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
	)
	paymentHandler := handlers.NewPaymentHandler(paymentCoordinator)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// ======================================================
	// ROUTES
	// ======================================================
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	users := api.Group("/users", middleware.AuthMiddleware(cfg))
	{
		users.GET("", middleware.RequireRole(models.RoleAdmin), userHandler.List)
		users.GET("/:id", userHandler.Get)
	}

	barbers := api.Group("/barbers")
	{
		// Public directory.
		barbers.GET("", barberHandler.List)
		barbers.GET("/:id", barberHandler.Get)
		barbers.GET("/:id/reviews", reviewHandler.ListByBarber)

		// Barber-owned profile management.
		owned := barbers.Group("", middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleBarber))
		{
			owned.POST("", barberHandler.Create)
			owned.GET("/profile/me", barberHandler.Me)
			owned.PUT("/:id", barberHandler.Update)
			owned.PUT("/:id/services", barberHandler.ReplaceServices)
			owned.POST("/:id/images", barberHandler.UploadImage)
			owned.DELETE("/:id", barberHandler.Delete)
		}
	}

	appointments := api.Group("/appointments", middleware.AuthMiddleware(cfg))
	{
		appointments.POST("", middleware.RequireRole(models.RoleCustomer), appointmentHandler.Create)
		appointments.GET("", appointmentHandler.List)
		appointments.GET("/:id", appointmentHandler.Get)
		appointments.PUT("/:id/status", middleware.RequireRole(models.RoleBarber), appointmentHandler.UpdateStatus)
		appointments.PUT("/:id/cancel", middleware.RequireRole(models.RoleCustomer), appointmentHandler.Cancel)
	}

	payments := api.Group("/payments", middleware.AuthMiddleware(cfg))
	{
		pay := payments.Group("", middleware.RequireRole(models.RoleCustomer))
		{
			pay.POST("/create-order", paymentHandler.CreateOrder)
			pay.POST("/verify", paymentHandler.Verify)
			pay.POST("/simulate", paymentHandler.Simulate)
		}
		payments.GET("/status/:appointmentId", paymentHandler.Status)
	}

	reviews := api.Group("/reviews", middleware.AuthMiddleware(cfg))
	{
		reviews.POST("", middleware.RequireRole(models.RoleCustomer), reviewHandler.Create)
		reviews.PUT("/:id", middleware.RequireRole(models.RoleCustomer), reviewHandler.Update)
		reviews.DELETE("/:id", reviewHandler.Delete)
	}
}
