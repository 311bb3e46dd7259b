package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautyparlour/parlour-api/internal/audit"
	"github.com/beautyparlour/parlour-api/internal/config"
	"github.com/beautyparlour/parlour-api/internal/handlers"
	infraRepo "github.com/beautyparlour/parlour-api/internal/infra/repository"
	"github.com/beautyparlour/parlour-api/internal/middleware"
	ucBooking "github.com/beautyparlour/parlour-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	bookingService := ucBooking.NewService(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	bookingHandler := handlers.NewBookingHandler(bookingService, db)
	serviceHandler := handlers.NewServiceHandler(db)
	stylistHandler := handlers.NewStylistHandler(db)
	profileHandler := handlers.NewProfileHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	portfolioHandler := handlers.NewPortfolioHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	r.GET("/services", serviceHandler.List)
	r.GET("/services/:id", serviceHandler.Get)
	r.GET("/services/:id/stylists", serviceHandler.ListStylists)
	r.GET("/stylists/:id", stylistHandler.Get)
	r.GET("/stylists/:id/services", stylistHandler.ListServices)
	r.GET("/stylists/:id/portfolio", portfolioHandler.ListForStylist)
	r.GET("/stylists/:id/reviews", reviewHandler.ListForStylist)
	r.GET("/profiles/stylists/:id", profileHandler.GetStylistProfile)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/auth/me", authHandler.Me)

		secured.GET("/bookings", bookingHandler.List)
		secured.POST("/bookings", bookingHandler.Create)
		secured.GET("/bookings/:id", bookingHandler.Get)
		secured.PUT("/bookings/:id", bookingHandler.Update)
		secured.DELETE("/bookings/:id", bookingHandler.Delete)
		secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

		secured.POST("/services", serviceHandler.Create)
		secured.PUT("/services/:id", serviceHandler.Update)
		secured.DELETE("/services/:id", serviceHandler.Delete)
		secured.POST("/services/:id/stylists/:stylist_id", serviceHandler.AssignStylist)
		secured.DELETE("/services/:id/stylists/:stylist_id", serviceHandler.UnassignStylist)

		secured.GET("/stylists", stylistHandler.List)
		secured.POST("/stylists/:id/services/:service_id", stylistHandler.AssignService)
		secured.DELETE("/stylists/:id/services/:service_id", stylistHandler.UnassignService)

		secured.GET("/profiles/customers/:id", profileHandler.GetCustomerProfile)
		secured.PUT("/profiles/customers/:id", profileHandler.UpdateCustomerProfile)
		secured.DELETE("/profiles/customers/:id", profileHandler.DeleteCustomerProfile)

		secured.POST("/bookings/:id/payments", paymentHandler.CreateForBooking)
		secured.GET("/payments", paymentHandler.ListOwn)

		secured.GET("/notifications", notificationHandler.ListOwn)
		secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

		secured.POST("/stylists/:id/reviews", reviewHandler.Create)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := secured.Group("/")
		admin.Use(middleware.AdminRequired(db))
		{
			admin.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			admin.PATCH("/bookings/:id/complete", bookingHandler.Complete)

			admin.POST("/stylists", stylistHandler.Create)
			admin.PUT("/stylists/:id", stylistHandler.Update)
			admin.DELETE("/stylists/:id", stylistHandler.Delete)
			admin.PUT("/profiles/stylists/:id", stylistHandler.Update)

			admin.PATCH("/payments/:id/status", paymentHandler.UpdateStatus)

			admin.POST("/notifications", notificationHandler.Create)

			admin.POST("/stylists/:id/portfolio", portfolioHandler.Create)
			admin.DELETE("/portfolio/:id", portfolioHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
