package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"estate-hub.backend/internal/interfaces/http/handlers"
	"estate-hub.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler           *handlers.AuthHandler
	propertyHandler       *handlers.PropertyHandler
	bankingPartnerHandler *handlers.BankingPartnerHandler
	enquiryHandler        *handlers.EnquiryHandler
	titleSearchHandler    *handlers.TitleSearchHandler
	reviewHandler         *handlers.ReviewHandler
	appointmentHandler    *handlers.AppointmentHandler
	userHandler           *handlers.UserHandler
	adminHandler          *handlers.AdminHandler
	authMiddleware        gin.HandlerFunc
	authRateLimiter       gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authRateLimiter, d.authHandler.Register)
			auth.POST("/login", d.authRateLimiter, d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
			auth.PUT("/profile", d.authMiddleware, d.authHandler.UpdateProfile)
		}

		// Property routes (public read, protected write)
		properties := v1.Group("/properties")
		{
			properties.GET("", d.propertyHandler.List)
			properties.GET("/mine", d.authMiddleware, d.propertyHandler.ListMine)
			properties.GET("/:id", d.propertyHandler.Get)
			properties.POST("", d.authMiddleware, middleware.IdempotencyMiddleware(), d.propertyHandler.Submit)
			properties.PUT("/:id", d.authMiddleware, d.propertyHandler.Update)

			properties.GET("/:id/reviews", d.reviewHandler.ListForProperty)
			properties.POST("/:id/reviews", d.authMiddleware, d.reviewHandler.Post)
		}

		// Banking partner routes (public read)
		banks := v1.Group("/banking-partners")
		{
			banks.GET("", d.bankingPartnerHandler.List)
			banks.GET("/emi-calculator", d.bankingPartnerHandler.EMICalculator)
			banks.GET("/loan-options/:propertyId", d.bankingPartnerHandler.LoanOptions)
			banks.GET("/:id", d.bankingPartnerHandler.Get)
		}

		// Marketplace intake routes (public)
		v1.POST("/enquiries", d.enquiryHandler.Create)
		v1.POST("/title-search", d.titleSearchHandler.Create)

		// Appointment routes (protected)
		appointments := v1.Group("/appointments")
		appointments.Use(d.authMiddleware)
		{
			appointments.POST("", d.appointmentHandler.Book)
			appointments.GET("", d.appointmentHandler.ListMine)
		}

		// Saved properties (protected)
		saved := v1.Group("/users/saved-properties")
		saved.Use(d.authMiddleware)
		{
			saved.GET("", d.userHandler.ListSaved)
			saved.POST("/:id", d.userHandler.SaveProperty)
			saved.DELETE("/:id", d.userHandler.UnsaveProperty)
		}

		// Staff routes (verification and follow-up queues)
		staff := v1.Group("/staff")
		staff.Use(d.authMiddleware, middleware.RequireStaff())
		{
			staff.GET("/properties/pending", d.propertyHandler.ListPending)
			staff.PUT("/properties/:id/verify", d.propertyHandler.Verify)
			staff.PUT("/properties/:id/reject", d.propertyHandler.Reject)

			staff.GET("/enquiries", d.enquiryHandler.List)
			staff.PUT("/enquiries/:id/status", d.enquiryHandler.UpdateStatus)

			staff.GET("/appointments", d.appointmentHandler.List)
			staff.PUT("/appointments/:id/status", d.appointmentHandler.UpdateStatus)

			staff.GET("/title-search", d.titleSearchHandler.List)
			staff.PUT("/title-search/:id/status", d.titleSearchHandler.UpdateStatus)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.PUT("/users/:id/role", d.adminHandler.UpdateRole)
			admin.GET("/stats", d.adminHandler.Stats)

			admin.POST("/banking-partners", d.bankingPartnerHandler.Create)
			admin.PUT("/banking-partners/:id", d.bankingPartnerHandler.Update)
			admin.DELETE("/banking-partners/:id", d.bankingPartnerHandler.Delete)

			admin.DELETE("/properties/:id", d.propertyHandler.Remove)
			admin.PUT("/reviews/:id/visibility", d.reviewHandler.SetVisibility)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "estate-hub-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
