package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DB1132/Odoo-hackathon/internal/config"
	"github.com/DB1132/Odoo-hackathon/internal/email"
	"github.com/DB1132/Odoo-hackathon/internal/handlers"
	"github.com/DB1132/Odoo-hackathon/internal/middleware"
	"github.com/DB1132/Odoo-hackathon/internal/models"
	"github.com/DB1132/Odoo-hackathon/internal/services"
)

func Register(router *gin.Engine, db *gorm.DB, cfg config.Config) {
	router.Use(corsMiddleware(cfg.AllowedOriginsRaw))
	handlers.UseJSONFieldNames()

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "dayflow-hr-backend"})
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	var notifier services.LeaveNotifier
	if cfg.MailEnabled() {
		notifier = email.NewLeaveNotifier(email.Config{
			Host:     cfg.SmtpHost,
			Port:     cfg.SmtpPort,
			Username: cfg.SmtpUser,
			Password: cfg.SmtpPass,
			From:     cfg.SmtpFrom,
		})
	}

	authHandler := handlers.NewAuthHandler(services.NewAccountService(db, cfg.AdminBootstrap), cfg)
	attendanceHandler := handlers.NewAttendanceHandler(services.NewAttendanceService(db))
	leaveHandler := handlers.NewLeaveHandler(services.NewLeaveService(db, notifier))
	salaryHandler := handlers.NewSalaryHandler(services.NewCompensationService(db))
	employeeHandler := handlers.NewEmployeeHandler(services.NewProfileService(db))
	dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(db))

	anyone := middleware.RequireAnyRole(models.RoleEmployee, models.RoleAdmin)
	admin := middleware.RequireRole(models.RoleAdmin)

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthRequired(cfg.JwtSecret))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.GET("/dashboard", admin, dashboardHandler.Get)

		protected.POST("/attendance/check-in", anyone, attendanceHandler.CheckIn)
		protected.POST("/attendance/check-out", anyone, attendanceHandler.CheckOut)
		protected.GET("/attendance/today", anyone, attendanceHandler.Today)
		protected.GET("/attendance/my-records", anyone, attendanceHandler.MyRecords)
		protected.GET("/attendance", admin, attendanceHandler.List)
		protected.GET("/attendance/:accountId", admin, attendanceHandler.ListForAccount)
		protected.DELETE("/attendance/cleanup/invalid", admin, attendanceHandler.CleanupInvalid)

		protected.GET("/leaves/my-requests", anyone, leaveHandler.MyRequests)
		protected.GET("/leaves", admin, leaveHandler.List)
		protected.POST("/leaves", anyone, leaveHandler.Create)
		protected.PUT("/leaves/:id/approve", admin, leaveHandler.Approve)
		protected.PUT("/leaves/:id/reject", admin, leaveHandler.Reject)

		protected.GET("/salary/my-salary", anyone, salaryHandler.Mine)
		protected.GET("/salary", admin, salaryHandler.List)
		protected.GET("/salary/:accountId", admin, salaryHandler.Get)
		protected.PUT("/salary/:accountId", admin, salaryHandler.Update)

		protected.GET("/employees", admin, employeeHandler.List)
		protected.GET("/employees/profile/:accountId", anyone, employeeHandler.GetProfile)
		protected.PUT("/employees/profile/:accountId", anyone, employeeHandler.UpdateProfile)
	}
}

func corsMiddleware(allowed string) gin.HandlerFunc {
	origins := []string{}
	for _, origin := range strings.Split(allowed, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	allowAll := len(origins) == 0

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowedOrigin := range origins {
				if origin == allowedOrigin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					c.Writer.Header().Set("Vary", "Origin")
					break
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
