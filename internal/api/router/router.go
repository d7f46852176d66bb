package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"izmena/config"
	"izmena/internal/api/handler"
	"izmena/internal/api/middleware"
	"izmena/pkg/jwt"
	"izmena/pkg/redis"
)

// Setup builds the Gin engine with all routes registered.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (no token required)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// profile and onboarding
			users := authorized.Group("/users")
			{
				users.GET("/me", h.User.GetCurrentUser)
				users.PUT("/me", h.User.UpdateCurrentUser)
				users.POST("/me/onboarding", h.User.CompleteOnboarding)
				users.GET("/me/audit", h.User.GetAuditTrail)
			}

			// composed schedule and aggregations
			schedule := authorized.Group("/schedule")
			{
				schedule.GET("", h.Schedule.GetSchedule)
				schedule.GET("/stats", h.Schedule.GetMonthlyStats)
				schedule.GET("/stats/yearly", h.Schedule.GetYearlyStats)
				schedule.GET("/stats/trend", h.Schedule.GetYearlyTrend)
				schedule.GET("/next-rest", h.Schedule.GetNextRest)
				schedule.GET("/export", h.Export.ExportMonth)
				schedule.GET("/ics", h.Export.ExportICS)
			}

			// daily-record ledger
			records := authorized.Group("/records")
			{
				records.GET("/totals", h.Record.GetMonthlyTotals)
				records.GET("/:date", h.Record.GetRecord)
				records.PUT("/:date", h.Record.UpdateRecord)
			}

			// balances
			balances := authorized.Group("/balances")
			{
				balances.GET("", h.User.GetBalances)
				balances.GET("/bank", h.ExtraHours.GetBankBalance)
			}

			// shift overrides
			overrides := authorized.Group("/overrides")
			{
				overrides.GET("", h.Schedule.ListOverrides)
				overrides.POST("", h.Schedule.RequestOverride)
				overrides.GET("/:date", h.Schedule.GetOverride)
			}

			// leave requests
			leaves := authorized.Group("/leaves")
			{
				leaves.GET("", h.Leave.ListLeaves)
				leaves.POST("", h.Leave.CreateLeave)
				leaves.PUT("/:id/decision", h.Leave.DecideLeave)
			}

			// extra hours
			extraHours := authorized.Group("/extra-hours")
			{
				extraHours.GET("", h.ExtraHours.ListEntries)
				extraHours.POST("", h.ExtraHours.CreateEntry)
				extraHours.PUT("/:id/decision", h.ExtraHours.DecideEntry)
			}

			// holiday calendar
			authorized.GET("/holidays", h.Schedule.GetHolidays)
		}
	}

	return r
}
