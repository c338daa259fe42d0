package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "fleetledger/internal/config"
	h "fleetledger/internal/http/handlers"
	"fleetledger/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Vehicles
		vehicles := api.Group("/vehicles")
		vehicles.GET("", h.GetVehicles)
		vehicles.GET("/:id", h.GetVehicleByID)
		vehicles.POST("", h.CreateVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)

		// Per-vehicle records
		vehicles.GET("/:id/trips", h.GetVehicleTrips)
		vehicles.POST("/:id/trips", h.CreateTrip)
		vehicles.GET("/:id/cng-expenses", h.GetVehicleCngExpenses)
		vehicles.POST("/:id/cng-expenses", h.CreateCngExpense)

		vehicles.GET("/:id/stats", h.GetVehicleStats)

		// Reports
		reports := vehicles.Group("/:id/reports")
		reports.GET("/current-month", h.GetCurrentMonthReport)
		reports.GET("/archive", h.GetArchiveReport)
		reports.GET("/archive/export", h.ExportArchive)
		reports.GET("/statement", h.GetStatementReport)
		reports.GET("/statement/export", h.ExportStatement)
		reports.GET("/statement/print", h.PrintStatement)
		reports.GET("/cng-statement", h.GetCngStatementReport)
		reports.GET("/cng-statement/export", h.ExportCngStatement)
		reports.GET("/cng-statement/print", h.PrintCngStatement)

		// Trips (id-based)
		trips := api.Group("/trips")
		trips.PUT("/:id", h.UpdateTrip)
		trips.DELETE("/:id", h.DeleteTrip)
		trips.POST("/archive-old", h.ArchiveOldTrips)

		// CNG expenses (id-based)
		cng := api.Group("/cng-expenses")
		cng.PUT("/:id", h.UpdateCngExpense)
		cng.DELETE("/:id", h.DeleteCngExpense)
	}

	return r
}
