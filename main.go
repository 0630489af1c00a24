package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/warehouse-io/inventory-api/config"
	"github.com/warehouse-io/inventory-api/controllers"
	"github.com/warehouse-io/inventory-api/middleware"
	"github.com/warehouse-io/inventory-api/models"
	"github.com/warehouse-io/inventory-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Inventory API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	if err := db.AutoMigrate(
		&models.Supplier{},
		&models.Warehouse{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize Gin router with all routes wired to the database handle
	router := setupRouter(db)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the full route table against the given database
// handle. Split out from main so tests can exercise the assembled router.
func setupRouter(db *gorm.DB) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(cors.Default())

	// Services own all persistence logic; controllers only translate HTTP
	supplierCtrl := controllers.NewSupplierController(services.NewSupplierService(db))
	warehouseCtrl := controllers.NewWarehouseController(services.NewWarehouseService(db))
	productCtrl := controllers.NewProductController(services.NewProductService(db))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(db))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus(db))

		v1.POST("/supplier", supplierCtrl.Create)

		v1.POST("/warehouse", warehouseCtrl.Create)

		product := v1.Group("/product")
		{
			product.GET("", productCtrl.List)
			product.POST("", productCtrl.Create)
			product.GET("/search", productCtrl.Search)
			product.GET("/:id", productCtrl.Get)
			product.PUT("/:id", productCtrl.Update)
			product.DELETE("/:id", productCtrl.Delete)
			product.PATCH("/:id/stock", productCtrl.UpdateStock)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", orderCtrl.List)
			orders.POST("", orderCtrl.Create)
			orders.GET("/:id", orderCtrl.Get)
			orders.PUT("/:id", orderCtrl.Update)
			orders.DELETE("/:id", orderCtrl.Delete)
			orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
			orders.GET("/:id/items", orderCtrl.GetItems)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inventory API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get the underlying SQL database to check connection
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to get database instance",
				},
			})
			return
		}

		// Ping the database to verify connection
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_CONNECTION_ERROR",
					"message": "Database connection failed",
				},
			})
			return
		}

		// List tables through the migrator so the query works on every dialect
		tables, err := db.Migrator().GetTables()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_QUERY_ERROR",
					"message": "Failed to query tables",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Database connected",
			"tables":  tables,
		})
	}
}
