package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/warehouse-io/inventory-api/models"
	"github.com/warehouse-io/inventory-api/services"
)

// CreateWarehouseRequest represents the request body for creating a warehouse
type CreateWarehouseRequest struct {
	Location string `json:"location" binding:"required"`
	Capacity *int   `json:"capacity"`
}

// WarehouseController exposes the warehouse endpoints
type WarehouseController struct {
	service *services.WarehouseService
}

// NewWarehouseController creates a warehouse controller backed by service
func NewWarehouseController(service *services.WarehouseService) *WarehouseController {
	return &WarehouseController{service: service}
}

// Create handles POST /api/v1/warehouse - creates a new warehouse
func (ctrl *WarehouseController) Create(c *gin.Context) {
	var req CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	warehouse := models.Warehouse{
		Location: req.Location,
		Capacity: req.Capacity,
	}

	if err := ctrl.service.Create(&warehouse); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create warehouse",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    warehouse,
	})
}
