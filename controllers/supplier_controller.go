package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/warehouse-io/inventory-api/models"
	"github.com/warehouse-io/inventory-api/services"
)

// CreateSupplierRequest represents the request body for creating a supplier
type CreateSupplierRequest struct {
	Name        string  `json:"name" binding:"required"`
	ContactInfo *string `json:"contact_info"`
}

// SupplierController exposes the supplier endpoints
type SupplierController struct {
	service *services.SupplierService
}

// NewSupplierController creates a supplier controller backed by service
func NewSupplierController(service *services.SupplierService) *SupplierController {
	return &SupplierController{service: service}
}

// Create handles POST /api/v1/supplier - creates a new supplier
func (ctrl *SupplierController) Create(c *gin.Context) {
	var req CreateSupplierRequest
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

	supplier := models.Supplier{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	}

	if err := ctrl.service.Create(&supplier); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create supplier",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    supplier,
	})
}
