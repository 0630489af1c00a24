package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/warehouse-io/inventory-api/models"
	"github.com/warehouse-io/inventory-api/services"
)

// CreateOrderRequest represents the request body for creating an order.
// The order date defaults to the current time when omitted.
type CreateOrderRequest struct {
	CustomerName    string     `json:"customer_name" binding:"required"`
	CustomerAddress *string    `json:"customer_address"`
	OrderDate       *time.Time `json:"order_date"`
	Status          string     `json:"status" binding:"required"`
}

// UpdateOrderRequest represents a partial update; only supplied fields
// overwrite stored values
type UpdateOrderRequest struct {
	CustomerName    *string    `json:"customer_name"`
	CustomerAddress *string    `json:"customer_address"`
	OrderDate       *time.Time `json:"order_date"`
	Status          *string    `json:"status"`
}

// UpdateStatusRequest represents the request body for the status
// sub-resource
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderController exposes the order endpoints, including the owned
// order-item collection
type OrderController struct {
	service *services.OrderService
}

// NewOrderController creates an order controller backed by service
func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// List handles GET /api/v1/orders - returns all orders with nested items
func (ctrl *OrderController) List(c *gin.Context) {
	orders, err := ctrl.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to list orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// Create handles POST /api/v1/orders - creates a new order. An invalid
// status is rejected with 422 before anything is persisted.
func (ctrl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
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

	order := models.Order{
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		Status:          req.Status,
	}
	if req.OrderDate != nil {
		order.OrderDate = *req.OrderDate
	}

	if err := ctrl.service.Create(&order); err != nil {
		ctrl.renderError(c, err, "create")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// Get handles GET /api/v1/orders/:id - returns a single order with its
// items nested
func (ctrl *OrderController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := ctrl.service.Get(id)
	if err != nil {
		ctrl.renderError(c, err, "fetch")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// Update handles PUT /api/v1/orders/:id - applies a partial update.
// Status is not validated on this path.
func (ctrl *OrderController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderRequest
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

	update := services.OrderUpdate{
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		OrderDate:       req.OrderDate,
		Status:          req.Status,
	}

	if err := ctrl.service.Update(id, update); err != nil {
		ctrl.renderError(c, err, "update")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order updated successfully",
	})
}

// Delete handles DELETE /api/v1/orders/:id - removes an order together
// with its owned items
func (ctrl *OrderController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		ctrl.renderError(c, err, "delete")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted successfully",
	})
}

// UpdateStatus handles PATCH /api/v1/orders/:id/status - sets the order
// status, rejecting values outside the allowed set with 422
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
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

	if err := ctrl.service.UpdateStatus(id, req.Status); err != nil {
		ctrl.renderError(c, err, "update status for")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated successfully",
	})
}

// GetItems handles GET /api/v1/orders/:id/items - returns the order's
// items with their referenced products attached
func (ctrl *OrderController) GetItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	items, err := ctrl.service.GetItems(id)
	if err != nil {
		ctrl.renderError(c, err, "fetch items for")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
	})
}

// renderError maps service errors onto the HTTP error contract
func (ctrl *OrderController) renderError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_STATUS",
				"message": `Status must be one of "pending", "fulfilled", "cancelled"`,
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to " + action + " order",
			},
		})
	}
}
