package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/warehouse-io/inventory-api/models"
	"github.com/warehouse-io/inventory-api/services"
)

// CreateProductRequest represents the request body for creating a product.
// Pointer fields distinguish "absent" from a legitimate zero value.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	SupplierID  *uint    `json:"supplier_id" binding:"required"`
	Stock       *int     `json:"stock" binding:"required"`
	WarehouseID *uint    `json:"warehouse_id" binding:"required"`
}

// UpdateProductRequest represents a partial update; only supplied fields
// overwrite stored values
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	SupplierID  *uint    `json:"supplier_id"`
	Stock       *int     `json:"stock"`
	WarehouseID *uint    `json:"warehouse_id"`
}

// UpdateStockRequest represents the request body for the stock sub-resource
type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// ProductController exposes the product endpoints
type ProductController struct {
	service *services.ProductService
}

// NewProductController creates a product controller backed by service
func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// List handles GET /api/v1/product - returns all products
func (ctrl *ProductController) List(c *gin.Context) {
	products, err := ctrl.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to list products",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
	})
}

// Create handles POST /api/v1/product - creates a new product.
// The referenced supplier and warehouse ids are stored as supplied.
func (ctrl *ProductController) Create(c *gin.Context) {
	var req CreateProductRequest
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

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		SupplierID:  *req.SupplierID,
		Stock:       *req.Stock,
		WarehouseID: *req.WarehouseID,
	}

	if err := ctrl.service.Create(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create product",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    product,
	})
}

// Get handles GET /api/v1/product/:id - returns a single product
func (ctrl *ProductController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := ctrl.service.Get(id)
	if err != nil {
		ctrl.renderError(c, err, "fetch")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// Update handles PUT /api/v1/product/:id - applies a partial update
func (ctrl *ProductController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateProductRequest
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

	update := services.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SupplierID:  req.SupplierID,
		Stock:       req.Stock,
		WarehouseID: req.WarehouseID,
	}

	if err := ctrl.service.Update(id, update); err != nil {
		ctrl.renderError(c, err, "update")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully",
	})
}

// Delete handles DELETE /api/v1/product/:id - removes a product
func (ctrl *ProductController) Delete(c *gin.Context) {
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
		"message": "Product deleted successfully",
	})
}

// Search handles GET /api/v1/product/search - filters products by an
// optional case-insensitive name substring and an optional exact supplier
// name (AND semantics)
func (ctrl *ProductController) Search(c *gin.Context) {
	name := c.Query("name")
	supplierName := c.Query("supplier_name")

	products, err := ctrl.service.Search(name, supplierName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to search products",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
	})
}

// UpdateStock handles PATCH /api/v1/product/:id/stock - overwrites the
// stock count
func (ctrl *ProductController) UpdateStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStockRequest
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

	if err := ctrl.service.UpdateStock(id, *req.Stock); err != nil {
		ctrl.renderError(c, err, "update stock for")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product stock updated successfully",
	})
}

// renderError maps service errors onto the HTTP error contract
func (ctrl *ProductController) renderError(c *gin.Context, err error, action string) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": "Failed to " + action + " product",
		},
	})
}
