package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tolgahan/campusstock/internal/app/models/dto"
	"github.com/tolgahan/campusstock/internal/app/services"
	"github.com/tolgahan/campusstock/internal/middleware"
)

// ProductController handles catalog-related operations
type ProductController struct {
	productService *services.ProductService
}

// NewProductController creates a new ProductController
func NewProductController(productService *services.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// Create handles product creation
// @Summary Create a new product
// @Description Creates a catalog item; year is clamped into [0,10], zero meaning all years
// @Tags products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product information"
// @Success 201 {object} dto.APIResponse{data=models.Product} "Product created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	product, err := c.productService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      product,
		Timestamp: time.Now(),
	})
}

// List retrieves products, optionally filtered
// @Summary List products
// @Description Retrieves catalog items; course and year filters match the scoping columns exactly
// @Tags products
// @Produce json
// @Param course query string false "Filter by course scope"
// @Param year query int false "Filter by year scope"
// @Success 200 {object} dto.APIResponse{data=[]models.Product} "Products retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	var filter services.ProductListFilter

	if course, ok := ctx.GetQuery("course"); ok {
		filter.Course = &course
	}
	if yearStr, ok := ctx.GetQuery("year"); ok {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year filter")
			errorDetail = errorDetail.WithDetails("Year must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.Year = &year
	}

	products, err := c.productService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      products,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves a product by ID
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.APIResponse{data=models.Product} "Product retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid product ID"
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /products/{id} [get]
func (c *ProductController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "product")
	if !ok {
		return
	}

	product, err := c.productService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      product,
		Timestamp: time.Now(),
	})
}

// Update applies a partial update to a product
// @Summary Update a product
// @Description Updates the supplied fields only; unspecified fields are retained
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Product} "Product updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "product")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	product, err := c.productService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      product,
		Timestamp: time.Now(),
	})
}

// Delete removes a product and strips its key from student records
// @Summary Delete a product
// @Description Removes the product; its item key is stripped from every student's fulfillment map best effort
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Product deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "product")
	if !ok {
		return
	}

	if err := c.productService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Product deleted successfully"},
		Timestamp: time.Now(),
	})
}
