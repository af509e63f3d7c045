package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tolgahan/campusstock/internal/app/models/dto"
	"github.com/tolgahan/campusstock/internal/app/services"
	"github.com/tolgahan/campusstock/internal/middleware"
)

// SubAdminController handles sub-admin account operations
type SubAdminController struct {
	subAdminService *services.SubAdminService
}

// NewSubAdminController creates a new SubAdminController
func NewSubAdminController(subAdminService *services.SubAdminService) *SubAdminController {
	return &SubAdminController{
		subAdminService: subAdminService,
	}
}

// Login authenticates a sub-admin
// @Summary Sub-admin login
// @Description Verifies credentials and issues a JWT access token
// @Tags subadmins
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subadmins/login [post]
func (c *SubAdminController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.subAdminService.Authenticate(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// Create registers a new sub-admin account
// @Summary Create a sub-admin
// @Description Creates a delegated admin account; requires a Super token
// @Tags subadmins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubAdminRequest true "Sub-admin information"
// @Success 201 {object} dto.APIResponse{data=models.SubAdmin} "Sub-admin created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subadmins [post]
func (c *SubAdminController) Create(ctx *gin.Context) {
	var req dto.CreateSubAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	subAdmin, err := c.subAdminService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      subAdmin,
		Timestamp: time.Now(),
	})
}

// List retrieves all sub-admin accounts
// @Summary List sub-admins
// @Tags subadmins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.SubAdmin} "Sub-admins retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subadmins [get]
func (c *SubAdminController) List(ctx *gin.Context) {
	subAdmins, err := c.subAdminService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subAdmins,
		Timestamp: time.Now(),
	})
}

// Update applies a partial update to a sub-admin
// @Summary Update a sub-admin
// @Description Updates the supplied fields only; the password is re-hashed when present
// @Tags subadmins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sub-admin ID"
// @Param request body dto.UpdateSubAdminRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.SubAdmin} "Sub-admin updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Sub-admin not found"
// @Failure 409 {object} dto.ErrorResponse "Name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subadmins/{id} [put]
func (c *SubAdminController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "sub-admin")
	if !ok {
		return
	}

	var req dto.UpdateSubAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	subAdmin, err := c.subAdminService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subAdmin,
		Timestamp: time.Now(),
	})
}

// Delete removes a sub-admin account
// @Summary Delete a sub-admin
// @Tags subadmins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sub-admin ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Sub-admin deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Sub-admin not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subadmins/{id} [delete]
func (c *SubAdminController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "sub-admin")
	if !ok {
		return
	}

	if err := c.subAdminService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Sub-admin deleted successfully"},
		Timestamp: time.Now(),
	})
}
