package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tolgahan/campusstock/internal/app/models/dto"
	"github.com/tolgahan/campusstock/internal/app/services"
	"github.com/tolgahan/campusstock/internal/middleware"
)

// AcademicController handles academic configuration operations
type AcademicController struct {
	academicService *services.AcademicService
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(academicService *services.AcademicService) *AcademicController {
	return &AcademicController{
		academicService: academicService,
	}
}

// GetConfig retrieves the academic configuration
// @Summary Get academic configuration
// @Description Retrieves the ordered course list; an empty list is a valid configuration
// @Tags academic
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.AcademicConfig} "Configuration retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /config/academic [get]
func (c *AcademicController) GetConfig(ctx *gin.Context) {
	config, err := c.academicService.Get(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      config,
		Timestamp: time.Now(),
	})
}

// ReplaceConfig replaces the whole academic configuration
// @Summary Replace academic configuration
// @Description Normalizes and persists the submitted course list in one transaction
// @Tags academic
// @Accept json
// @Produce json
// @Param request body dto.ReplaceConfigRequest true "New configuration"
// @Success 200 {object} dto.APIResponse{data=models.AcademicConfig} "Configuration replaced successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid configuration data"
// @Failure 409 {object} dto.ErrorResponse "Duplicate course code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /config/academic [put]
func (c *AcademicController) ReplaceConfig(ctx *gin.Context) {
	var req dto.ReplaceConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	config, err := c.academicService.Replace(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      config,
		Timestamp: time.Now(),
	})
}

// ListCourses retrieves the configured courses
// @Summary List courses
// @Tags academic
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-config/courses [get]
func (c *AcademicController) ListCourses(ctx *gin.Context) {
	courses, err := c.academicService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// AddCourse appends one course to the configuration
// @Summary Add a course
// @Description Adds a course; the code is normalized to trimmed lowercase before the duplicate check
// @Tags academic
// @Accept json
// @Produce json
// @Param request body dto.CourseSpec true "Course specification"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course data"
// @Failure 409 {object} dto.ErrorResponse "Course already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-config/courses [post]
func (c *AcademicController) AddCourse(ctx *gin.Context) {
	var spec dto.CourseSpec
	if err := ctx.ShouldBindJSON(&spec); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.academicService.AddCourse(ctx, spec)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// DeleteCourse removes one course from the configuration
// @Summary Delete a course
// @Description Removes a course entry; existing student and product records keep their course value
// @Tags academic
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-config/courses/{id} [delete]
func (c *AcademicController) DeleteCourse(ctx *gin.Context) {
	id, ok := pathID(ctx, "course")
	if !ok {
		return
	}

	if err := c.academicService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Course deleted successfully"},
		Timestamp: time.Now(),
	})
}
