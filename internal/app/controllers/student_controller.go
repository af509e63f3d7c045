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

// StudentController handles roster-related operations
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// Register handles student registration
// @Summary Register a new student
// @Description Creates a new student record; the password is stored hashed and never returned
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Student ID or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/register [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// ListAll retrieves all students across courses
// @Summary List all students
// @Description Retrieves every student, optionally joined with legacy orders
// @Tags students
// @Produce json
// @Param year query int false "Filter by year"
// @Param includeOrders query bool false "Join legacy orders"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *StudentController) ListAll(ctx *gin.Context) {
	c.list(ctx, "")
}

// ListByCourse retrieves the students of one course
// @Summary List students of a course
// @Tags students
// @Produce json
// @Param course path string true "Course code"
// @Param year query int false "Filter by year"
// @Param includeOrders query bool false "Join legacy orders"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{course} [get]
func (c *StudentController) ListByCourse(ctx *gin.Context) {
	c.list(ctx, ctx.Param("course"))
}

func (c *StudentController) list(ctx *gin.Context, course string) {
	filter := services.StudentListFilter{Course: course}

	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year filter")
			errorDetail = errorDetail.WithDetails("Year must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.Year = year
	}
	filter.IncludeOrders = ctx.Query("includeOrders") == "true"

	students, err := c.studentService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves one student with their applicable products
// @Summary Get student by ID
// @Description Retrieves a student of a course together with the catalog subset that applies to them
// @Tags students
// @Produce json
// @Param course path string true "Course code"
// @Param id path int true "Student record ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentDetailResponse} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{course}/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "student")
	if !ok {
		return
	}

	detail, err := c.studentService.GetByID(ctx, ctx.Param("course"), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      detail,
		Timestamp: time.Now(),
	})
}

// Update applies a partial update to a student
// @Summary Update a student
// @Description Updates the supplied fields only; items, when present, replaces the whole map
// @Tags students
// @Accept json
// @Produce json
// @Param course path string true "Course code"
// @Param id path int true "Student record ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{course}/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "student")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Update(ctx, ctx.Param("course"), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// Delete removes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param course path string true "Course code"
// @Param id path int true "Student record ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{course}/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "student")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx, ctx.Param("course"), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student deleted successfully"},
		Timestamp: time.Now(),
	})
}

// Import ingests a roster file into one course
// @Summary Import a student roster
// @Description Accepts a multipart Excel workbook or CSV file; blank rows are skipped, existing student IDs are updated
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param course path string true "Course code"
// @Param file formData file true "Roster file (.xlsx or .csv)"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResultResponse} "Roster imported"
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/import/{course} [post]
func (c *StudentController) Import(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Roster file missing")
		errorDetail = errorDetail.WithDetails("Multipart field 'file' is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	rows, err := services.ParseRoster(file)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unreadable roster file")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.studentService.ImportBatch(ctx, ctx.Param("course"), rows)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// pathID parses the :id path segment, answering 400 on junk input.
func pathID(ctx *gin.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+what+" ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
