package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tolgahan/campusstock/internal/app/controllers"
	"github.com/tolgahan/campusstock/internal/app/models"
	"github.com/tolgahan/campusstock/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	productController *controllers.ProductController,
	academicController *controllers.AcademicController,
	subAdminController *controllers.SubAdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Student roster routes ---
	users := v1.Group("/users")
	{
		users.POST("/register", studentController.Register)
		users.GET("", studentController.ListAll)
		users.POST("/import/:course", studentController.Import)
		users.GET("/:course", studentController.ListByCourse)
		users.GET("/:course/:id", studentController.GetByID)
		users.PUT("/:course/:id", studentController.Update)
		users.DELETE("/:course/:id", studentController.Delete)
	}

	// --- Product catalog routes ---
	products := v1.Group("/products")
	{
		products.GET("", productController.List)
		products.POST("", productController.Create)
		products.GET("/:id", productController.GetByID)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
	}

	// --- Academic configuration routes ---
	config := v1.Group("/config")
	{
		config.GET("/academic", academicController.GetConfig)
		config.PUT("/academic", academicController.ReplaceConfig)
	}
	academicConfig := v1.Group("/academic-config")
	{
		academicConfig.GET("/courses", academicController.ListCourses)
		academicConfig.POST("/courses", academicController.AddCourse)
		academicConfig.DELETE("/courses/:id", academicController.DeleteCourse)
	}

	// --- Sub-admin routes ---
	subAdmins := v1.Group("/subadmins")
	{
		// Login is the only public sub-admin endpoint
		subAdmins.POST("/login", subAdminController.Login)

		// Account management requires the seeded Super identity
		subAdminsProtected := subAdmins.Group("")
		subAdminsProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleSuper)))
		{
			subAdminsProtected.GET("", subAdminController.List)
			subAdminsProtected.POST("", subAdminController.Create)
			subAdminsProtected.PUT("/:id", subAdminController.Update)
			subAdminsProtected.DELETE("/:id", subAdminController.Delete)
		}
	}
}
