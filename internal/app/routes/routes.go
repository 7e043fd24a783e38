package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/registrar/internal/app/controllers"
	"github.com/yigit/registrar/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseTypeController *controllers.CourseTypeController,
	courseController *controllers.CourseController,
	offeringController *controllers.CourseOfferingController,
	registrationController *controllers.RegistrationController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	courseTypes := v1.Group("/course-types")
	{
		courseTypes.GET("", courseTypeController.GetAllCourseTypes)
		courseTypes.GET("/:id", courseTypeController.GetCourseTypeByID)
		courseTypes.POST("", courseTypeController.CreateCourseType)
		courseTypes.PUT("/:id", courseTypeController.UpdateCourseType)
		courseTypes.DELETE("/:id", courseTypeController.DeleteCourseType)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	offerings := v1.Group("/course-offerings")
	{
		offerings.GET("", offeringController.GetAllCourseOfferings) // ?courseTypeId=&include=registrations
		offerings.GET("/:id", offeringController.GetCourseOfferingByID)
		offerings.GET("/:id/registrations", offeringController.GetOfferingRegistrations)
		offerings.POST("", offeringController.CreateCourseOffering)
		offerings.PUT("/:id", offeringController.UpdateCourseOffering)
		offerings.DELETE("/:id", offeringController.DeleteCourseOffering)
	}

	registrations := v1.Group("/registrations")
	{
		registrations.GET("", registrationController.GetAllRegistrations) // ?offeringId=
		registrations.GET("/:id", registrationController.GetRegistrationByID)
		registrations.POST("", registrationController.CreateRegistration)
		registrations.PUT("/:id", registrationController.UpdateRegistration)
		registrations.DELETE("/:id", registrationController.DeleteRegistration)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
