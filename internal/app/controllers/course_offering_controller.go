package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
)

// CourseOfferingController handles course offering endpoints
type CourseOfferingController struct {
	offeringService     services.CourseOfferingService
	registrationService services.RegistrationService
}

// NewCourseOfferingController creates a new CourseOfferingController
func NewCourseOfferingController(offeringService services.CourseOfferingService, registrationService services.RegistrationService) *CourseOfferingController {
	return &CourseOfferingController{
		offeringService:     offeringService,
		registrationService: registrationService,
	}
}

// CreateCourseOffering handles course offering creation
// @Summary Create a new course offering
// @Description The offering name is derived from the current course type and course names
// @Tags course-offerings
// @Accept json
// @Produce json
// @Param request body dto.CourseOfferingRequest true "Course offering information"
// @Success 201 {object} dto.APIResponse{data=models.CourseOffering}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 409 {object} dto.APIResponse "Course offering already exists"
// @Router /course-offerings [post]
func (c *CourseOfferingController) CreateCourseOffering(ctx *gin.Context) {
	var req dto.CourseOfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	offering, err := c.offeringService.CreateCourseOffering(ctx, req.CourseTypeID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(offering))
}

// GetCourseOfferingByID retrieves a course offering by ID
// @Summary Get a course offering
// @Tags course-offerings
// @Produce json
// @Param id path string true "Course offering ID"
// @Success 200 {object} dto.APIResponse{data=models.CourseOffering}
// @Failure 404 {object} dto.APIResponse "Course offering not found"
// @Router /course-offerings/{id} [get]
func (c *CourseOfferingController) GetCourseOfferingByID(ctx *gin.Context) {
	offering, err := c.offeringService.GetCourseOfferingByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(offering))
}

// GetAllCourseOfferings lists offerings with their resolved names
// @Summary List course offerings
// @Description Optionally filtered by course type. include=registrations embeds each offering's registrations.
// @Tags course-offerings
// @Produce json
// @Param courseTypeId query string false "Course type ID filter"
// @Param include query string false "Set to 'registrations' to embed registrations"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseOfferingResponse}
// @Router /course-offerings [get]
func (c *CourseOfferingController) GetAllCourseOfferings(ctx *gin.Context) {
	summaries, err := c.offeringService.GetOfferingSummaries(ctx, ctx.Query("courseTypeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if ctx.Query("include") == "registrations" {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(summaries))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCourseOfferingResponses(summaries)))
}

// GetOfferingRegistrations lists the registrations of one offering. Those of
// a deleted offering are still listed, same as GET /registrations?offeringId=.
// @Summary List registrations of a course offering
// @Tags course-offerings
// @Produce json
// @Param id path string true "Course offering ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Registration}
// @Router /course-offerings/{id}/registrations [get]
func (c *CourseOfferingController) GetOfferingRegistrations(ctx *gin.Context) {
	registrations, err := c.registrationService.GetRegistrationsByOffering(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(registrations))
}

// UpdateCourseOffering changes the course type and course of an offering
// @Summary Update a course offering
// @Tags course-offerings
// @Accept json
// @Produce json
// @Param id path string true "Course offering ID"
// @Param request body dto.CourseOfferingRequest true "Course offering information"
// @Success 200 {object} dto.APIResponse{data=models.CourseOffering}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 404 {object} dto.APIResponse "Course offering not found"
// @Failure 409 {object} dto.APIResponse "Course offering already exists"
// @Router /course-offerings/{id} [put]
func (c *CourseOfferingController) UpdateCourseOffering(ctx *gin.Context) {
	var req dto.CourseOfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	offering, err := c.offeringService.UpdateCourseOffering(ctx, ctx.Param("id"), req.CourseTypeID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(offering))
}

// DeleteCourseOffering deletes an offering
// @Summary Delete a course offering
// @Description Registrations of the offering are kept with their recorded offering name
// @Tags course-offerings
// @Produce json
// @Param id path string true "Course offering ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Course offering not found"
// @Router /course-offerings/{id} [delete]
func (c *CourseOfferingController) DeleteCourseOffering(ctx *gin.Context) {
	if err := c.offeringService.DeleteCourseOffering(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course offering deleted"}))
}
