package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
)

// RegistrationController handles student registration endpoints
type RegistrationController struct {
	registrationService services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// CreateRegistration registers a student for an offering
// @Summary Register a student
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body dto.RegistrationRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Registration}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Router /registrations [post]
func (c *RegistrationController) CreateRegistration(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	registration, err := c.registrationService.CreateRegistration(ctx, req.Form())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(registration))
}

// GetRegistrationByID retrieves a registration by ID
// @Summary Get a registration
// @Tags registrations
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=models.Registration}
// @Failure 404 {object} dto.APIResponse "Registration not found"
// @Router /registrations/{id} [get]
func (c *RegistrationController) GetRegistrationByID(ctx *gin.Context) {
	registration, err := c.registrationService.GetRegistrationByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(registration))
}

// GetAllRegistrations lists registrations, optionally for a single offering
// @Summary List registrations
// @Tags registrations
// @Produce json
// @Param offeringId query string false "Course offering ID filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Registration}
// @Router /registrations [get]
func (c *RegistrationController) GetAllRegistrations(ctx *gin.Context) {
	var (
		registrations any
		err           error
	)
	if offeringID := ctx.Query("offeringId"); offeringID != "" {
		registrations, err = c.registrationService.GetRegistrationsByOffering(ctx, offeringID)
	} else {
		registrations, err = c.registrationService.GetAllRegistrations(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(registrations))
}

// UpdateRegistration replaces the student details of a registration
// @Summary Update a registration
// @Description The registration date is kept; the offering name is taken from the selected offering
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param request body dto.RegistrationRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=models.Registration}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 404 {object} dto.APIResponse "Registration not found"
// @Router /registrations/{id} [put]
func (c *RegistrationController) UpdateRegistration(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	registration, err := c.registrationService.UpdateRegistration(ctx, ctx.Param("id"), req.Form())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(registration))
}

// DeleteRegistration deletes a registration
// @Summary Delete a registration
// @Tags registrations
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Registration not found"
// @Router /registrations/{id} [delete]
func (c *RegistrationController) DeleteRegistration(ctx *gin.Context) {
	if err := c.registrationService.DeleteRegistration(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Registration deleted"}))
}
