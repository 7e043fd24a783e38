package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
)

// CourseTypeController handles course type endpoints
type CourseTypeController struct {
	courseTypeService services.CourseTypeService
}

// NewCourseTypeController creates a new CourseTypeController
func NewCourseTypeController(courseTypeService services.CourseTypeService) *CourseTypeController {
	return &CourseTypeController{
		courseTypeService: courseTypeService,
	}
}

// CreateCourseType handles course type creation
// @Summary Create a new course type
// @Tags course-types
// @Accept json
// @Produce json
// @Param request body dto.CourseTypeRequest true "Course type information"
// @Success 201 {object} dto.APIResponse{data=models.CourseType}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Router /course-types [post]
func (c *CourseTypeController) CreateCourseType(ctx *gin.Context) {
	var req dto.CourseTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	courseType, err := c.courseTypeService.CreateCourseType(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(courseType))
}

// GetCourseTypeByID retrieves a course type by ID
// @Summary Get a course type
// @Tags course-types
// @Produce json
// @Param id path string true "Course type ID"
// @Success 200 {object} dto.APIResponse{data=models.CourseType}
// @Failure 404 {object} dto.APIResponse "Course type not found"
// @Router /course-types/{id} [get]
func (c *CourseTypeController) GetCourseTypeByID(ctx *gin.Context) {
	courseType, err := c.courseTypeService.GetCourseTypeByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courseType))
}

// GetAllCourseTypes lists course types in creation order
// @Summary List course types
// @Tags course-types
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CourseType}
// @Router /course-types [get]
func (c *CourseTypeController) GetAllCourseTypes(ctx *gin.Context) {
	courseTypes, err := c.courseTypeService.GetAllCourseTypes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courseTypes))
}

// UpdateCourseType renames a course type
// @Summary Update a course type
// @Tags course-types
// @Accept json
// @Produce json
// @Param id path string true "Course type ID"
// @Param request body dto.CourseTypeRequest true "Course type information"
// @Success 200 {object} dto.APIResponse{data=models.CourseType}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 404 {object} dto.APIResponse "Course type not found"
// @Router /course-types/{id} [put]
func (c *CourseTypeController) UpdateCourseType(ctx *gin.Context) {
	var req dto.CourseTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	courseType, err := c.courseTypeService.UpdateCourseType(ctx, ctx.Param("id"), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courseType))
}

// DeleteCourseType deletes a course type
// @Summary Delete a course type
// @Description Fails while any course offering uses the course type
// @Tags course-types
// @Produce json
// @Param id path string true "Course type ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Course type not found"
// @Failure 409 {object} dto.APIResponse "Course type is used by offerings"
// @Router /course-types/{id} [delete]
func (c *CourseTypeController) DeleteCourseType(ctx *gin.Context) {
	if err := c.courseTypeService.DeleteCourseType(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course type deleted"}))
}
