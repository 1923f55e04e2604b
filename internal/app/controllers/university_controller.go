package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/services"
	"github.com/bekzod/unilib/internal/middleware"
)

// UniversityController handles university endpoints
type UniversityController struct {
	universityService services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService services.UniversityService) *UniversityController {
	return &UniversityController{universityService: universityService}
}

// Create creates a university
// @Summary Create a university
// @Description Creates a new university. Owner only.
// @Tags universities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUniversityRequest true "University information"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "University created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Owner role required"
// @Failure 409 {object} dto.ErrorResponse "University already exists"
// @Router /universities [post]
func (c *UniversityController) Create(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid university data", err)
		return
	}

	id, err := c.universityService.Create(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.IDResponse{ID: id}))
}

// GetByID returns one university
// @Summary Get a university
// @Tags universities
// @Produce json
// @Param id path int true "University ID"
// @Success 200 {object} dto.APIResponse{data=models.University} "University"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id} [get]
func (c *UniversityController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	university, err := c.universityService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(university))
}

// GetAll lists universities
// @Summary List universities
// @Tags universities
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.University} "Universities"
// @Router /universities [get]
func (c *UniversityController) GetAll(ctx *gin.Context) {
	universities, err := c.universityService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(universities))
}

// Update updates a university
// @Summary Update a university
// @Description Partially updates a university. Superadmins may only touch their own.
// @Tags universities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "University ID"
// @Param request body dto.UpdateUniversityRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.University} "Updated university"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id} [put]
func (c *UniversityController) Update(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid university data", err)
		return
	}

	university, err := c.universityService.Update(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(university))
}

// Delete removes a university
// @Summary Delete a university
// @Description Deletes a university and everything scoped to it. Owner only.
// @Tags universities
// @Produce json
// @Security BearerAuth
// @Param id path int true "University ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "University deleted"
// @Failure 403 {object} dto.ErrorResponse "Owner role required"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id} [delete]
func (c *UniversityController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.universityService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "university deleted"}))
}
