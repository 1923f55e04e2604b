package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/services"
	"github.com/bekzod/unilib/internal/middleware"
)

// DirectionController handles study direction endpoints
type DirectionController struct {
	directionService services.DirectionService
}

// NewDirectionController creates a new DirectionController
func NewDirectionController(directionService services.DirectionService) *DirectionController {
	return &DirectionController{directionService: directionService}
}

// Create creates a direction
// @Summary Create a direction
// @Description Creates a study direction. Superadmins create in their own university; owners pass universityId.
// @Tags directions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDirectionRequest true "Direction information"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Direction created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 409 {object} dto.ErrorResponse "Course already exists in this university"
// @Router /directions [post]
func (c *DirectionController) Create(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateDirectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid direction data", err)
		return
	}

	id, err := c.directionService.Create(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.IDResponse{ID: id}))
}

// GetByID returns one direction
// @Summary Get a direction
// @Tags directions
// @Produce json
// @Param id path int true "Direction ID"
// @Success 200 {object} dto.APIResponse{data=models.Direction} "Direction"
// @Failure 404 {object} dto.ErrorResponse "Direction not found"
// @Router /directions/{id} [get]
func (c *DirectionController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	direction, err := c.directionService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(direction))
}

// GetAll lists directions
// @Summary List directions
// @Tags directions
// @Produce json
// @Param universityId query int false "Filter by university"
// @Success 200 {object} dto.APIResponse{data=[]models.Direction} "Directions"
// @Router /directions [get]
func (c *DirectionController) GetAll(ctx *gin.Context) {
	universityID := queryInt64(ctx, "universityId")

	directions, err := c.directionService.GetAll(ctx, universityID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(directions))
}

// Update updates a direction
// @Summary Update a direction
// @Tags directions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Direction ID"
// @Param request body dto.UpdateDirectionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Direction} "Updated direction"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Direction not found"
// @Router /directions/{id} [put]
func (c *DirectionController) Update(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateDirectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid direction data", err)
		return
	}

	direction, err := c.directionService.Update(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(direction))
}

// Delete removes a direction
// @Summary Delete a direction
// @Tags directions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Direction ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Direction deleted"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Direction not found"
// @Router /directions/{id} [delete]
func (c *DirectionController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.directionService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "direction deleted"}))
}
