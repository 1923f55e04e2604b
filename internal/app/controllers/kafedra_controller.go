package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/services"
	"github.com/bekzod/unilib/internal/middleware"
)

// KafedraController handles kafedra (department) endpoints
type KafedraController struct {
	kafedraService services.KafedraService
}

// NewKafedraController creates a new KafedraController
func NewKafedraController(kafedraService services.KafedraService) *KafedraController {
	return &KafedraController{kafedraService: kafedraService}
}

// Create creates a kafedra
// @Summary Create a kafedra
// @Description Creates a kafedra. Superadmins create in their own university; owners pass universityId.
// @Tags kafedras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateKafedraRequest true "Kafedra information"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Kafedra created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /kafedras [post]
func (c *KafedraController) Create(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateKafedraRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid kafedra data", err)
		return
	}

	id, err := c.kafedraService.Create(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.IDResponse{ID: id}))
}

// GetByID returns one kafedra
// @Summary Get a kafedra
// @Tags kafedras
// @Produce json
// @Param id path int true "Kafedra ID"
// @Success 200 {object} dto.APIResponse{data=models.Kafedra} "Kafedra"
// @Failure 404 {object} dto.ErrorResponse "Kafedra not found"
// @Router /kafedras/{id} [get]
func (c *KafedraController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	kafedra, err := c.kafedraService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(kafedra))
}

// GetAll lists kafedras
// @Summary List kafedras
// @Tags kafedras
// @Produce json
// @Param universityId query int false "Filter by university"
// @Success 200 {object} dto.APIResponse{data=[]models.Kafedra} "Kafedras"
// @Router /kafedras [get]
func (c *KafedraController) GetAll(ctx *gin.Context) {
	kafedras, err := c.kafedraService.GetAll(ctx, queryInt64(ctx, "universityId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(kafedras))
}

// Update updates a kafedra
// @Summary Update a kafedra
// @Tags kafedras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Kafedra ID"
// @Param request body dto.UpdateKafedraRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Kafedra} "Updated kafedra"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Kafedra not found"
// @Router /kafedras/{id} [put]
func (c *KafedraController) Update(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateKafedraRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid kafedra data", err)
		return
	}

	kafedra, err := c.kafedraService.Update(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(kafedra))
}

// Delete removes a kafedra
// @Summary Delete a kafedra
// @Tags kafedras
// @Produce json
// @Security BearerAuth
// @Param id path int true "Kafedra ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Kafedra deleted"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Kafedra not found"
// @Router /kafedras/{id} [delete]
func (c *KafedraController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.kafedraService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "kafedra deleted"}))
}
