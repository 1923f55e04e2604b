package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/services"
	"github.com/bekzod/unilib/internal/middleware"
)

// SubjectController handles subject endpoints
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// BulkCreate creates up to ten subjects atomically
// @Summary Bulk create subjects
// @Description Creates a batch of subjects in one transaction. Either all succeed or none do.
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkCreateSubjectsRequest true "Subjects to create"
// @Success 201 {object} dto.APIResponse{data=[]int64} "Created subject IDs"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or batch too large"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Kafedra or direction not found"
// @Router /subjects/bulk [post]
func (c *SubjectController) BulkCreate(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.BulkCreateSubjectsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid subject data", err)
		return
	}

	ids, err := c.subjectService.BulkCreate(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(ids))
}

// GetByID returns one subject with its direction links
// @Summary Get a subject
// @Tags subjects
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [get]
func (c *SubjectController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	subject, err := c.subjectService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subject))
}

// GetAll lists subjects
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Param universityId query int false "Filter by university"
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects"
// @Router /subjects [get]
func (c *SubjectController) GetAll(ctx *gin.Context) {
	subjects, err := c.subjectService.GetAll(ctx, queryInt64(ctx, "universityId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subjects))
}

// Update updates a subject
// @Summary Update a subject
// @Description Partially updates a subject. Passing directionIds replaces the direction links.
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Param request body dto.UpdateSubjectRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Updated subject"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [put]
func (c *SubjectController) Update(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid subject data", err)
		return
	}

	subject, err := c.subjectService.Update(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subject))
}

// Delete removes a subject
// @Summary Delete a subject
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Subject deleted"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [delete]
func (c *SubjectController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.subjectService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "subject deleted"}))
}
