package controllers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/services"
	"github.com/bekzod/unilib/internal/middleware"
)

// LiteratureController handles literature endpoints
type LiteratureController struct {
	literatureService services.LiteratureService
}

// NewLiteratureController creates a new LiteratureController
func NewLiteratureController(literatureService services.LiteratureService) *LiteratureController {
	return &LiteratureController{literatureService: literatureService}
}

// optionalFormFile returns the named upload or nil when the client sent none.
func optionalFormFile(ctx *gin.Context, name string) *multipart.FileHeader {
	file, err := ctx.FormFile(name)
	if err != nil {
		return nil
	}
	return file
}

// Create creates a literature entry
// @Summary Create literature
// @Description Creates a literature entry scoped to the subject's university. Accepts multipart form data with optional file and image uploads.
// @Tags literatures
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param kind formData string true "Kind"
// @Param subjectId formData int true "Subject ID"
// @Param file formData file false "Electronic copy"
// @Param image formData file false "Cover image"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Literature created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /literatures [post]
// @Router /literatures/upload [post]
func (c *LiteratureController) Create(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateLiteratureRequest
	if err := ctx.ShouldBind(&req); err != nil {
		badRequest(ctx, "Invalid literature data", err)
		return
	}

	file := optionalFormFile(ctx, "file")
	image := optionalFormFile(ctx, "image")

	id, err := c.literatureService.Create(ctx, actor, &req, file, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.IDResponse{ID: id}))
}

// GetByID returns one literature entry with its availability score
// @Summary Get literature
// @Tags literatures
// @Produce json
// @Param id path int true "Literature ID"
// @Success 200 {object} dto.APIResponse{data=dto.LiteratureResponse} "Literature"
// @Failure 404 {object} dto.ErrorResponse "Literature not found"
// @Router /literatures/{id} [get]
func (c *LiteratureController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	literature, err := c.literatureService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(literature))
}

// GetAll lists literature entries
// @Summary List literature
// @Tags literatures
// @Produce json
// @Param universityId query int false "Filter by university"
// @Param subjectId query int false "Filter by subject"
// @Success 200 {object} dto.APIResponse{data=[]dto.LiteratureResponse} "Literature entries"
// @Router /literatures [get]
func (c *LiteratureController) GetAll(ctx *gin.Context) {
	literatures, err := c.literatureService.GetAll(ctx, queryInt64(ctx, "universityId"), queryInt64(ctx, "subjectId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(literatures))
}

// Update updates a literature entry
// @Summary Update literature
// @Description Partially updates a literature entry. New uploads replace the stored file or image.
// @Tags literatures
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Literature ID"
// @Param file formData file false "Electronic copy"
// @Param image formData file false "Cover image"
// @Success 200 {object} dto.APIResponse{data=dto.LiteratureResponse} "Updated literature"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Literature not found"
// @Router /literatures/{id} [put]
// @Router /literatures/upload/{id} [put]
func (c *LiteratureController) Update(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateLiteratureRequest
	if err := ctx.ShouldBind(&req); err != nil {
		badRequest(ctx, "Invalid literature data", err)
		return
	}

	file := optionalFormFile(ctx, "file")
	image := optionalFormFile(ctx, "image")

	literature, err := c.literatureService.Update(ctx, actor, id, &req, file, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(literature))
}

// Delete removes a literature entry
// @Summary Delete literature
// @Tags literatures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Literature ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Literature deleted"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Literature not found"
// @Router /literatures/{id} [delete]
func (c *LiteratureController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.literatureService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "literature deleted"}))
}

// Download streams the stored electronic copy
// @Summary Download literature file
// @Description Streams the electronic copy as an attachment. Requires authentication.
// @Tags literatures
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Literature ID"
// @Success 200 {file} binary "File content"
// @Failure 404 {object} dto.ErrorResponse "Literature or file not found"
// @Router /literatures/{id}/download [get]
func (c *LiteratureController) Download(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	path, err := c.literatureService.FilePath(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(path, filepath.Base(path))
}
