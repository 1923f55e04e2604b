package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/services"
	"github.com/bekzod/unilib/internal/middleware"
)

// NewsController handles news endpoints
type NewsController struct {
	newsService services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService) *NewsController {
	return &NewsController{newsService: newsService}
}

// Create publishes a news item
// @Summary Create news
// @Description Publishes a news item with optional tags and image. Superadmins publish for their own university.
// @Tags news
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param body formData string true "Body"
// @Param tags formData []string false "Tags" collectionFormat(multi)
// @Param date formData string false "Publication date (YYYY-MM-DD)"
// @Param image formData file false "Image"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "News created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /news [post]
func (c *NewsController) Create(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateNewsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		badRequest(ctx, "Invalid news data", err)
		return
	}

	image := optionalFormFile(ctx, "image")

	id, err := c.newsService.Create(ctx, actor, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.IDResponse{ID: id}))
}

// GetByID returns one news item
// @Summary Get news
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} dto.APIResponse{data=models.News} "News item"
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [get]
func (c *NewsController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	news, err := c.newsService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(news))
}

// GetAll lists news, newest first
// @Summary List news
// @Tags news
// @Produce json
// @Param universityId query int false "Filter by university"
// @Param tag query string false "Filter by tag"
// @Success 200 {object} dto.APIResponse{data=[]models.News} "News items"
// @Router /news [get]
func (c *NewsController) GetAll(ctx *gin.Context) {
	tag := strings.TrimSpace(ctx.Query("tag"))

	news, err := c.newsService.GetAll(ctx, queryInt64(ctx, "universityId"), tag)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(news))
}

// Update updates a news item
// @Summary Update news
// @Description Partially updates a news item. Passing tags replaces the tag set; a new image replaces the stored one.
// @Tags news
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Param image formData file false "Image"
// @Success 200 {object} dto.APIResponse{data=models.News} "Updated news"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [put]
func (c *NewsController) Update(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateNewsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		badRequest(ctx, "Invalid news data", err)
		return
	}

	image := optionalFormFile(ctx, "image")

	news, err := c.newsService.Update(ctx, actor, id, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(news))
}

// Delete removes a news item
// @Summary Delete news
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "News deleted"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [delete]
func (c *NewsController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.newsService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "news deleted"}))
}
