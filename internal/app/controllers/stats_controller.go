package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/services"
	"github.com/bekzod/unilib/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StatsController handles statistics and export endpoints
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// General returns aggregate counts
// @Summary General statistics
// @Description Returns university, student and direction counts, scoped to the caller's university for superadmins.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.GeneralStatsResponse} "Counts"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /stats/general [get]
func (c *StatsController) General(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	stats, err := c.statsService.General(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// Universities returns per-university totals
// @Summary Per-university statistics
// @Description Returns totals and the accessible-literature percentage for every university in scope.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UniversityStatsResponse} "Per-university totals"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /stats/owner-universities [get]
func (c *StatsController) Universities(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	stats, err := c.statsService.OwnerUniversities(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// Export streams the catalog report as an xlsx workbook
// @Summary Export catalog report
// @Description Builds an xlsx workbook, one sheet per university, with direction and subject cells merged across their rows.
// @Tags stats
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary "Workbook"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Router /statistics/export [get]
func (c *StatsController) Export(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	workbook, err := c.statsService.Export(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := fmt.Sprintf("library-report-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, workbook)
}
