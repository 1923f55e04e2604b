package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/db"
)

// HealthController reports service liveness
type HealthController struct {
	database *db.PostgresDB
}

// NewHealthController creates a new HealthController
func NewHealthController(database *db.PostgresDB) *HealthController {
	return &HealthController{database: database}
}

// Check reports service and database health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=map[string]string} "Healthy"
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.database.Ping(checkCtx); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unreachable")
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(map[string]string{"status": "ok"}))
}
