package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/services"
	"github.com/bekzod/unilib/internal/middleware"
)

// AdminController handles admin management endpoints. Owner only.
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// Create creates a superadmin account
// @Summary Create an admin
// @Description Creates a superadmin bound to one university.
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdminRequest true "Admin information"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Admin created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Owner role required"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admins [post]
func (c *AdminController) Create(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid admin data", err)
		return
	}

	id, err := c.adminService.Create(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.IDResponse{ID: id}))
}

// GetByID returns one admin
// @Summary Get an admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Admin"
// @Failure 403 {object} dto.ErrorResponse "Owner role required"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [get]
func (c *AdminController) GetByID(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	admin, err := c.adminService.GetByID(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admin))
}

// GetAll lists admins
// @Summary List admins
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Admin} "Admins"
// @Failure 403 {object} dto.ErrorResponse "Owner role required"
// @Router /admins [get]
func (c *AdminController) GetAll(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	admins, err := c.adminService.GetAll(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admins))
}

// Update updates an admin account
// @Summary Update an admin
// @Description Updates an admin's email, password or university. The owner account cannot be modified.
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Param request body dto.UpdateAdminRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Admin} "Updated admin"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Owner role required"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [put]
func (c *AdminController) Update(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid admin data", err)
		return
	}

	admin, err := c.adminService.Update(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admin))
}

// Delete removes an admin account
// @Summary Delete an admin
// @Description Deletes a superadmin. The owner account cannot be deleted.
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Admin deleted"
// @Failure 403 {object} dto.ErrorResponse "Owner role required"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [delete]
func (c *AdminController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.adminService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "admin deleted"}))
}
