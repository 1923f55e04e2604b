package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/models/dto"
	"github.com/bekzod/unilib/internal/app/services"
	"github.com/bekzod/unilib/internal/middleware"
)

// refreshCookieName is the cookie carrying the refresh token. It is
// httpOnly and scoped to the auth endpoints.
const (
	refreshCookieName = "refresh_token"
	refreshCookiePath = "/api/v1/auth"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService     services.AuthService
	refreshTokenTTL int
	secureCookies   bool
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, refreshTokenTTL int, secureCookies bool) *AuthController {
	return &AuthController{
		authService:     authService,
		refreshTokenTTL: refreshTokenTTL,
		secureCookies:   secureCookies,
	}
}

func (c *AuthController) setRefreshCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(refreshCookieName, token, maxAge, refreshCookiePath, "", c.secureCookies, true)
}

func (c *AuthController) tokenResponse(pair *services.TokenPair) dto.TokenResponse {
	return dto.TokenResponse{
		AccessToken: pair.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   pair.ExpiresIn,
	}
}

// Login authenticates an account
// @Summary Log in
// @Description Checks credentials and returns an access token. The refresh token is set as an httpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Logged in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Incorrect email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid login data", err)
		return
	}

	pair, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setRefreshCookie(ctx, pair.RefreshToken, c.refreshTokenTTL)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.tokenResponse(pair)))
}

// Register creates a self-service user account
// @Summary Register
// @Description Creates a regular user account. Registration never grants an elevated role.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account information"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid registration data", err)
		return
	}

	id, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.IDResponse{ID: id}))
}

// CreateAdmin creates a superadmin account
// @Summary Create a superadmin
// @Description Creates a superadmin bound to one university. Owner only; the role is always superadmin.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdminRequest true "Admin information"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Admin created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Owner role required"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /auth/create-admin [post]
func (c *AuthController) CreateAdmin(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid admin data", err)
		return
	}

	id, err := c.authService.CreateAdmin(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.IDResponse{ID: id}))
}

// Refresh rotates the token pair
// @Summary Refresh tokens
// @Description Validates the refresh cookie and issues a fresh access/refresh pair.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Tokens rotated"
// @Failure 401 {object} dto.ErrorResponse "Missing, invalid or expired refresh token"
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	refreshToken, err := ctx.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Could not validate credentials")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	pair, err := c.authService.Refresh(ctx, refreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setRefreshCookie(ctx, pair.RefreshToken, c.refreshTokenTTL)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.tokenResponse(pair)))
}

// Logout clears the refresh cookie
// @Summary Log out
// @Description Clears the refresh cookie. Access tokens simply expire.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.setRefreshCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "logged out"}))
}
