package dto

// LoginRequest represents the login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"owner@unilib.uz"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// RegisterRequest represents a self-service account registration
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email" example:"student@nukus.uz"`
	Password     string `json:"password" binding:"required,min=8" example:"secret123"`
	FirstName    string `json:"firstName" binding:"required" example:"Aziz"`
	LastName     string `json:"lastName" binding:"required" example:"Karimov"`
	UniversityID *int64 `json:"universityId" example:"1"`
}

// CreateAdminRequest represents an owner request to create a superadmin
// account bound to one university.
type CreateAdminRequest struct {
	Email        string `json:"email" binding:"required,email" example:"admin@nukus.uz"`
	Password     string `json:"password" binding:"required,min=8" example:"secret123"`
	UniversityID int64  `json:"universityId" binding:"required" example:"1"`
}

// TokenResponse carries the issued access token. The refresh token is
// delivered as an httpOnly cookie and never appears in the body.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}
