package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bekzod/unilib/internal/app/controllers"
	"github.com/bekzod/unilib/internal/app/models"
	"github.com/bekzod/unilib/internal/middleware"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth       *controllers.AuthController
	University *controllers.UniversityController
	Direction  *controllers.DirectionController
	Kafedra    *controllers.KafedraController
	Subject    *controllers.SubjectController
	Literature *controllers.LiteratureController
	News       *controllers.NewsController
	User       *controllers.UserController
	Admin      *controllers.AdminController
	Stats      *controllers.StatsController
	Health     *controllers.HealthController
}

// SetupRouter configures all application routes.
//
// Reads on catalog resources are public. Writes require superadmin or
// owner; account and admin management plus university creation are
// owner only.
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", c.Health.Check)

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.Refresh)
		auth.POST("/logout", c.Auth.Logout)
	}

	// --- Public catalog reads ---
	v1.GET("/universities", c.University.GetAll)
	v1.GET("/universities/:id", c.University.GetByID)
	v1.GET("/directions", c.Direction.GetAll)
	v1.GET("/directions/:id", c.Direction.GetByID)
	v1.GET("/kafedras", c.Kafedra.GetAll)
	v1.GET("/kafedras/:id", c.Kafedra.GetByID)
	v1.GET("/subjects", c.Subject.GetAll)
	v1.GET("/subjects/:id", c.Subject.GetByID)
	v1.GET("/literatures", c.Literature.GetAll)
	v1.GET("/literatures/:id", c.Literature.GetByID)
	v1.GET("/news", c.News.GetAll)
	v1.GET("/news/:id", c.News.GetByID)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/users/me", c.User.GetMe)
		authenticated.PUT("/users/me", c.User.UpdateMe)
		authenticated.GET("/literatures/:id/download", c.Literature.Download)

		// Catalog writes require an admin role; the service layer
		// narrows superadmins to their own university.
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.RoleRequired(models.RoleSuperAdmin, models.RoleOwner))
		{
			adminProtected.POST("/directions", c.Direction.Create)
			adminProtected.PUT("/directions/:id", c.Direction.Update)
			adminProtected.DELETE("/directions/:id", c.Direction.Delete)

			adminProtected.POST("/kafedras", c.Kafedra.Create)
			adminProtected.PUT("/kafedras/:id", c.Kafedra.Update)
			adminProtected.DELETE("/kafedras/:id", c.Kafedra.Delete)

			adminProtected.POST("/subjects/bulk", c.Subject.BulkCreate)
			adminProtected.PUT("/subjects/:id", c.Subject.Update)
			adminProtected.DELETE("/subjects/:id", c.Subject.Delete)

			adminProtected.POST("/literatures", c.Literature.Create)
			adminProtected.POST("/literatures/upload", c.Literature.Create)
			adminProtected.PUT("/literatures/:id", c.Literature.Update)
			adminProtected.PUT("/literatures/upload/:id", c.Literature.Update)
			adminProtected.DELETE("/literatures/:id", c.Literature.Delete)

			adminProtected.POST("/news", c.News.Create)
			adminProtected.PUT("/news/:id", c.News.Update)
			adminProtected.DELETE("/news/:id", c.News.Delete)

			adminProtected.PUT("/universities/:id", c.University.Update)

			adminProtected.GET("/stats/general", c.Stats.General)
			adminProtected.GET("/stats/owner-universities", c.Stats.Universities)
			adminProtected.GET("/statistics/export", c.Stats.Export)
		}

		// Owner-only management.
		ownerProtected := authenticated.Group("")
		ownerProtected.Use(authMiddleware.RoleRequired(models.RoleOwner))
		{
			ownerProtected.POST("/universities", c.University.Create)
			ownerProtected.DELETE("/universities/:id", c.University.Delete)

			ownerProtected.POST("/auth/create-admin", c.Auth.CreateAdmin)
			ownerProtected.POST("/admins", c.Admin.Create)
			ownerProtected.GET("/admins", c.Admin.GetAll)
			ownerProtected.GET("/admins/:id", c.Admin.GetByID)
			ownerProtected.PUT("/admins/:id", c.Admin.Update)
			ownerProtected.DELETE("/admins/:id", c.Admin.Delete)

			ownerProtected.GET("/users", c.User.GetAll)
			ownerProtected.PUT("/users/:id", c.User.Update)
			ownerProtected.POST("/users/:id/block", c.User.Block)
			ownerProtected.DELETE("/users/:id", c.User.Delete)
		}
	}
}
