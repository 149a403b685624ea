package routes

import (
	"github.com/bayoffindiaofficial/bengal-biz-finder/configs"
	"github.com/bayoffindiaofficial/bengal-biz-finder/controllers"
	"github.com/bayoffindiaofficial/bengal-biz-finder/middlewares"
	"github.com/bayoffindiaofficial/bengal-biz-finder/repository"
	"github.com/bayoffindiaofficial/bengal-biz-finder/services"
	"github.com/bayoffindiaofficial/bengal-biz-finder/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, store *storage.LocalStore) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Wiring
	userRepo := repository.NewUserRepository(db)
	bizRepo := repository.NewBusinessRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	bizSvc := services.NewBusinessService(bizRepo, photoRepo)

	authCtl := controllers.NewAuthController(authSvc)
	bizCtl := controllers.NewBusinessController(bizSvc, store)
	uploadCtl := controllers.NewUploadController(store)
	metaCtl := controllers.NewMetaController()

	authRequired := middlewares.AuthMiddleware(cfg.JWTSecret)
	authOptional := middlewares.OptionalAuthMiddleware(cfg.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtl.Register)
		a.POST("/login", authCtl.Login)
		a.GET("/me", authRequired, authCtl.Me)
	}

	// Public directory
	r.GET("/businesses", bizCtl.List)
	r.GET("/businesses/:id", authOptional, bizCtl.Detail)

	// Reference data
	meta := r.Group("/meta")
	{
		meta.GET("/districts", metaCtl.Districts)
		meta.GET("/business-types", metaCtl.BusinessTypes)
	}

	// Owner actions (must be logged in)
	owner := r.Group("/", authRequired)
	{
		owner.POST("/businesses", bizCtl.Create)
		owner.PATCH("/businesses/:id", bizCtl.Update)
		owner.DELETE("/businesses/:id", bizCtl.Delete)
		owner.POST("/uploads", uploadCtl.Upload)
	}

	// Profile
	profile := r.Group("/profile", authRequired)
	{
		profile.GET("/businesses", bizCtl.Mine)
	}
}
