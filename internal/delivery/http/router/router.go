// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petlink/internal/delivery/http/middleware"
	"petlink/internal/delivery/http/router/handler"
	"petlink/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PetHandler          *handler.PetHandler
	PublicHandler       *handler.PublicHandler
	UserHandler         *handler.UserHandler
	NotificationHandler *handler.NotificationHandler
	MediaHandler        *handler.MediaHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	petHandler          *handler.PetHandler
	publicHandler       *handler.PublicHandler
	userHandler         *handler.UserHandler
	notificationHandler *handler.NotificationHandler
	mediaHandler        *handler.MediaHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		petHandler:          params.PetHandler,
		publicHandler:       params.PublicHandler,
		userHandler:         params.UserHandler,
		notificationHandler: params.NotificationHandler,
		mediaHandler:        params.MediaHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Upload credentials for the media CDN. The page requests these before
	// the user is necessarily signed in, so the endpoint stays public.
	e.GET("/api/imagekit-auth", r.mediaHandler.UploadAuth)

	// Public pet profile, reachable by scanning a tag
	publicGroup := e.Group("/public")
	{
		publicGroup.GET("/pets/:petId", r.publicHandler.GetProfile)
		publicGroup.POST("/pets/:petId/scan", r.publicHandler.RecordScan)
	}

	// First sign-in registration
	authGroup := e.Group("/auth")
	authGroup.Use(r.authMiddleware.Authenticate)
	{
		authGroup.POST("/register", r.userHandler.Register)
	}

	// Pet management for signed-in users
	petGroup := e.Group("/pets")
	petGroup.Use(r.authMiddleware.Authenticate)
	{
		petGroup.GET("", r.petHandler.ListPets)
		petGroup.GET("/:petId", r.petHandler.GetPet)
		petGroup.GET("/:petId/qr", r.petHandler.ProfileQR)
		petGroup.POST("", r.petHandler.CreatePet, r.authMiddleware.RequireWriteAccess)
		petGroup.POST("/claim", r.petHandler.ClaimPet, r.authMiddleware.RequireWriteAccess)
		petGroup.PUT("/:petId", r.petHandler.UpdatePet, r.authMiddleware.RequireWriteAccess)
		petGroup.DELETE("/:petId", r.petHandler.DeletePet, r.authMiddleware.RequireWriteAccess)
	}

	// Own profile
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.userHandler.GetProfile)
		profileGroup.PUT("", r.userHandler.UpdateProfile, r.authMiddleware.RequireWriteAccess)
	}

	// Notification inbox
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.POST("/mark-read", r.notificationHandler.MarkRead, r.authMiddleware.RequireWriteAccess)
		notificationGroup.POST("/delete", r.notificationHandler.Delete, r.authMiddleware.RequireWriteAccess)
	}

	// Admin surface
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.userHandler.ListUsers)
		adminGroup.GET("/users/:uid", r.userHandler.GetUser)
		adminGroup.POST("/users", r.userHandler.CreateUser)
		adminGroup.PUT("/users/:uid", r.userHandler.UpdateUser)
		adminGroup.DELETE("/users/:uid", r.userHandler.DeleteUser)
		adminGroup.POST("/notifications", r.notificationHandler.Create)
	}
}
