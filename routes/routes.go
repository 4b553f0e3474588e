package routes

import (
	"time"

	"go_fileapi_backend/controllers"
	"go_fileapi_backend/middleware"
	"go_fileapi_backend/queue"
	"go_fileapi_backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes sets up all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, q *queue.FileQueue, store *services.FileStore) {
	// Initialize controllers
	demoController := controllers.NewDemoController()
	userController := controllers.NewUserController(db)
	fileController := controllers.NewFileController(db, q, store)

	// Rate-limit uploads per client IP
	uploadLimiter := middleware.NewRateLimiter(30, time.Minute, 5*time.Minute)
	uploadLimiter.StartCleanup()

	// Demo routes
	router.GET("/", demoController.ReadRoot)
	router.GET("/items/:id", demoController.ReadItem)
	router.PUT("/items/:id", demoController.UpdateItem)

	// User and item routes
	router.POST("/users/", userController.CreateUser)
	router.GET("/users/", userController.GetUsers)
	router.GET("/users/:id", userController.GetUser)
	router.POST("/users/:id/items/", userController.CreateUserItem)
	router.GET("/items/", userController.GetItems)

	// File routes
	router.POST("/upload-file/", uploadLimiter.Middleware(), fileController.UploadFile)
	router.GET("/files", fileController.GetFiles)
	router.GET("/files/:id", fileController.GetFile)
	router.DELETE("/files/:id", fileController.DeleteFile)
	router.DELETE("/files/", fileController.DeleteFiles)
}
