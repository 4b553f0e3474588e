package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"go_fileapi_backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserController handles user and item requests
type UserController struct {
	db *gorm.DB
}

// NewUserController creates a new user controller
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// CreateUser creates a new user with a bcrypt-hashed password
// POST /users/
func (uc *UserController) CreateUser(c *gin.Context) {
	var request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		unprocessable(c, missingDetail([]string{"body"}, nil))
		return
	}

	// Reject duplicate registrations
	var existing models.User
	if err := uc.db.Where("email = ?", request.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		return
	}

	user := models.User{
		Email:    request.Email,
		IsActive: true,
		Items:    []models.Item{},
	}
	if err := user.SetPassword(request.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to hash password"})
		return
	}

	if err := uc.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUsers returns users with skip/limit pagination
// GET /users/
func (uc *UserController) GetUsers(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users := []models.User{}
	if err := uc.db.Preload("Items").Offset(skip).Limit(limit).Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser returns a single user by ID
// GET /users/:id
func (uc *UserController) GetUser(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		unprocessable(c, intParsingDetail([]string{"path", "user_id"}, raw))
		return
	}

	var user models.User
	if err := uc.db.Preload("Items").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUserItem creates an item owned by a user
// POST /users/:id/items/
func (uc *UserController) CreateUserItem(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		unprocessable(c, intParsingDetail([]string{"path", "user_id"}, raw))
		return
	}

	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch user"})
		return
	}

	var request struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		unprocessable(c, missingDetail([]string{"body", "title"}, nil))
		return
	}

	item := models.Item{
		Title:       request.Title,
		Description: request.Description,
		OwnerID:     user.ID,
	}
	if err := uc.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// GetItems returns items with skip/limit pagination
// GET /items/
func (uc *UserController) GetItems(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	items := []models.Item{}
	if err := uc.db.Offset(skip).Limit(limit).Order("id").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch items"})
		return
	}

	c.JSON(http.StatusOK, items)
}
