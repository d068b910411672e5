package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ajaychandraavanshi66-eng/Goal-Planner/config"
	"github.com/ajaychandraavanshi66-eng/Goal-Planner/models"
	"github.com/ajaychandraavanshi66-eng/Goal-Planner/utils"
)

// AuthController handles registration, login and the current account.
type AuthController struct{}

// Register creates an account with default settings and returns a token.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
		return
	}

	user := models.User{
		ID:        utils.GenerateID(),
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := user.SetPassword(req.Password); err != nil {
		config.Logger.Errorw("password hashing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		config.Logger.Errorw("user creation failed", "error", err, "email", email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	settings := models.DefaultSettings(user.ID)
	if err := tx.Create(&settings).Error; err != nil {
		tx.Rollback()
		config.Logger.Errorw("default settings creation failed", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	config.Logger.Infow("user registered", "userID", user.ID)
	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  models.UserResponse{ID: user.ID, Email: user.Email},
	})
}

// Login verifies credentials and returns a token.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if !user.MatchPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  models.UserResponse{ID: user.ID, Email: user.Email},
	})
}

// Me returns the authenticated account.
func (ac *AuthController) Me(c *gin.Context) {
	uid := c.GetString("uid")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": models.UserResponse{ID: user.ID, Email: user.Email},
	})
}
