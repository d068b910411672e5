package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajaychandraavanshi66-eng/Goal-Planner/config"
	"github.com/ajaychandraavanshi66-eng/Goal-Planner/models"
)

// SettingsController handles user display preferences.
type SettingsController struct{}

// GetSettings returns the user's settings, creating defaults on first use.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	uid := c.GetString("uid")

	var settings models.UserSettings
	if err := config.DB.Where("user_id = ?", uid).First(&settings).Error; err != nil {
		settings = models.DefaultSettings(uid)
		if err := config.DB.Create(&settings).Error; err != nil {
			config.Logger.Errorw("settings creation failed", "error", err, "userID", uid)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings applies a partial settings update.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var settings models.UserSettings
	if err := config.DB.Where("user_id = ?", uid).First(&settings).Error; err != nil {
		settings = models.DefaultSettings(uid)
		req.Apply(&settings)
		if err := config.DB.Create(&settings).Error; err != nil {
			config.Logger.Errorw("settings creation failed", "error", err, "userID", uid)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"settings": settings})
		return
	}

	req.Apply(&settings)
	if err := config.DB.Save(&settings).Error; err != nil {
		config.Logger.Errorw("settings update failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
