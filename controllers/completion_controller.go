package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ajaychandraavanshi66-eng/Goal-Planner/analytics"
	"github.com/ajaychandraavanshi66-eng/Goal-Planner/config"
	"github.com/ajaychandraavanshi66-eng/Goal-Planner/models"
	"github.com/ajaychandraavanshi66-eng/Goal-Planner/services"
	"github.com/ajaychandraavanshi66-eng/Goal-Planner/utils"
)

// CompletionController handles completion listing and toggling.
type CompletionController struct {
	cache *services.AnalyticsCache
}

func NewCompletionController(cache *services.AnalyticsCache) *CompletionController {
	return &CompletionController{cache: cache}
}

// GetCompletions lists completions, optionally filtered by date or task.
func (cc *CompletionController) GetCompletions(c *gin.Context) {
	uid := c.GetString("uid")

	query := config.DB.Where("user_id = ?", uid)
	if date := c.Query("date"); date != "" {
		if _, err := analytics.ParseDate(date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		query = query.Where("date = ?", date)
	}
	if taskID := c.Query("taskId"); taskID != "" {
		query = query.Where("task_id = ?", taskID)
	}

	var completions []models.Completion
	if err := query.Find(&completions).Error; err != nil {
		config.Logger.Errorw("completion listing failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load completions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completions": completions})
}

// ToggleCompletion creates a completion for (taskId, date) or removes the
// existing one, keeping at most one row per pair.
func (cc *CompletionController) ToggleCompletion(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.ToggleCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := analytics.ParseDate(req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var task models.Task
	if err := config.DB.Where("id = ? AND user_id = ?", req.TaskID, uid).First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	var existing models.Completion
	err := config.DB.Where("user_id = ? AND task_id = ? AND date = ?", uid, req.TaskID, req.Date).First(&existing).Error
	if err == nil {
		if err := config.DB.Delete(&existing).Error; err != nil {
			config.Logger.Errorw("completion removal failed", "error", err, "completionID", existing.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle completion"})
			return
		}
		cc.invalidate(c, uid)
		c.JSON(http.StatusOK, gin.H{"message": "completion removed", "completion": nil})
		return
	}

	completion := models.Completion{
		ID:          utils.GenerateID(),
		UserID:      uid,
		TaskID:      req.TaskID,
		Date:        req.Date,
		IsCompleted: true,
		CompletedAt: time.Now(),
	}
	if err := config.DB.Create(&completion).Error; err != nil {
		config.Logger.Errorw("completion creation failed", "error", err, "taskID", req.TaskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle completion"})
		return
	}

	cc.invalidate(c, uid)
	c.JSON(http.StatusCreated, gin.H{"message": "completion added", "completion": completion})
}

// DeleteCompletion removes a completion by id.
func (cc *CompletionController) DeleteCompletion(c *gin.Context) {
	uid := c.GetString("uid")
	completionID := c.Param("completionId")

	var completion models.Completion
	if err := config.DB.Where("id = ? AND user_id = ?", completionID, uid).First(&completion).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "completion not found"})
		return
	}
	if err := config.DB.Delete(&completion).Error; err != nil {
		config.Logger.Errorw("completion removal failed", "error", err, "completionID", completionID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete completion"})
		return
	}

	cc.invalidate(c, uid)
	c.JSON(http.StatusOK, gin.H{"message": "completion deleted"})
}

func (cc *CompletionController) invalidate(c *gin.Context, uid string) {
	if err := cc.cache.Invalidate(c.Request.Context(), uid); err != nil {
		config.Logger.Warnw("analytics cache invalidation failed", "error", err, "userID", uid)
	}
}
