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

// GoalController handles goal CRUD.
type GoalController struct {
	cache *services.AnalyticsCache
}

func NewGoalController(cache *services.AnalyticsCache) *GoalController {
	return &GoalController{cache: cache}
}

// GetGoals lists the user's goals.
func (gc *GoalController) GetGoals(c *gin.Context) {
	uid := c.GetString("uid")

	var goals []models.Goal
	if err := config.DB.Where("user_id = ?", uid).Order("created_at").Find(&goals).Error; err != nil {
		config.Logger.Errorw("goal listing failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load goals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// CreateGoal creates a goal.
func (gc *GoalController) CreateGoal(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal := models.Goal{
		ID:          utils.GenerateID(),
		UserID:      uid,
		Title:       req.Title,
		Icon:        req.Icon,
		Color:       req.Color,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		config.Logger.Errorw("goal creation failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create goal"})
		return
	}

	gc.invalidate(c, uid)
	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// UpdateGoal edits a goal's display fields.
func (gc *GoalController) UpdateGoal(c *gin.Context) {
	uid := c.GetString("uid")
	goalID := c.Param("goalId")

	var req models.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var goal models.Goal
	if err := config.DB.Where("id = ? AND user_id = ?", goalID, uid).First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Icon != nil {
		goal.Icon = *req.Icon
	}
	if req.Color != nil {
		goal.Color = *req.Color
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}

	if err := config.DB.Save(&goal).Error; err != nil {
		config.Logger.Errorw("goal update failed", "error", err, "goalID", goalID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update goal"})
		return
	}

	gc.invalidate(c, uid)
	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal removes a goal together with its tasks and their completions.
func (gc *GoalController) DeleteGoal(c *gin.Context) {
	uid := c.GetString("uid")
	goalID := c.Param("goalId")

	var goal models.Goal
	if err := config.DB.Where("id = ? AND user_id = ?", goalID, uid).First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var taskIDs []string
	if err := tx.Model(&models.Task{}).Where("user_id = ? AND goal_id = ?", uid, goalID).Pluck("id", &taskIDs).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete goal"})
		return
	}
	if len(taskIDs) > 0 {
		if err := tx.Where("user_id = ? AND task_id IN ?", uid, taskIDs).Delete(&models.Completion{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete goal"})
			return
		}
		if err := tx.Where("user_id = ? AND goal_id = ?", uid, goalID).Delete(&models.Task{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete goal"})
			return
		}
	}
	if err := tx.Delete(&goal).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete goal"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete goal"})
		return
	}

	gc.invalidate(c, uid)
	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}

// GetGoalProgress returns the goal's completion percentage over the
// trailing 7 days.
func (gc *GoalController) GetGoalProgress(c *gin.Context) {
	uid := c.GetString("uid")
	goalID := c.Param("goalId")

	var goal models.Goal
	if err := config.DB.Where("id = ? AND user_id = ?", goalID, uid).First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}

	var tasks []models.Task
	if err := config.DB.Where("user_id = ?", uid).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tasks"})
		return
	}
	var completions []models.Completion
	if err := config.DB.Where("user_id = ?", uid).Find(&completions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load completions"})
		return
	}

	progress := analytics.GoalRecentProgress(completions, tasks, goalID, time.Now())
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

func (gc *GoalController) invalidate(c *gin.Context, uid string) {
	if err := gc.cache.Invalidate(c.Request.Context(), uid); err != nil {
		config.Logger.Warnw("analytics cache invalidation failed", "error", err, "userID", uid)
	}
}
