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

// TaskController handles task CRUD.
type TaskController struct {
	cache *services.AnalyticsCache
}

func NewTaskController(cache *services.AnalyticsCache) *TaskController {
	return &TaskController{cache: cache}
}

// GetTasks lists the user's tasks, optionally filtered by goal.
func (tc *TaskController) GetTasks(c *gin.Context) {
	uid := c.GetString("uid")

	query := config.DB.Where("user_id = ?", uid)
	if goalID := c.Query("goalId"); goalID != "" {
		query = query.Where("goal_id = ?", goalID)
	}

	var tasks []models.Task
	if err := query.Order("created_at").Find(&tasks).Error; err != nil {
		config.Logger.Errorw("task listing failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// CreateTask creates a task under an existing goal. The recurrence rule is
// validated here, at construction, so the analytics engine never sees a
// malformed rule from this path.
func (tc *TaskController) CreateTask(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := analytics.ParseRecurrence(req.RepeatType, req.RepeatConfig); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var goal models.Goal
	if err := config.DB.Where("id = ? AND user_id = ?", req.GoalID, uid).First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	task := models.Task{
		ID:           utils.GenerateID(),
		UserID:       uid,
		GoalID:       req.GoalID,
		Title:        req.Title,
		Description:  req.Description,
		StartTime:    req.StartTime,
		Duration:     req.Duration,
		RepeatType:   req.RepeatType,
		RepeatConfig: models.StringList(req.RepeatConfig),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsActive:     isActive,
		Priority:     req.Priority,
		CreatedAt:    time.Now(),
	}
	if err := config.DB.Create(&task).Error; err != nil {
		config.Logger.Errorw("task creation failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	tc.invalidate(c, uid)
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// UpdateTask applies a partial update and re-validates the result.
func (tc *TaskController) UpdateTask(c *gin.Context) {
	uid := c.GetString("uid")
	taskID := c.Param("taskId")

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var task models.Task
	if err := config.DB.Where("id = ? AND user_id = ?", taskID, uid).First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	if req.GoalID != nil {
		var goal models.Goal
		if err := config.DB.Where("id = ? AND user_id = ?", *req.GoalID, uid).First(&goal).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
	}

	req.Apply(&task)

	check := models.CreateTaskRequest{
		GoalID:     task.GoalID,
		Title:      task.Title,
		StartTime:  task.StartTime,
		Duration:   task.Duration,
		RepeatType: task.RepeatType,
		StartDate:  task.StartDate,
		EndDate:    task.EndDate,
		Priority:   task.Priority,
	}
	if err := check.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := analytics.ParseRecurrence(task.RepeatType, task.RepeatConfig); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Save(&task).Error; err != nil {
		config.Logger.Errorw("task update failed", "error", err, "taskID", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}

	tc.invalidate(c, uid)
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// DeleteTask removes a task and its completions.
func (tc *TaskController) DeleteTask(c *gin.Context) {
	uid := c.GetString("uid")
	taskID := c.Param("taskId")

	var task models.Task
	if err := config.DB.Where("id = ? AND user_id = ?", taskID, uid).First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("user_id = ? AND task_id = ?", uid, taskID).Delete(&models.Completion{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}
	if err := tx.Delete(&task).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}

	tc.invalidate(c, uid)
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

func (tc *TaskController) invalidate(c *gin.Context, uid string) {
	if err := tc.cache.Invalidate(c.Request.Context(), uid); err != nil {
		config.Logger.Warnw("analytics cache invalidation failed", "error", err, "userID", uid)
	}
}
