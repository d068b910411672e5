package controllers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ajaychandraavanshi66-eng/Goal-Planner/analytics"
	"github.com/ajaychandraavanshi66-eng/Goal-Planner/config"
	"github.com/ajaychandraavanshi66-eng/Goal-Planner/models"
	"github.com/ajaychandraavanshi66-eng/Goal-Planner/services"
)

// monthSeriesLength is how many months the trend endpoint returns.
const monthSeriesLength = 6

// AnalyticsController serves derived statistics. Each handler loads the
// user's goals, tasks and completions together and hands those snapshots to
// the analytics package, so one request always computes over a consistent
// view of the data.
type AnalyticsController struct {
	cache *services.AnalyticsCache
}

func NewAnalyticsController(cache *services.AnalyticsCache) *AnalyticsController {
	return &AnalyticsController{cache: cache}
}

type snapshot struct {
	goals       []models.Goal
	tasks       []models.Task
	completions []models.Completion
}

func (ac *AnalyticsController) loadSnapshot(uid string) (snapshot, error) {
	var snap snapshot
	if err := config.DB.Where("user_id = ?", uid).Find(&snap.goals).Error; err != nil {
		return snapshot{}, err
	}
	if err := config.DB.Where("user_id = ?", uid).Find(&snap.tasks).Error; err != nil {
		return snapshot{}, err
	}
	if err := config.DB.Where("user_id = ?", uid).Find(&snap.completions).Error; err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// serveCached responds from the cache when possible. The out parameter
// receives the cached value and must match the shape that was stored.
func (ac *AnalyticsController) serveCached(c *gin.Context, uid, name string, out interface{}) bool {
	found, err := ac.cache.Get(c.Request.Context(), uid, name, out)
	if err != nil {
		config.Logger.Warnw("analytics cache read failed", "error", err, "userID", uid, "entry", name)
		return false
	}
	if found {
		c.JSON(http.StatusOK, out)
	}
	return found
}

func (ac *AnalyticsController) store(c *gin.Context, uid, name string, value interface{}) {
	if err := ac.cache.Set(c.Request.Context(), uid, name, value); err != nil {
		config.Logger.Warnw("analytics cache write failed", "error", err, "userID", uid, "entry", name)
	}
}

// GetDailyStats summarizes today: completion rate, streak and task counts.
func (ac *AnalyticsController) GetDailyStats(c *gin.Context) {
	uid := c.GetString("uid")
	now := time.Now()
	name := "daily:" + analytics.FormatDate(now)

	var cached models.DailyStatsResponse
	if ac.serveCached(c, uid, name, &cached) {
		return
	}

	snap, err := ac.loadSnapshot(uid)
	if err != nil {
		config.Logger.Errorw("snapshot load failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	due := analytics.DueTasks(snap.tasks, now)
	resp := models.DailyStatsResponse{
		CompletionRate: int(math.Round(analytics.DayCompletions(snap.completions, snap.tasks, now))),
		CurrentStreak:  analytics.CurrentStreak(snap.completions, snap.tasks, now),
		TotalTasks:     len(due),
		CompletedTasks: analytics.CompletedCount(snap.completions, due, now),
	}

	ac.store(c, uid, name, resp)
	c.JSON(http.StatusOK, resp)
}

// GetWeeklyStats returns the 7-day completion series ending today.
func (ac *AnalyticsController) GetWeeklyStats(c *gin.Context) {
	uid := c.GetString("uid")
	now := time.Now()
	name := "weekly:" + analytics.FormatDate(now)

	var cached []analytics.DayStat
	if ac.serveCached(c, uid, name, &cached) {
		return
	}

	snap, err := ac.loadSnapshot(uid)
	if err != nil {
		config.Logger.Errorw("snapshot load failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	stats := analytics.WeeklyStats(snap.completions, snap.tasks, now)
	ac.store(c, uid, name, stats)
	c.JSON(http.StatusOK, stats)
}

// GetMonthlyStats returns a six-month completion series ending at the
// anchor month (current month unless ?month=&year= are given).
func (ac *AnalyticsController) GetMonthlyStats(c *gin.Context) {
	uid := c.GetString("uid")

	anchor := time.Now()
	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr != "" && yearStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
			return
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		anchor = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	}

	name := "monthly:" + anchor.Format("2006-01")
	var cached []models.MonthStatResponse
	if ac.serveCached(c, uid, name, &cached) {
		return
	}

	snap, err := ac.loadSnapshot(uid)
	if err != nil {
		config.Logger.Errorw("snapshot load failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	y, m, _ := anchor.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	series := make([]models.MonthStatResponse, 0, monthSeriesLength)
	for i := monthSeriesLength - 1; i >= 0; i-- {
		month := first.AddDate(0, -i, 0)
		value := analytics.MonthStats(snap.completions, snap.tasks, month)
		series = append(series, models.MonthStatResponse{
			Month: month.Month().String()[:3],
			Value: int(math.Round(value)),
		})
	}

	ac.store(c, uid, name, series)
	c.JSON(http.StatusOK, series)
}

// GetGoalPerformance returns each goal's 30-day score for the chart.
func (ac *AnalyticsController) GetGoalPerformance(c *gin.Context) {
	uid := c.GetString("uid")
	now := time.Now()
	name := "goals:" + analytics.FormatDate(now)

	var cached []analytics.GoalScore
	if ac.serveCached(c, uid, name, &cached) {
		return
	}

	snap, err := ac.loadSnapshot(uid)
	if err != nil {
		config.Logger.Errorw("snapshot load failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	scores := analytics.GoalPerformance(snap.goals, snap.tasks, snap.completions, now)
	ac.store(c, uid, name, scores)
	c.JSON(http.StatusOK, scores)
}

// GetStreakStats returns the current and best streaks.
func (ac *AnalyticsController) GetStreakStats(c *gin.Context) {
	uid := c.GetString("uid")
	now := time.Now()
	name := "streak:" + analytics.FormatDate(now)

	var cached models.StreakStatsResponse
	if ac.serveCached(c, uid, name, &cached) {
		return
	}

	snap, err := ac.loadSnapshot(uid)
	if err != nil {
		config.Logger.Errorw("snapshot load failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	resp := models.StreakStatsResponse{
		CurrentStreak: analytics.CurrentStreak(snap.completions, snap.tasks, now),
		BestStreak:    analytics.BestStreak(snap.completions, snap.tasks, now),
	}
	ac.store(c, uid, name, resp)
	c.JSON(http.StatusOK, resp)
}
