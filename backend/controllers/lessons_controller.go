package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"promtlearn/backend/catalog"
	"promtlearn/backend/config"
	"promtlearn/backend/middleware"
	"promtlearn/backend/models"
	"promtlearn/backend/services"
	"promtlearn/backend/utils"
)

type LessonsController struct {
	Catalog *catalog.Catalog
	Tracker *services.ProgressTracker
	Cfg     *config.Config
}

func NewLessonsController(cat *catalog.Catalog, tracker *services.ProgressTracker, cfg *config.Config) *LessonsController {
	return &LessonsController{Catalog: cat, Tracker: tracker, Cfg: cfg}
}

// LessonSummary is the list-view projection: metadata plus per-user derived
// status, without the lesson body.
type LessonSummary struct {
	ID              int         `json:"id"`
	Title           string      `json:"title"`
	Subtitle        string      `json:"subtitle"`
	DurationMinutes int         `json:"duration_minutes"`
	Tier            models.Tier `json:"tier"`
	SequenceOrder   int         `json:"sequence_order"`
	Locked          bool        `json:"locked"`
	Completed       bool        `json:"completed"`
}

func (lc *LessonsController) summarize(c *fiber.Ctx, userID uint, lessons []models.Lesson) []LessonSummary {
	out := make([]LessonSummary, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, LessonSummary{
			ID:              l.ID,
			Title:           l.Title,
			Subtitle:        l.Subtitle,
			DurationMinutes: l.DurationMinutes,
			Tier:            l.Tier,
			SequenceOrder:   l.SequenceOrder,
			Locked:          !lc.Tracker.CanAccess(c.Context(), userID, l.ID),
			Completed:       lc.Tracker.IsLessonCompleted(c.Context(), userID, l.ID),
		})
	}
	return out
}

// ListLessons godoc
// @Summary List all lessons
// @Description Returns every lesson with the user's lock and completion status
// @Tags lessons
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lessons [get]
func (lc *LessonsController) ListLessons(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"lessons":                lc.summarize(c, userID, lc.Catalog.All()),
		"total_count":            lc.Catalog.TotalCount(),
		"total_duration_minutes": lc.Catalog.TotalDurationMinutes(),
	})
}

// ListFreeLessons godoc
// @Summary List free lessons
// @Tags lessons
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /lessons/free [get]
func (lc *LessonsController) ListFreeLessons(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"lessons": lc.summarize(c, userID, lc.Catalog.ListFree()),
	})
}

// ListPremiumLessons godoc
// @Summary List premium lessons
// @Tags lessons
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /lessons/premium [get]
func (lc *LessonsController) ListPremiumLessons(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"lessons": lc.summarize(c, userID, lc.Catalog.ListPremium()),
	})
}

// GetLesson godoc
// @Summary Get lesson content
// @Description Returns the full lesson and records the visit. Premium lessons
// @Description require the full-access purchase.
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lessons/{id} [get]
func (lc *LessonsController) GetLesson(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson id")
	}

	lesson, ok := lc.Catalog.GetByID(id)
	if !ok {
		return utils.NotFound(c, "Lesson not found")
	}

	if !lc.Tracker.CanAccess(c.Context(), userID, id) {
		return utils.Forbidden(c, "Lesson is locked")
	}

	lc.Tracker.MarkAccessed(c.Context(), userID, id)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"lesson":    lesson,
		"completed": lc.Tracker.IsLessonCompleted(c.Context(), userID, id),
	})
}

// CompleteLesson godoc
// @Summary Mark a lesson as completed
// @Description Completion is idempotent; finishing the last lesson earns the certificate
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lessons/{id}/complete [post]
func (lc *LessonsController) CompleteLesson(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson id")
	}

	if _, ok := lc.Catalog.GetByID(id); !ok {
		return utils.NotFound(c, "Lesson not found")
	}
	if !lc.Tracker.CanAccess(c.Context(), userID, id) {
		return utils.Forbidden(c, "Lesson is locked")
	}

	lc.Tracker.CompleteLesson(c.Context(), userID, id)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"completed":          true,
		"completion_percent": lc.Tracker.CompletionPercentage(c.Context(), userID),
		"certificate_earned": lc.Tracker.HasCertificate(c.Context(), userID),
		"completed_lessons":  lc.Tracker.CompletedCount(c.Context(), userID),
		"remaining_lessons":  lc.Tracker.RemainingCount(c.Context(), userID),
	})
}
