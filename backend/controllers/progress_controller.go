package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"promtlearn/backend/config"
	"promtlearn/backend/middleware"
	"promtlearn/backend/repository"
	"promtlearn/backend/services"
	"promtlearn/backend/utils"
)

type ProgressController struct {
	Tracker *services.ProgressTracker
	Users   repository.UserRepository
	Cfg     *config.Config
}

func NewProgressController(tracker *services.ProgressTracker, users repository.UserRepository, cfg *config.Config) *ProgressController {
	return &ProgressController{Tracker: tracker, Users: users, Cfg: cfg}
}

// GetProgress godoc
// @Summary Get user progress
// @Description Returns completion statistics and entitlement status
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	ctx := c.Context()

	resp := fiber.Map{
		"completion_percent":   pc.Tracker.CompletionPercentage(ctx, userID),
		"completed_lessons":    pc.Tracker.CompletedCount(ctx, userID),
		"remaining_lessons":    pc.Tracker.RemainingCount(ctx, userID),
		"completed_lesson_ids": pc.Tracker.CompletedLessonIDs(ctx, userID),
		"summary":              pc.Tracker.Summary(ctx, userID),
		"full_access":          pc.Tracker.HasFullAccess(ctx, userID),
		"certificate_earned":   pc.Tracker.HasCertificate(ctx, userID),
		"certificate_eligible": pc.Tracker.IsCertificateEligible(ctx, userID),
	}
	if last, ok := pc.Tracker.LastAccessedLesson(ctx, userID); ok {
		resp["last_accessed_lesson"] = last
	}

	return utils.Success(c, fiber.StatusOK, resp)
}

// ResetProgress godoc
// @Summary Reset user progress
// @Description Support flow: wipes completions, certificate and purchase flag
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/reset [post]
func (pc *ProgressController) ResetProgress(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	pc.Tracker.Reset(c.Context(), userID)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"reset": true,
	})
}

// GetCertificate godoc
// @Summary Get certification status
// @Description Returns the sticky certificate record with the rendered certificate text
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /certificate [get]
func (pc *ProgressController) GetCertificate(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	// Name lookup is personalization only; a missing account still gets a
	// certificate, addressed to "Guest".
	studentName := "Guest"
	user, err := pc.Users.FindByID(c.Context(), userID)
	if err == nil {
		studentName = user.DisplayName()
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	status := pc.Tracker.CertificationStatus(c.Context(), userID, studentName)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"status":           status,
		"certificate_text": status.CertificateText(),
	})
}
