package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"promtlearn/backend/config"
	"promtlearn/backend/middleware"
	"promtlearn/backend/repository"
	"promtlearn/backend/utils"
)

type UserController struct {
	Users repository.UserRepository
	Cfg   *config.Config
}

func NewUserController(users repository.UserRepository, cfg *config.Config) *UserController {
	return &UserController{Users: users, Cfg: cfg}
}

type UpdateProfileInput struct {
	Name string `json:"name"`
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns authenticated user's profile data
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	user, err := uc.Users.FindByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"created_at": user.CreatedAt,
	})
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Updates the user's display name used on the certificate
// @Tags users
// @Accept json
// @Produce json
// @Param input body UpdateProfileInput true "Profile update data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Name == "" {
		return utils.BadRequest(c, "Name is required")
	}

	user, err := uc.Users.FindByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	user.Name = input.Name
	if err := uc.Users.Update(c.Context(), user); err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// DeleteProfile godoc
// @Summary Delete account
// @Description Removes the authenticated user's account
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [delete]
func (uc *UserController) DeleteProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	if err := uc.Users.Delete(c.Context(), userID); err != nil {
		return utils.InternalServerError(c, "Could not delete user")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"deleted": true,
	})
}
