package controllers

import (
	"github.com/gofiber/fiber/v2"

	"promtlearn/backend/config"
	"promtlearn/backend/middleware"
	"promtlearn/backend/models"
	"promtlearn/backend/services"
	"promtlearn/backend/utils"
)

type StoreController struct {
	Entitlements *services.EntitlementService
	Cfg          *config.Config
}

func NewStoreController(entitlements *services.EntitlementService, cfg *config.Config) *StoreController {
	return &StoreController{Entitlements: entitlements, Cfg: cfg}
}

type PurchaseInput struct {
	ProductID string `json:"product_id"`
	Receipt   string `json:"receipt"`
	Cancelled bool   `json:"cancelled"`
}

// GetProducts godoc
// @Summary List purchasable products
// @Tags store
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /store/products [get]
func (sc *StoreController) GetProducts(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"products": sc.Entitlements.Products(),
	})
}

// Purchase godoc
// @Summary Apply a purchase result
// @Description Verifies the store receipt and unlocks premium lessons on success
// @Tags store
// @Accept json
// @Produce json
// @Param input body PurchaseInput true "Purchase receipt"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /store/purchase [post]
func (sc *StoreController) Purchase(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input PurchaseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// A cancelled purchase is a terminal result too: acknowledged, nothing
	// unlocked.
	if input.Cancelled {
		return utils.Success(c, fiber.StatusOK, services.PurchaseResult{
			State:   models.PurchaseStateCancelled,
			Message: "purchase cancelled",
		})
	}

	result := sc.Entitlements.Purchase(c.Context(), userID, input.ProductID, input.Receipt)
	return utils.Success(c, fiber.StatusOK, result)
}

// Restore godoc
// @Summary Restore previous purchases
// @Description Re-applies the entitlement from stored verified receipts; safe to retry
// @Tags store
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /store/restore [post]
func (sc *StoreController) Restore(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	result, err := sc.Entitlements.Restore(c.Context(), userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query purchases")
	}

	return utils.Success(c, fiber.StatusOK, result)
}
