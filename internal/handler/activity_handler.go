package handler

import (
	"studytrack/internal/domain"
	"studytrack/internal/middleware"
	"studytrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ActivityHandler handles activity and unlock-status HTTP requests
type ActivityHandler struct {
	service service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler instance
func NewActivityHandler(service service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		service: service,
	}
}

// RecordInteraction godoc
// @Summary Record a platform interaction
// @Description Marks today as an active day for the user; repeat calls on the same day are no-ops
// @Tags activity
// @Produce json
// @Success 200 {object} dto.RecordInteractionResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /activity/interactions [post]
func (h *ActivityHandler) RecordInteraction(c *fiber.Ctx) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return domain.NewUnauthorizedError("Authentication required")
	}

	resp, err := h.service.RecordInteraction(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetUnlockStatus godoc
// @Summary Get advanced-mode unlock status
// @Description Returns whether the advanced vocabulary mode is unlocked and the current progress
// @Tags activity
// @Produce json
// @Success 200 {object} dto.UnlockStatusResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /activity/unlock-status [get]
func (h *ActivityHandler) GetUnlockStatus(c *fiber.Ctx) error {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		return domain.NewUnauthorizedError("Authentication required")
	}

	resp, err := h.service.GetUnlockStatus(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
