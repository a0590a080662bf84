package handler

import (
	"errors"
	"net/http"
	"time"

	"order-tracker/internal/core/logger"
	"order-tracker/internal/features/notices/domain"
	"order-tracker/internal/features/notices/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NoticeHandler handles HTTP requests for the delivery notice.
type NoticeHandler struct {
	service ports.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(service ports.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		service: service,
	}
}

// SetNoticeRequest represents the request body for setting a notice.
type SetNoticeRequest struct {
	Title      string       `json:"title"`
	Message    string       `json:"message"`
	Level      domain.Level `json:"level"`
	TTLSeconds int          `json:"ttl_seconds"` // 0 keeps it until removed
}

// SetNotice handles POST /api/notice.
// @Summary Set the delivery notice
// @Description Creates or replaces the notice shown on every tracking page.
// @Tags notice
// @Accept json
// @Produce json
// @Param notice body SetNoticeRequest true "Notice details"
// @Success 200 {object} domain.Notice
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/notice [post]
func (h *NoticeHandler) SetNotice(c *fiber.Ctx) error {
	var req SetNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ttl := time.Duration(req.TTLSeconds) * time.Second
	notice, err := h.service.SetNotice(c.UserContext(), req.Title, req.Message, req.Level, ttl)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidLevel):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid notice level. Must be INFO, WARNING, or DANGER",
			})
		case errors.Is(err, domain.ErrEmptyTitle), errors.Is(err, domain.ErrNegativeTTL):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to set notice", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(notice)
}

// GetNotice handles GET /api/notice.
// @Summary Get the delivery notice
// @Description Retrieves the active delivery notice.
// @Tags notice
// @Produce json
// @Success 200 {object} domain.Notice
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/notice [get]
func (h *NoticeHandler) GetNotice(c *fiber.Ctx) error {
	notice, err := h.service.GetNotice(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to get notice", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if notice == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "No active notice",
		})
	}

	return c.Status(http.StatusOK).JSON(notice)
}

// RemoveNotice handles DELETE /api/notice.
// @Summary Remove the delivery notice
// @Description Removes the active delivery notice before it expires.
// @Tags notice
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/notice [delete]
func (h *NoticeHandler) RemoveNotice(c *fiber.Ctx) error {
	if err := h.service.RemoveNotice(c.UserContext()); err != nil {
		logger.Get().Error("Failed to remove notice", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Notice removed successfully",
	})
}
