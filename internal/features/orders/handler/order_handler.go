package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"order-tracker/internal/core/logger"
	"order-tracker/internal/features/orders/ports"
	"order-tracker/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service resolves order identifiers.
	service ports.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s ports.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
	// AvailableOrderIDs hints at valid identifiers when a lookup misses.
	AvailableOrderIDs []string `json:"available_order_ids,omitempty"`
}

// GetOrder returns the raw order record.
// @Summary Get Order by ID
// @Description Fetch the full order record, including status history and items.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID" example(ORD-2024-001234)
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID := OrderIDParam(c, "id")
	rayID := RayID(c)

	order, err := h.service.GetOrder(c.UserContext(), orderID)
	if err != nil {
		status, resp := ErrorFor(c.UserContext(), h.service, err, orderID, rayID)
		return c.Status(status).JSON(resp)
	}

	return c.Status(http.StatusOK).JSON(order)
}

// OrderIDParam returns the decoded order id from the named path parameter.
// A segment that is not valid percent-encoding is returned as sent.
func OrderIDParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	orderID, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return orderID
}

// RayID returns the request id assigned by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok || rayID == "" {
		return "unknown"
	}
	return rayID
}

// OrderIDLister lists the identifiers offered as a hint on a miss.
type OrderIDLister interface {
	AvailableOrderIDs(ctx context.Context) ([]string, error)
}

// ErrorFor maps an order lookup error to an HTTP status and response body.
// Unknown identifiers get the list of valid ones as a hint.
func ErrorFor(ctx context.Context, svc OrderIDLister, err error, orderID, rayID string) (int, ErrorResponse) {
	switch {
	case errors.Is(err, service.ErrMissingIdentifier):
		return http.StatusBadRequest, ErrorResponse{
			Message: "Order ID is required",
			RayID:   rayID,
		}

	case errors.Is(err, service.ErrOrderNotFound):
		resp := ErrorResponse{
			Message: `Order ID "` + orderID + `" does not exist`,
			RayID:   rayID,
		}
		ids, listErr := svc.AvailableOrderIDs(ctx)
		if listErr != nil {
			logger.Get().Warn("Failed to list available orders", zap.String("ray_id", rayID), zap.Error(listErr))
		} else {
			resp.AvailableOrderIDs = ids
		}
		return http.StatusNotFound, resp

	default:
		logger.Get().Error("Failed to fetch order",
			zap.String("order_id", orderID),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return http.StatusInternalServerError, ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		}
	}
}
