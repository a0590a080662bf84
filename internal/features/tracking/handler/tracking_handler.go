package handler

import (
	"bufio"
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"order-tracker/internal/core/logger"
	orderhandler "order-tracker/internal/features/orders/handler"
	"order-tracker/internal/features/tracking/domain"
	"order-tracker/internal/features/tracking/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// DefaultMaxStreamDuration bounds a live ETA stream when none is configured.
const DefaultMaxStreamDuration = 30 * time.Minute

// TrackingHandler serves the tracking pages, the JSON view and the live ETA stream.
type TrackingHandler struct {
	service ports.TrackingService
	// streamCtx is cancelled on server shutdown and ends every open stream.
	streamCtx context.Context
	maxStream time.Duration
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(service ports.TrackingService, streamCtx context.Context, maxStream time.Duration) *TrackingHandler {
	if maxStream <= 0 {
		maxStream = DefaultMaxStreamDuration
	}
	return &TrackingHandler{
		service:   service,
		streamCtx: streamCtx,
		maxStream: maxStream,
	}
}

type homePage struct {
	OrderIDs []string
}

type trackingPage struct {
	View      *domain.TrackingView
	StreamURL string
}

type errorPage struct {
	Title             string
	Message           string
	OrderID           string
	AvailableOrderIDs []string
	RayID             string
}

// Home renders the landing page with one example link per known order.
func (h *TrackingHandler) Home(c *fiber.Ctx) error {
	ids, err := h.service.AvailableOrderIDs(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to list orders", zap.String("ray_id", orderhandler.RayID(c)), zap.Error(err))
		return h.renderError(c, http.StatusInternalServerError, errorPage{
			Title:   "Something Went Wrong",
			Message: "The order list is unavailable right now.",
		})
	}

	return render(c, http.StatusOK, "home.html", homePage{OrderIDs: ids})
}

// TrackingPage renders the tracking page for one order.
func (h *TrackingHandler) TrackingPage(c *fiber.Ctx) error {
	orderID := orderhandler.OrderIDParam(c, "orderId")

	view, err := h.service.GetView(c.UserContext(), orderID)
	if err != nil {
		status, resp := orderhandler.ErrorFor(c.UserContext(), h.service, err, orderID, orderhandler.RayID(c))
		page := errorPage{
			OrderID:           orderID,
			AvailableOrderIDs: resp.AvailableOrderIDs,
		}
		switch status {
		case http.StatusBadRequest:
			page.Title = "Order ID Required"
			page.Message = "Add an order ID to the address, e.g. /order-tracking/ORD-2024-001234."
		case http.StatusNotFound:
			page.Title = "Order Not Found"
			page.Message = resp.Message + "."
		default:
			page.Title = "Something Went Wrong"
			page.Message = "We could not load this order. Please try again."
		}
		return h.renderError(c, status, page)
	}

	return render(c, http.StatusOK, "tracking.html", trackingPage{
		View:      view,
		StreamURL: "/order-tracking/" + url.PathEscape(view.OrderID) + "/eta/stream",
	})
}

// GetTrackingView returns the tracking projection as JSON.
// @Summary Get tracking view
// @Description Returns the presentation-ready tracking view of an order, including the live ETA and the active delivery notice.
// @Tags tracking
// @Produce json
// @Param id path string true "Order ID" example(ORD-2024-001234)
// @Success 200 {object} domain.TrackingView
// @Failure 400 {object} orderhandler.ErrorResponse
// @Failure 404 {object} orderhandler.ErrorResponse
// @Failure 500 {object} orderhandler.ErrorResponse
// @Router /api/tracking/{id} [get]
func (h *TrackingHandler) GetTrackingView(c *fiber.Ctx) error {
	orderID := orderhandler.OrderIDParam(c, "id")

	view, err := h.service.GetView(c.UserContext(), orderID)
	if err != nil {
		status, resp := orderhandler.ErrorFor(c.UserContext(), h.service, err, orderID, orderhandler.RayID(c))
		return c.Status(status).JSON(resp)
	}

	return c.Status(http.StatusOK).JSON(view)
}

// StreamETA pushes the re-evaluated ETA as Server-Sent Events.
// The stream ends when the client goes away, the server shuts down or the
// maximum stream duration elapses.
// @Summary Stream the ETA
// @Description Server-Sent Events stream; one "eta" event per refresh tick.
// @Tags tracking
// @Produce text/event-stream
// @Param orderId path string true "Order ID" example(ORD-2024-001234)
// @Success 200 {object} domain.ETAUpdate
// @Failure 404 {object} orderhandler.ErrorResponse
// @Router /order-tracking/{orderId}/eta/stream [get]
func (h *TrackingHandler) StreamETA(c *fiber.Ctx) error {
	orderID := orderhandler.OrderIDParam(c, "orderId")
	rayID := orderhandler.RayID(c)

	ctx, cancel := context.WithTimeout(h.streamCtx, h.maxStream)
	updates, err := h.service.Watch(ctx, orderID)
	if err != nil {
		cancel()
		status, resp := orderhandler.ErrorFor(c.UserContext(), h.service, err, orderID, rayID)
		return c.Status(status).JSON(resp)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	log := logger.ForOrder(orderID).With(zap.String("ray_id", rayID))

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		log.Debug("ETA stream opened")

		for update := range updates {
			if err := writeEvent(w, "eta", update); err != nil {
				log.Debug("ETA stream closed by client", zap.Error(err))
				return
			}
		}

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.Debug("ETA stream reached its maximum duration")
		}
	}))

	return nil
}

func writeEvent(w *bufio.Writer, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return w.Flush()
}

func (h *TrackingHandler) renderError(c *fiber.Ctx, status int, page errorPage) error {
	page.RayID = orderhandler.RayID(c)
	return render(c, status, "error.html", page)
}

func render(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Get().Error("Failed to render page", zap.String("template", name), zap.Error(err))
		return c.Status(http.StatusInternalServerError).SendString("Internal Server Error")
	}

	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}
