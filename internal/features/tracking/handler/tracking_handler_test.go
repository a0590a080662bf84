package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"order-tracker/internal/core/clock"
	notices "order-tracker/internal/features/notices/domain"
	"order-tracker/internal/features/orders/adapters"
	orderhandler "order-tracker/internal/features/orders/handler"
	orderservice "order-tracker/internal/features/orders/service"
	"order-tracker/internal/features/tracking/domain"
	"order-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTrackingService is a mock implementation of ports.TrackingService
type MockTrackingService struct {
	mock.Mock
}

func (m *MockTrackingService) GetView(ctx context.Context, orderID string) (*domain.TrackingView, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrackingView), args.Error(1)
}

func (m *MockTrackingService) Watch(ctx context.Context, orderID string) (<-chan domain.ETAUpdate, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.ETAUpdate), args.Error(1)
}

func (m *MockTrackingService) AvailableOrderIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type staticNotice struct {
	notice *notices.Notice
}

func (s staticNotice) GetNotice(context.Context) (*notices.Notice, error) {
	return s.notice, nil
}

// newTrackingService wires the real services over the sample dataset at 17:00 UTC.
func newTrackingService(t *testing.T, notice *notices.Notice, interval time.Duration) *service.TrackingService {
	t.Helper()
	repo, err := adapters.NewMemoryRepository(adapters.DefaultOrders())
	require.NoError(t, err)

	now := time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)
	return service.NewTrackingService(orderservice.NewOrderService(repo), staticNotice{notice: notice}, clock.NewFixedClock(now), interval)
}

func setupApp(h *TrackingHandler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/", h.Home)
	app.Get("/api/tracking/:id?", h.GetTrackingView)
	app.Get("/order-tracking/:orderId/eta/stream", h.StreamETA)
	app.Get("/order-tracking/:orderId?", h.TrackingPage)
	return app
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), 2000)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestTrackingHandler_Home(t *testing.T) {
	h := NewTrackingHandler(newTrackingService(t, nil, time.Second), context.Background(), time.Minute)
	resp, body := get(t, setupApp(h), "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `href="/order-tracking/ORD-2024-001234"`)
	assert.Contains(t, body, `href="/order-tracking/ORD-2024-001235"`)
	assert.Contains(t, body, `href="/order-tracking/ORD-2024-001236"`)
}

func TestTrackingHandler_Home_Error(t *testing.T) {
	mockService := new(MockTrackingService)
	mockService.On("AvailableOrderIDs", mock.Anything).Return(nil, errors.New("redis down")).Once()

	resp, body := get(t, setupApp(NewTrackingHandler(mockService, context.Background(), time.Minute)), "/")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "test-ray-id")
	mockService.AssertExpectations(t)
}

func TestTrackingHandler_TrackingPage(t *testing.T) {
	notice := &notices.Notice{Title: "Weather delays", Message: "Snow <b>expected</b>", Level: notices.LevelWarning}
	h := NewTrackingHandler(newTrackingService(t, notice, time.Second), context.Background(), time.Minute)

	resp, body := get(t, setupApp(h), "/order-tracking/ORD-2024-001234")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Sarah Johnson")
	assert.Contains(t, body, `<p id="eta">1h 30m</p>`)
	assert.Contains(t, body, "5:00 PM - 8:00 PM")
	assert.Contains(t, body, "Expected: 6:30 PM")
	assert.Contains(t, body, "out for delivery")
	assert.Contains(t, body, `value="75"`)
	assert.Contains(t, body, "Mike Rodriguez")
	assert.Contains(t, body, "$49.98")
	assert.Contains(t, body, "$71.96")
	assert.Contains(t, body, `data-stream-url="/order-tracking/ORD-2024-001234/eta/stream"`)
	assert.Contains(t, body, "notice-WARNING")
	assert.Contains(t, body, "Snow &lt;b&gt;expected&lt;/b&gt;")
}

func TestTrackingHandler_TrackingPage_NoDriver(t *testing.T) {
	h := NewTrackingHandler(newTrackingService(t, nil, time.Second), context.Background(), time.Minute)

	resp, body := get(t, setupApp(h), "/order-tracking/ORD-2024-001235")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "John Smith")
	assert.NotContains(t, body, "Your driver")
	assert.NotContains(t, body, "class=\"notice")
}

func TestTrackingHandler_TrackingPage_Errors(t *testing.T) {
	h := NewTrackingHandler(newTrackingService(t, nil, time.Second), context.Background(), time.Minute)
	app := setupApp(h)

	t.Run("MissingID", func(t *testing.T) {
		resp, body := get(t, app, "/order-tracking/")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "Order ID Required")
	})

	t.Run("UnknownID", func(t *testing.T) {
		resp, body := get(t, app, "/order-tracking/ORD-NOPE")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "Order Not Found")
		assert.Contains(t, body, "<code>ORD-NOPE</code>")
		assert.Contains(t, body, "ORD-2024-001236")
		assert.Contains(t, body, "test-ray-id")
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		resp, _ := get(t, app, "/order-tracking/ord-2024-001234")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestTrackingHandler_GetTrackingView(t *testing.T) {
	h := NewTrackingHandler(newTrackingService(t, nil, time.Second), context.Background(), time.Minute)
	app := setupApp(h)

	t.Run("Success", func(t *testing.T) {
		resp, body := get(t, app, "/api/tracking/ORD-2024-001236")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view domain.TrackingView
		require.NoError(t, json.Unmarshal([]byte(body), &view))
		assert.Equal(t, "Emily Davis", view.CustomerName)
		assert.Equal(t, 100, view.ProgressPercent)
		assert.Len(t, view.Timeline, 4)
	})

	t.Run("MissingID", func(t *testing.T) {
		resp, body := get(t, app, "/api/tracking/")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var errResp orderhandler.ErrorResponse
		require.NoError(t, json.Unmarshal([]byte(body), &errResp))
		assert.Equal(t, "Order ID is required", errResp.Message)
		assert.Equal(t, "test-ray-id", errResp.RayID)
	})

	t.Run("UnknownID", func(t *testing.T) {
		resp, body := get(t, app, "/api/tracking/ORD-NOPE")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var errResp orderhandler.ErrorResponse
		require.NoError(t, json.Unmarshal([]byte(body), &errResp))
		assert.Equal(t, `Order ID "ORD-NOPE" does not exist`, errResp.Message)
		assert.Equal(t, []string{"ORD-2024-001234", "ORD-2024-001235", "ORD-2024-001236"}, errResp.AvailableOrderIDs)
	})
}

func TestTrackingHandler_StreamETA(t *testing.T) {
	h := NewTrackingHandler(newTrackingService(t, nil, 10*time.Millisecond), context.Background(), 100*time.Millisecond)

	resp, body := get(t, setupApp(h), "/order-tracking/ORD-2024-001234/eta/stream")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := strings.Split(strings.TrimSpace(body), "\n\n")
	require.NotEmpty(t, events)
	for _, event := range events {
		lines := strings.Split(event, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "event: eta", lines[0])

		var update domain.ETAUpdate
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(lines[1], "data: ")), &update))
		assert.Equal(t, "ORD-2024-001234", update.OrderID)
		assert.Equal(t, "1h 30m", update.TimeUntilDelivery)
	}
}

func TestTrackingHandler_StreamETA_StopsOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewTrackingHandler(newTrackingService(t, nil, 10*time.Millisecond), ctx, time.Hour)

	resp, _ := get(t, setupApp(h), "/order-tracking/ORD-2024-001234/eta/stream")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTrackingHandler_StreamETA_UnknownOrder(t *testing.T) {
	h := NewTrackingHandler(newTrackingService(t, nil, time.Second), context.Background(), time.Minute)

	resp, body := get(t, setupApp(h), "/order-tracking/ORD-NOPE/eta/stream")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "available_order_ids")
}

func TestTrackingHandler_DecodesPathID(t *testing.T) {
	h := NewTrackingHandler(newTrackingService(t, nil, 10*time.Millisecond), context.Background(), 50*time.Millisecond)
	app := setupApp(h)

	t.Run("PageResolvesEncodedID", func(t *testing.T) {
		resp, body := get(t, app, "/order-tracking/ORD%2D2024-001234")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Sarah Johnson")
	})

	t.Run("ViewResolvesEncodedID", func(t *testing.T) {
		resp, body := get(t, app, "/api/tracking/ORD%2D2024-001234")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view domain.TrackingView
		require.NoError(t, json.Unmarshal([]byte(body), &view))
		assert.Equal(t, "ORD-2024-001234", view.OrderID)
	})

	t.Run("StreamResolvesEncodedID", func(t *testing.T) {
		resp, body := get(t, app, "/order-tracking/ORD%2D2024-001234/eta/stream")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "event: eta")
	})

	t.Run("UnknownIDEchoedDecoded", func(t *testing.T) {
		resp, body := get(t, app, "/api/tracking/my%20order")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var errResp orderhandler.ErrorResponse
		require.NoError(t, json.Unmarshal([]byte(body), &errResp))
		assert.Equal(t, `Order ID "my order" does not exist`, errResp.Message)
	})

	t.Run("UnknownPageEchoedDecoded", func(t *testing.T) {
		resp, body := get(t, app, "/order-tracking/my%20order")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "<code>my order</code>")
	})
}
