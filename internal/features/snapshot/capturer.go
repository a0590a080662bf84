package snapshot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"order-tracker/internal/core/httpclient"
	"order-tracker/internal/core/logger"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// etaSelector is the element the tracking page fills with the live ETA.
const etaSelector = "#eta"

var (
	// ErrMissingBaseURL is returned when no service address was given.
	ErrMissingBaseURL = errors.New("base url is required")
	// ErrMissingOrderID is returned when no order was given.
	ErrMissingOrderID = errors.New("order id is required")
	// ErrUnhealthy is returned when the service health check does not report ok.
	ErrUnhealthy = errors.New("service is not healthy")
)

// Options describe one capture.
type Options struct {
	BaseURL string
	OrderID string
	Timeout time.Duration
	// Width and Height set the browser viewport.
	Width  int
	Height int
}

// Validate checks the options and fills in defaults.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.BaseURL) == "" {
		return ErrMissingBaseURL
	}
	if strings.TrimSpace(o.OrderID) == "" {
		return ErrMissingOrderID
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	return nil
}

// Result is a captured tracking page.
type Result struct {
	URL string
	// ETA is the countdown text visible when the screenshot was taken.
	ETA string
	PNG []byte
}

// Capturer renders tracking pages in headless Chromium.
type Capturer struct {
	client *http.Client
	logger *zap.Logger
}

// NewCapturer creates a Capturer whose health probe uses client.
func NewCapturer(client *http.Client) *Capturer {
	return &Capturer{
		client: client,
		logger: logger.Get(),
	}
}

// PageURL builds the tracking page address for orderID under baseURL.
func PageURL(baseURL, orderID string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	return u.JoinPath("order-tracking", orderID).String(), nil
}

// CheckHealth calls GET /health and requires {"status":"ok"}.
func (c *Capturer) CheckHealth(ctx context.Context, baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base url: %w", err)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := httpclient.GetJSON(ctx, c.client, u.JoinPath("health").String(), &body); err != nil {
		return fmt.Errorf("%w: %v", ErrUnhealthy, err)
	}
	if body.Status != "ok" {
		return fmt.Errorf("%w: status %q", ErrUnhealthy, body.Status)
	}
	return nil
}

// Capture probes the service, opens the tracking page for the order, waits for
// the ETA to render and takes a full-page PNG screenshot.
func (c *Capturer) Capture(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	pageURL, err := PageURL(opts.BaseURL, opts.OrderID)
	if err != nil {
		return nil, err
	}

	if err := c.CheckHealth(ctx, opts.BaseURL); err != nil {
		return nil, err
	}

	c.logger.Debug("Launching browser...", zap.String("url", pageURL))

	l := launcher.New().
		Context(ctx).
		Headless(true).
		NoSandbox(true)

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().Context(ctx).ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", pageURL, err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.Width,
		Height:            opts.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, fmt.Errorf("failed to set viewport: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed waiting for page load: %w", err)
	}

	el, err := page.Element(etaSelector)
	if err != nil {
		return nil, fmt.Errorf("tracking page has no ETA, is %q a known order?: %w", opts.OrderID, err)
	}

	eta, err := el.Text()
	if err != nil {
		return nil, fmt.Errorf("failed to read ETA: %w", err)
	}

	png, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to take screenshot: %w", err)
	}

	c.logger.Info("Captured tracking page",
		zap.String("order_id", opts.OrderID),
		zap.String("eta", eta),
		zap.Int("bytes", len(png)),
	)

	return &Result{
		URL: pageURL,
		ETA: strings.TrimSpace(eta),
		PNG: png,
	}, nil
}
