package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/huangsam/dietradar/schema"
)

// PNGTimeout bounds a single headless snapshot.
var PNGTimeout = 20 * time.Second

// settleDelay gives echarts time to finish its entry animation.
var settleDelay = 1500 * time.Millisecond

var (
	headlessOnce sync.Once
	headlessErr  error
)

// EnsureHeadlessAvailable checks once per process that a headless Chrome can start.
func EnsureHeadlessAvailable(ctx context.Context) error {
	headlessOnce.Do(func() {
		if ctx == nil {
			ctx = context.Background()
		}
		parent, cancel := chromedp.NewContext(ctx)
		defer cancel()
		headlessErr = chromedp.Run(parent)
	})
	return headlessErr
}

// RenderPNG renders the chart page and captures it with headless Chrome.
func RenderPNG(ctx context.Context, model schema.ChartModel) ([]byte, error) {
	if err := EnsureHeadlessAvailable(ctx); err != nil {
		return nil, fmt.Errorf("headless chrome unavailable: %w", err)
	}
	html, err := HTMLBytes(model)
	if err != nil {
		return nil, err
	}
	height := radarHeightPx
	if len(model.Similarity) > 0 {
		height += similarityHeightPx
	}
	return renderHTMLToPNG(ctx, html, chartWidthPx, height)
}

// WritePNGFile renders model to a PNG file at path.
func WritePNGFile(ctx context.Context, model schema.ChartModel, path string) error {
	png, err := RenderPNG(ctx, model)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("failed to write chart image %s: %w", path, err)
	}
	return nil
}

func renderHTMLToPNG(ctx context.Context, html []byte, width, height int) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	parent, cancel := chromedp.NewContext(ctx)
	defer cancel()

	timeoutCtx, cancelTimeout := context.WithTimeout(parent, PNGTimeout)
	defer cancelTimeout()

	dataURI := "data:text/html;base64," + base64.StdEncoding.EncodeToString(html)
	var screenshot []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(dataURI),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.FullScreenshot(&screenshot, 100),
	}
	if err := chromedp.Run(timeoutCtx, tasks...); err != nil {
		return nil, fmt.Errorf("failed to capture chart: %w", err)
	}
	return screenshot, nil
}
