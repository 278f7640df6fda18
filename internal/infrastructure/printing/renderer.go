package printing

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	appreport "github.com/dukadash/backend/internal/application/report"
)

const (
	defaultRenderTimeout = 30 * time.Second

	// A4 in inches; Chrome's print API works in inches
	paperWidthIn  = 210.0 / 25.4
	paperHeightIn = 297.0 / 25.4
	marginIn      = 15.0 / 25.4
)

// Config contains settings for the Chrome-backed renderer
type Config struct {
	// RemoteURL points at a remote Chrome instance. When empty a local
	// browser is launched per renderer.
	RemoteURL string
	// Timeout bounds one render
	Timeout time.Duration
	// NoSandbox runs Chrome without its sandbox, required in containers
	// running as root
	NoSandbox bool
}

// ChromeRenderer renders report documents to PDF through the Chrome
// DevTools protocol.
type ChromeRenderer struct {
	config      Config
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromeRenderer creates a ChromeRenderer and its browser allocator
func NewChromeRenderer(config Config, logger *zap.Logger) *ChromeRenderer {
	if config.Timeout == 0 {
		config.Timeout = defaultRenderTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &ChromeRenderer{config: config, logger: logger}

	if config.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), config.RemoteURL)
		return r
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if config.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return r
}

// RenderPDF renders the document to A4 portrait PDF bytes
func (r *ChromeRenderer) RenderPDF(ctx context.Context, doc appreport.Document) ([]byte, error) {
	html, err := buildReportHTML(doc)
	if err != nil {
		return nil, fmt.Errorf("build report html: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx)
	defer browserCancel()

	start := time.Now()
	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginRight(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("pdf render timed out after %v: %w", r.config.Timeout, err)
		}
		r.logger.Error("pdf render failed", zap.Error(err))
		return nil, fmt.Errorf("pdf render: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("pdf render produced no output")
	}

	r.logger.Info("report rendered",
		zap.Int("bytes", len(pdf)),
		zap.Duration("duration", time.Since(start)))
	return pdf, nil
}

// Close releases the browser allocator
func (r *ChromeRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}

var _ appreport.Renderer = (*ChromeRenderer)(nil)
