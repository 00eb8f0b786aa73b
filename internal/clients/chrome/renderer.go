// Package chrome drives a headless browser to print HTML documents to
// paginated PDF byte streams. It is the rendering-engine collaborator of the
// report pipeline.
package chrome

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/civiclens/civiclens-backend/internal/pkg/logger"
	"github.com/civiclens/civiclens-backend/internal/utils"
)

// A4 paper with margins sized so the header band (45mm) and footer band
// (20mm) never overlap body content. PrintToPDF takes inches.
const (
	paperWidthIn   = 8.27
	paperHeightIn  = 11.69
	marginTopIn    = 45.0 / 25.4
	marginBottomIn = 20.0 / 25.4
	marginLeftIn   = 20.0 / 25.4
	marginRightIn  = 20.0 / 25.4
)

type Renderer struct {
	log      *logger.Logger
	allocCtx context.Context
	cancel   context.CancelFunc
	timeout  time.Duration
}

// NewRenderer starts a shared browser allocator. Each render gets its own
// tab context, so concurrent requests do not share page state.
func NewRenderer(log *logger.Logger) (*Renderer, error) {
	serviceLog := log.With("service", "ChromeRenderer")

	timeoutSeconds := utils.GetEnvAsInt("RENDER_TIMEOUT_SECONDS", 30, log)

	opts := chromedp.DefaultExecAllocatorOptions[:]
	if execPath := strings.TrimSpace(os.Getenv("CHROME_EXEC_PATH")); execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Renderer{
		log:      serviceLog,
		allocCtx: allocCtx,
		cancel:   cancel,
		timeout:  time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

func (r *Renderer) Close() error {
	if r.cancel != nil {
		r.cancel()
	}
	return nil
}

// RenderPDF prints the document to A4 PDF with background graphics and the
// given header/footer bands. The render is bounded by the configured
// timeout; expiry is retried once before the failure is surfaced.
func (r *Renderer) RenderPDF(ctx context.Context, bodyHTML, headerHTML, footerHTML string) ([]byte, error) {
	pdf, err := r.renderOnce(ctx, bodyHTML, headerHTML, footerHTML)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		r.log.Warn("render timed out, retrying once", "timeout", r.timeout)
		pdf, err = r.renderOnce(ctx, bodyHTML, headerHTML, footerHTML)
	}
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return pdf, nil
}

func (r *Renderer) renderOnce(ctx context.Context, bodyHTML, headerHTML, footerHTML string) ([]byte, error) {
	tabCtx, cancelTab := chromedp.NewContext(r.allocCtx)
	defer cancelTab()

	// Bounded by the render timeout only. The tab is deliberately not tied
	// to the request context: a client disconnect must not abort an
	// in-flight render once the pipeline has started.
	runCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
	defer cancelTimeout()

	var pdf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, bodyHTML).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(headerHTML).
				WithFooterTemplate(footerHTML).
				WithMarginTop(marginTopIn).
				WithMarginBottom(marginBottomIn).
				WithMarginLeft(marginLeftIn).
				WithMarginRight(marginRightIn).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
