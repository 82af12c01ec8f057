package export

import (
	"context"
	"fmt"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Engine rasterizes rendered HTML into a paginated PDF.
type Engine interface {
	PrintPDF(ctx context.Context, html string) ([]byte, error)
}

// RodEngine prints through a headless browser, which honors the
// page-break-avoid hints the renderer attaches to atomic blocks.
type RodEngine struct{}

// NewRodEngine returns a browser-backed PDF engine.
func NewRodEngine() *RodEngine { return &RodEngine{} }

func (e *RodEngine) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	url, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to wait for document: %w", err)
	}

	// A4 portrait, dimensions in inches.
	width, height := 8.27, 11.69
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      &width,
		PaperHeight:     &height,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to print pdf: %w", err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf stream: %w", err)
	}
	return data, nil
}
