// Package export turns rendered documents into downloadable artifacts. The
// rasterizer and the word packager are consumed as black boxes; overlapping
// export invocations of the same kind are rejected while one is running.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/de-tools/dossier-desk/pkg/models/domain"
	"github.com/de-tools/dossier-desk/pkg/services/htmlrender"
	"github.com/rs/zerolog"
)

// ErrExportBusy rejects an export while one of the same kind is running.
var ErrExportBusy = errors.New("export already in progress")

// Kind names one export pipeline.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindWord Kind = "doc"
)

// Exporter renders a document and hands it to the matching collaborator.
type Exporter struct {
	renderer *htmlrender.Renderer
	engine   Engine

	mu   sync.Mutex
	busy map[string]bool
}

// NewExporter wires the renderer and the PDF engine.
func NewExporter(renderer *htmlrender.Renderer, engine Engine) *Exporter {
	return &Exporter{
		renderer: renderer,
		engine:   engine,
		busy:     map[string]bool{},
	}
}

// ExportPDF rasterizes the document. key scopes the busy flag, typically the
// session id.
func (e *Exporter) ExportPDF(ctx context.Context, key string, doc domain.Document) ([]byte, error) {
	logger := zerolog.Ctx(ctx)
	if !e.acquire(key, KindPDF) {
		return nil, ErrExportBusy
	}
	defer e.release(key, KindPDF)

	html, err := e.renderer.RenderString(doc)
	if err != nil {
		return nil, err
	}
	data, err := e.engine.PrintPDF(ctx, html)
	if err != nil {
		logger.Error().Err(err).Str("kind", string(KindPDF)).Msg("export failed")
		return nil, fmt.Errorf("pdf export failed: %w", err)
	}
	return data, nil
}

// ExportWord packages the document markup in the word envelope.
func (e *Exporter) ExportWord(ctx context.Context, key string, doc domain.Document) ([]byte, error) {
	logger := zerolog.Ctx(ctx)
	if !e.acquire(key, KindWord) {
		return nil, ErrExportBusy
	}
	defer e.release(key, KindWord)

	html, err := e.renderer.RenderString(doc)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := PackageWord(&buf, html); err != nil {
		logger.Error().Err(err).Str("kind", string(KindWord)).Msg("export failed")
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName derives the download name the way the original tool titled its
// exports: report type plus the subject's name.
func FileName(d domain.Dossier, kind Kind) string {
	name := d.Field("f1")
	if name == "" {
		name = d.Field("bail_name")
	}
	if name == "" {
		name = "Draft"
	}
	return fmt.Sprintf("%s_%s.%s", d.ReportType, name, kind)
}

func (e *Exporter) acquire(key string, kind Kind) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	k := key + "/" + string(kind)
	if e.busy[k] {
		return false
	}
	e.busy[k] = true
	return true
}

func (e *Exporter) release(key string, kind Kind) {
	e.mu.Lock()
	delete(e.busy, key+"/"+string(kind))
	e.mu.Unlock()
}
