package export

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/de-tools/dossier-desk/pkg/models/domain"
	"github.com/de-tools/dossier-desk/pkg/services/htmlrender"
	"github.com/de-tools/dossier-desk/pkg/services/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	mu      sync.Mutex
	calls   int
	err     error
	started chan struct{}
	block   chan struct{}
}

func (f *fakeEngine) PrintPDF(_ context.Context, html string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF " + html[:16]), nil
}

func testDocument(t *testing.T) domain.Document {
	t.Helper()
	d := domain.NewDossier()
	d.ReportType = domain.ReportEDossier
	d.Fields["f1"] = "Ram Singh"
	return layout.Render(d)
}

func TestPackageWordEnvelope(t *testing.T) {
	var buf bytes.Buffer
	err := PackageWord(&buf, "<table><tr><td>Ram Singh</td></tr></table>")
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\uFEFF"), "word payload must start with a BOM")
	assert.Contains(t, out, "urn:schemas-microsoft-com:office:word")
	assert.Contains(t, out, "Ram Singh")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</html>"))
}

func TestExportPDF(t *testing.T) {
	engine := &fakeEngine{}
	exp := NewExporter(htmlrender.NewRenderer(), engine)

	data, err := exp.ExportPDF(context.Background(), "s1", testDocument(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, 1, engine.calls)
}

func TestExportPDFEngineFailure(t *testing.T) {
	engine := &fakeEngine{err: errors.New("browser gone")}
	exp := NewExporter(htmlrender.NewRenderer(), engine)

	_, err := exp.ExportPDF(context.Background(), "s1", testDocument(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "browser gone")

	// The busy flag is released after a failure.
	engine.err = nil
	_, err = exp.ExportPDF(context.Background(), "s1", testDocument(t))
	assert.NoError(t, err)
}

func TestExportPDFBusy(t *testing.T) {
	engine := &fakeEngine{started: make(chan struct{}), block: make(chan struct{})}
	exp := NewExporter(htmlrender.NewRenderer(), engine)
	doc := testDocument(t)

	done := make(chan error, 1)
	go func() {
		_, err := exp.ExportPDF(context.Background(), "s1", doc)
		done <- err
	}()
	<-engine.started

	_, err := exp.ExportPDF(context.Background(), "s1", doc)
	assert.ErrorIs(t, err, ErrExportBusy)

	// A different kind is not blocked.
	_, err = exp.ExportWord(context.Background(), "s1", doc)
	assert.NoError(t, err)

	close(engine.block)
	require.NoError(t, <-done)
}

func TestExportWord(t *testing.T) {
	exp := NewExporter(htmlrender.NewRenderer(), &fakeEngine{})

	data, err := exp.ExportWord(context.Background(), "s1", testDocument(t))
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.HasPrefix(out, "\uFEFF"))
	assert.Contains(t, out, "Ram Singh")
}

func TestFileName(t *testing.T) {
	d := domain.NewDossier()
	d.ReportType = domain.ReportEDossier
	assert.Equal(t, "E-DOSSIER_Draft.pdf", FileName(d, KindPDF))

	d.Fields["bail_name"] = "Shyam Lal"
	assert.Equal(t, "E-DOSSIER_Shyam Lal.doc", FileName(d, KindWord))

	d.Fields["f1"] = "Ram Singh"
	assert.Equal(t, "E-DOSSIER_Ram Singh.pdf", FileName(d, KindPDF))
}
