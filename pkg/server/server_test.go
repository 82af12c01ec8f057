package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/dossier-desk/pkg/models/api"
	"github.com/de-tools/dossier-desk/pkg/services/dossier"
	"github.com/de-tools/dossier-desk/pkg/services/export"
	"github.com/de-tools/dossier-desk/pkg/services/geolocate"
	"github.com/de-tools/dossier-desk/pkg/services/htmlrender"
	"github.com/de-tools/dossier-desk/pkg/services/translate"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTranslateClient struct{}

func (stubTranslateClient) TranslateFields(_ context.Context, fields map[string]string, _ string) (map[string]string, error) {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = "en:" + v
	}
	return out, nil
}

type stubLocator struct{}

func (stubLocator) Locate(context.Context) (geolocate.Position, error) {
	return geolocate.Position{Lat: 28.6139, Lng: 77.209}, nil
}

type stubEngine struct{}

func (stubEngine) PrintPDF(_ context.Context, html string) ([]byte, error) {
	return []byte("%PDF-" + html[:8]), nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	renderer := htmlrender.NewRenderer()
	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Registry:   dossier.NewRegistry(),
			Translator: translate.NewService(stubTranslateClient{}),
			Locator:    stubLocator{},
			Exporter:   export.NewExporter(renderer, stubEngine{}),
			Renderer:   renderer,
			Logger:     zerolog.New(zerolog.NewTestWriter(nil)),
		},
	}
	srv := httptest.NewServer(ConfigureRouter(config))
	t.Cleanup(srv.Close)
	return srv
}

func createSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/v1/sessions", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created api.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func doJSON(t *testing.T, method, url string, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestWebAPI_SessionLifecycle(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	base := srv.URL + "/api/v1/sessions/" + id

	// Field entry round-trips through the session.
	resp := doJSON(t, http.MethodPut, base+"/fields/f1", `{"value": "Ram Singh"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(base + "/")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var state api.Dossier
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&state))
	assert.Equal(t, "Ram Singh", state.Fields["f1"])

	// Unknown session is a 404.
	resp3, err := http.Get(srv.URL + "/api/v1/sessions/unknown/")
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}

func TestWebAPI_DocumentAndPreview(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	base := srv.URL + "/api/v1/sessions/" + id

	resp := doJSON(t, http.MethodPut, base+"/fields/f1", `{"value": "Ram Singh"}`)
	resp.Body.Close()

	docResp, err := http.Get(base + "/document")
	require.NoError(t, err)
	defer docResp.Body.Close()
	require.Equal(t, http.StatusOK, docResp.StatusCode)

	var doc api.Document
	require.NoError(t, json.NewDecoder(docResp.Body).Decode(&doc))
	assert.Len(t, doc.Sections, 39)

	previewResp, err := http.Get(base + "/preview")
	require.NoError(t, err)
	defer previewResp.Body.Close()
	require.Equal(t, http.StatusOK, previewResp.StatusCode)
	body, err := io.ReadAll(previewResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Ram Singh")
}

func TestWebAPI_BailFlow(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	base := srv.URL + "/api/v1/sessions/" + id

	resp := doJSON(t, http.MethodPut, base+"/report-type", `{"report_type": "BAIL MONITORING"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// GPS capture writes the bail_gps field.
	resp = doJSON(t, http.MethodPost, base+"/gps", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fix api.GPSFix
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fix))
	assert.Equal(t, "28.613900, 77.209000", fix.Location)

	// Empty bail_name rejects the history entry.
	resp = doJSON(t, http.MethodPost, base+"/history", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, base+"/fields/bail_name", `{"value": "Ram Singh"}`)
	resp.Body.Close()
	resp = doJSON(t, http.MethodPost, base+"/history", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var state api.Dossier
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	require.Len(t, state.BailHistory, 1)
	assert.Equal(t, "28.613900, 77.209000", state.BailHistory[0].GPS)
}

func TestWebAPI_SnapshotRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	base := srv.URL + "/api/v1/sessions/" + id

	resp := doJSON(t, http.MethodPut, base+"/fields/f1", `{"value": "Ram Singh"}`)
	resp.Body.Close()

	saveResp, err := http.Get(base + "/save")
	require.NoError(t, err)
	defer saveResp.Body.Close()
	require.Equal(t, http.StatusOK, saveResp.StatusCode)
	saved, err := io.ReadAll(saveResp.Body)
	require.NoError(t, err)

	otherID := createSession(t, srv)
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/"+otherID+"/load", string(saved))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var state api.Dossier
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.Equal(t, "Ram Singh", state.Fields["f1"])
}

func TestWebAPI_Export(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	base := srv.URL + "/api/v1/sessions/" + id

	resp := doJSON(t, http.MethodPost, base+"/export/pdf", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp2 := doJSON(t, http.MethodPost, base+"/export/doc", "")
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Equal(t, "application/msword", resp2.Header.Get("Content-Type"))
}

func TestNewWebAPI(t *testing.T) {
	renderer := htmlrender.NewRenderer()
	api := NewWebAPI(Config{
		Addr:            ":9090",
		ShutdownTimeout: 5 * time.Second,
		Dependencies: Dependencies{
			Registry:   dossier.NewRegistry(),
			Translator: translate.NewService(stubTranslateClient{}),
			Locator:    stubLocator{},
			Exporter:   export.NewExporter(renderer, stubEngine{}),
			Renderer:   renderer,
			Logger:     zerolog.New(zerolog.NewTestWriter(nil)),
		},
	})

	assert.Equal(t, ":9090", api.server.Addr)
	assert.Equal(t, 5*time.Second, api.shutdownTimeout)

	// The configured server serves the same routes as the router.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schema", nil)
	rec := httptest.NewRecorder()
	api.server.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A zero timeout falls back to the default.
	api = NewWebAPI(Config{Dependencies: Dependencies{
		Registry:   dossier.NewRegistry(),
		Translator: translate.NewService(stubTranslateClient{}),
		Locator:    stubLocator{},
		Exporter:   export.NewExporter(renderer, stubEngine{}),
		Renderer:   renderer,
	}})
	assert.Equal(t, 10*time.Second, api.shutdownTimeout)
}

func TestWebAPI_Schema(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/schema")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sections []api.SchemaSection
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sections))
	assert.Len(t, sections, 39)
}
