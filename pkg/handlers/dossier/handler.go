package dossier

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/de-tools/dossier-desk/pkg/adapters"
	"github.com/de-tools/dossier-desk/pkg/models/api"
	"github.com/de-tools/dossier-desk/pkg/models/domain"
	"github.com/de-tools/dossier-desk/pkg/services/dossier"
	"github.com/de-tools/dossier-desk/pkg/services/export"
	"github.com/de-tools/dossier-desk/pkg/services/geolocate"
	"github.com/de-tools/dossier-desk/pkg/services/htmlrender"
	"github.com/de-tools/dossier-desk/pkg/services/layout"
	"github.com/de-tools/dossier-desk/pkg/services/schema"
	"github.com/de-tools/dossier-desk/pkg/services/translate"
	"github.com/de-tools/dossier-desk/pkg/store/snapshot"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	registry   *dossier.Registry
	translator *translate.Service
	locator    geolocate.Locator
	exporter   *export.Exporter
	renderer   *htmlrender.Renderer
}

func NewHandler(
	registry *dossier.Registry,
	translator *translate.Service,
	locator geolocate.Locator,
	exporter *export.Exporter,
	renderer *htmlrender.Renderer,
) *Handler {
	return &Handler{
		registry:   registry,
		translator: translator,
		locator:    locator,
		exporter:   exporter,
		renderer:   renderer,
	}
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, _ := h.registry.Create()
	writeJSON(w, r, api.Session{ID: id})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, adapters.MapDossierDomainToApi(sess.State()))
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	h.registry.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetField(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var body api.FieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}
	sess.SetField(chi.URLParam(r, "key"), body.Value)
	writeJSON(w, r, adapters.MapDossierDomainToApi(sess.State()))
}

func (h *Handler) SetReportType(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var body api.ReportTypeUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}
	t, ok := domain.ParseReportType(body.ReportType)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "unknown report type")
		return
	}
	sess.SetReportType(t)
	writeJSON(w, r, adapters.MapDossierDomainToApi(sess.State()))
}

func (h *Handler) ReplaceFields(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var body api.FieldsReplace
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}
	sess.ReplaceFields(body.Fields)
	writeJSON(w, r, adapters.MapDossierDomainToApi(sess.State()))
}

func (h *Handler) AppendHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.AppendHistoryEntry(); err != nil {
		mapServiceError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapDossierDomainToApi(sess.State()))
}

func (h *Handler) SetPhoto(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var body api.PhotoUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}
	slot := domain.PhotoSlot(chi.URLParam(r, "slot"))
	if err := sess.SetPhoto(slot, body.Data); err != nil {
		mapServiceError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapDossierDomainToApi(sess.State()))
}

func (h *Handler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	slot := domain.PhotoSlot(chi.URLParam(r, "slot"))
	if err := sess.RemovePhoto(slot); err != nil {
		mapServiceError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapDossierDomainToApi(sess.State()))
}

func (h *Handler) AddMedia(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var body api.MediaBatch
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}
	kind := domain.MediaKind(chi.URLParam(r, "kind"))
	if err := sess.AddMedia(kind, body.Items); err != nil {
		mapServiceError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapDossierDomainToApi(sess.State()))
}

func (h *Handler) RemoveMedia(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed media index")
		return
	}
	kind := domain.MediaKind(chi.URLParam(r, "kind"))
	if err := sess.RemoveMedia(kind, index); err != nil {
		mapServiceError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapDossierDomainToApi(sess.State()))
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	doc := layout.Render(sess.State())
	writeJSON(w, r, adapters.MapDocumentDomainToApi(doc))
}

func (h *Handler) GetPreview(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	logger := zerolog.Ctx(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, layout.Render(sess.State())); err != nil {
		logger.Error().Err(err).Msg("failed to render preview")
	}
}

func (h *Handler) GetSchema(w http.ResponseWriter, r *http.Request) {
	sections := schema.Standard()
	if r.URL.Query().Get("type") == string(domain.ReportBailMonitoring) {
		sections = schema.Bail()
	}
	out := make([]api.SchemaSection, 0, len(sections))
	for _, sec := range sections {
		out = append(out, adapters.MapSchemaSectionToApi(sec))
	}
	writeJSON(w, r, out)
}

// SaveSnapshot streams the session state as a snapshot file download.
func (h *Handler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	logger := zerolog.Ctx(r.Context())
	state := sess.State()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+snapshot.FileName(state)+`"`)
	if err := snapshot.Encode(w, state); err != nil {
		logger.Error().Err(err).Msg("failed to encode snapshot")
	}
}

// LoadSnapshot replaces the session state with the posted snapshot.
func (h *Handler) LoadSnapshot(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	state, err := snapshot.Decode(r.Body)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}
	sess.Replace(state)
	writeJSON(w, r, adapters.MapDossierDomainToApi(sess.State()))
}

func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var body api.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}
	if body.TargetLang == "" {
		body.TargetLang = "English"
	}
	if err := h.translator.Translate(r.Context(), sess, body.TargetLang); err != nil {
		mapServiceError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapDossierDomainToApi(sess.State()))
}

// CaptureGPS resolves the current position and writes it into bail_gps.
func (h *Handler) CaptureGPS(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	pos, err := h.locator.Locate(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("position lookup failed")
		writeError(w, r, http.StatusBadGateway, "position lookup failed")
		return
	}
	fix := geolocate.FormatPosition(pos)
	sess.SetField("bail_gps", fix)
	writeJSON(w, r, api.GPSFix{Location: fix})
}

func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, export.KindPDF, "application/pdf")
}

func (h *Handler) ExportWord(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, export.KindWord, "application/msword")
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request, kind export.Kind, contentType string) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	state := sess.State()
	doc := layout.Render(state)

	var (
		data []byte
		err  error
	)
	switch kind {
	case export.KindWord:
		data, err = h.exporter.ExportWord(r.Context(), id, doc)
	default:
		data, err = h.exporter.ExportPDF(r.Context(), id, doc)
	}
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(state, kind)+`"`)
	if _, err := w.Write(data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("kind", string(kind)).Msg("failed to write export")
	}
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*dossier.Session, bool) {
	sess, err := h.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "unknown session")
		return nil, false
	}
	return sess, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.Error{Error: msg}); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode error")
	}
}

func mapServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, dossier.ErrEmptyBailName),
		errors.Is(err, dossier.ErrMediaIndexOutOfRange),
		errors.Is(err, translate.ErrNoData):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, dossier.ErrUnknownPhotoSlot),
		errors.Is(err, dossier.ErrUnknownMediaKind),
		errors.Is(err, snapshot.ErrMalformedSnapshot):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, translate.ErrTranslationInFlight),
		errors.Is(err, export.ErrExportBusy):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, translate.ErrNotConfigured):
		writeError(w, r, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, r, http.StatusInternalServerError, err.Error())
	}
}
