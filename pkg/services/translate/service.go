// Package translate rewrites the textual fields of a dossier into another
// language through a model backend. A session holds at most one in-flight
// translation; anything else is rejected instead of queued.
package translate

import (
	"context"
	"errors"

	"github.com/de-tools/dossier-desk/pkg/services/dossier"
	"github.com/rs/zerolog"
)

// ErrTranslationInFlight rejects a translation while one is already running
// for the same session.
var ErrTranslationInFlight = errors.New("translation already in progress")

// ErrNotConfigured is returned when no translation backend is set up.
var ErrNotConfigured = errors.New("translation backend is not configured")

// ErrNoData is returned when the dossier has no fields to translate.
var ErrNoData = errors.New("no data to translate")

// Disabled stands in for the model client when no API key is configured.
type Disabled struct{}

func (Disabled) TranslateFields(context.Context, map[string]string, string) (map[string]string, error) {
	return nil, ErrNotConfigured
}

// Service applies translations to sessions.
type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

// Translate replaces the session's fields with their translations. The field
// map is swapped wholesale on success; on any failure the session keeps its
// current fields.
func (s *Service) Translate(ctx context.Context, sess *dossier.Session, lang string) error {
	logger := zerolog.Ctx(ctx)
	if !sess.BeginTranslate() {
		return ErrTranslationInFlight
	}
	defer sess.EndTranslate()

	fields := sess.State().Fields
	if len(fields) == 0 {
		return ErrNoData
	}

	translated, err := s.client.TranslateFields(ctx, fields, lang)
	if err != nil {
		logger.Error().Err(err).Str("lang", lang).Msg("translation failed")
		return err
	}

	sess.ReplaceFields(translated)
	return nil
}
