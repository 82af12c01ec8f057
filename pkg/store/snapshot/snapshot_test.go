package snapshot

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/dossier-desk/pkg/models/domain"
	"github.com/de-tools/dossier-desk/pkg/services/dossier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populated(t *testing.T) domain.Dossier {
	t.Helper()
	now := time.Date(2025, 3, 7, 14, 5, 9, 0, time.Local)

	d := domain.NewDossier()
	d = dossier.SetField(d, "f1", "Ram Singh")
	d = dossier.SetField(d, "f12_Father", "Mohan Singh")
	d = dossier.SetField(d, "extra_text", "annexure notes")
	d = dossier.SetReportType(d, domain.ReportBailMonitoring, now)
	d = dossier.SetField(d, "bail_name", "Ram Singh")

	var err error
	d, err = dossier.SetPhoto(d, domain.PhotoFront, "data:image/jpeg;base64,xxxx")
	require.NoError(t, err)
	d, err = dossier.AddMedia(d, domain.MediaPhoto, []string{"e1", "e2"})
	require.NoError(t, err)
	d, err = dossier.AddMedia(d, domain.MediaAudio, []string{"a1"})
	require.NoError(t, err)
	d, err = dossier.AppendHistoryEntry(d, now)
	require.NoError(t, err)
	return d
}

func TestRoundTripIdentity(t *testing.T) {
	tests := []struct {
		name  string
		state func(*testing.T) domain.Dossier
	}{
		{"empty state", func(*testing.T) domain.Dossier { return domain.NewDossier() }},
		{"populated state", populated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.state(t)

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, state))

			restored, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, state, restored, "load(save(s)) must equal s")
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	assert.ErrorIs(t, err, ErrMalformedSnapshot)
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.json")
	state := populated(t)

	require.NoError(t, Save(path, state))

	restored, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, state, restored)
}

func TestFileName(t *testing.T) {
	d := domain.NewDossier()
	assert.Equal(t, "dossier.json", FileName(d))

	d = dossier.SetField(d, "bail_name", "Shyam")
	assert.Equal(t, "Shyam.json", FileName(d))

	d = dossier.SetField(d, "f1", "Ram Singh")
	assert.Equal(t, "Ram Singh.json", FileName(d))
}
