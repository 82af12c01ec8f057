// Package snapshot serializes the whole dossier state to JSON and restores
// it. The round trip is lossless: load(save(s)) == s for any reachable state.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/dossier-desk/pkg/adapters"
	"github.com/de-tools/dossier-desk/pkg/models/domain"
	"github.com/de-tools/dossier-desk/pkg/models/store"
)

// ErrMalformedSnapshot marks snapshot input that cannot be decoded. The
// caller keeps its current state on this error.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Encode writes the dossier as an indented JSON snapshot.
func Encode(w io.Writer, d domain.Dossier) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(adapters.MapDossierDomainToStore(d)); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// Decode reads one snapshot and returns the restored state.
func Decode(r io.Reader) (domain.Dossier, error) {
	var snap store.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return domain.Dossier{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return adapters.MapSnapshotStoreToDomain(snap), nil
}

// Save writes a snapshot file.
func Save(path string, d domain.Dossier) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()
	return Encode(f, d)
}

// Load restores state from a snapshot file.
func Load(path string) (domain.Dossier, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Dossier{}, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// FileName derives the download name for a snapshot: the subject's name if
// entered, falling back to the bail name, then "dossier".
func FileName(d domain.Dossier) string {
	name := d.Field("f1")
	if name == "" {
		name = d.Field("bail_name")
	}
	if name == "" {
		name = "dossier"
	}
	return name + ".json"
}
