package dossier

import (
	"sync"
	"time"

	"github.com/de-tools/dossier-desk/pkg/models/domain"
)

// Transition maps one dossier value to the next. Transitions must be pure;
// the session serializes their application.
type Transition func(domain.Dossier) (domain.Dossier, error)

// Session owns the single current dossier value and applies events one at a
// time, so handlers never observe a half-applied mutation.
type Session struct {
	mu  sync.Mutex
	cur domain.Dossier
	now func() time.Time

	translating bool
}

// NewSession returns a session holding an empty dossier.
func NewSession() *Session {
	return &Session{cur: domain.NewDossier(), now: time.Now}
}

// NewSessionAt injects the clock, for deterministic timestamps in tests.
func NewSessionAt(now func() time.Time) *Session {
	return &Session{cur: domain.NewDossier(), now: now}
}

// State returns a copy of the current dossier.
func (s *Session) State() domain.Dossier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Clone()
}

// Apply runs one transition against the current state. On error the state is
// left untouched.
func (s *Session) Apply(fn Transition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.cur)
	if err != nil {
		return err
	}
	s.cur = next
	return nil
}

// Replace swaps in a whole new state, used by snapshot load.
func (s *Session) Replace(d domain.Dossier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = d.Clone()
}

// SetField upserts one field value.
func (s *Session) SetField(key, value string) {
	_ = s.Apply(func(d domain.Dossier) (domain.Dossier, error) {
		return SetField(d, key, value), nil
	})
}

// SetReportType switches the report discriminator.
func (s *Session) SetReportType(t domain.ReportType) {
	_ = s.Apply(func(d domain.Dossier) (domain.Dossier, error) {
		return SetReportType(d, t, s.now()), nil
	})
}

// ReplaceFields swaps the entire field mapping.
func (s *Session) ReplaceFields(fields map[string]string) {
	_ = s.Apply(func(d domain.Dossier) (domain.Dossier, error) {
		return ReplaceFields(d, fields), nil
	})
}

// AppendHistoryEntry logs the current bail sub-fields.
func (s *Session) AppendHistoryEntry() error {
	return s.Apply(func(d domain.Dossier) (domain.Dossier, error) {
		return AppendHistoryEntry(d, s.now())
	})
}

// SetPhoto fills one identification slot.
func (s *Session) SetPhoto(slot domain.PhotoSlot, data string) error {
	return s.Apply(func(d domain.Dossier) (domain.Dossier, error) {
		return SetPhoto(d, slot, data)
	})
}

// RemovePhoto clears one identification slot.
func (s *Session) RemovePhoto(slot domain.PhotoSlot) error {
	return s.Apply(func(d domain.Dossier) (domain.Dossier, error) {
		return RemovePhoto(d, slot)
	})
}

// AddMedia appends a batch of assets to one collection.
func (s *Session) AddMedia(kind domain.MediaKind, items []string) error {
	return s.Apply(func(d domain.Dossier) (domain.Dossier, error) {
		return AddMedia(d, kind, items)
	})
}

// RemoveMedia drops the asset at index from one collection.
func (s *Session) RemoveMedia(kind domain.MediaKind, index int) error {
	return s.Apply(func(d domain.Dossier) (domain.Dossier, error) {
		return RemoveMedia(d, kind, index)
	})
}

// BeginTranslate claims the single translation slot. It reports false when a
// translation is already in flight.
func (s *Session) BeginTranslate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.translating {
		return false
	}
	s.translating = true
	return true
}

// EndTranslate releases the translation slot.
func (s *Session) EndTranslate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.translating = false
}
