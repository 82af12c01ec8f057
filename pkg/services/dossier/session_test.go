package dossier

import (
	"testing"
	"time"

	"github.com/de-tools/dossier-desk/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

func TestSessionAppliesSerially(t *testing.T) {
	sess := NewSessionAt(fixedClock())

	sess.SetField("f1", "Ram Singh")
	sess.SetReportType(domain.ReportBailMonitoring)
	sess.SetField("bail_name", "Ram Singh")
	require.NoError(t, sess.AppendHistoryEntry())

	state := sess.State()
	assert.Equal(t, "Ram Singh", state.Field("f1"))
	assert.Equal(t, domain.ReportBailMonitoring, state.ReportType)
	assert.Equal(t, "07/03/2025 14:05:09", state.Field("bail_datetime"))
	assert.Len(t, state.BailHistory, 1)
}

func TestSessionStateIsACopy(t *testing.T) {
	sess := NewSessionAt(fixedClock())
	sess.SetField("f1", "original")

	leaked := sess.State()
	leaked.Fields["f1"] = "tampered"
	leaked.ExtraPhotos = append(leaked.ExtraPhotos, "x")

	assert.Equal(t, "original", sess.State().Field("f1"))
	assert.Empty(t, sess.State().ExtraPhotos)
}

func TestSessionApplyErrorLeavesState(t *testing.T) {
	sess := NewSessionAt(fixedClock())
	sess.SetField("f1", "kept")

	err := sess.AppendHistoryEntry()
	assert.ErrorIs(t, err, ErrEmptyBailName)
	assert.Equal(t, "kept", sess.State().Field("f1"))
	assert.Empty(t, sess.State().BailHistory)
}

func TestSessionTranslateGuard(t *testing.T) {
	sess := NewSession()

	require.True(t, sess.BeginTranslate())
	assert.False(t, sess.BeginTranslate(), "second invocation while pending is rejected")

	sess.EndTranslate()
	assert.True(t, sess.BeginTranslate(), "slot reopens once cleared")
}

func TestRegistry(t *testing.T) {
	reg := NewRegistryAt(fixedClock())

	id, sess := reg.Create()
	require.NotEmpty(t, id)

	got, err := reg.Get(id)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, err = reg.Get("no-such-id")
	assert.ErrorIs(t, err, ErrUnknownSession)

	reg.Delete(id)
	_, err = reg.Get(id)
	assert.ErrorIs(t, err, ErrUnknownSession)
}
