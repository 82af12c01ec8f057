// Package dossier implements the record store: pure transitions over dossier
// values, a session host that applies them serially, and a registry of live
// sessions.
package dossier

import (
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/dossier-desk/pkg/models/domain"
)

var (
	// ErrEmptyBailName rejects history logging until a name is entered.
	ErrEmptyBailName = errors.New("bail name is required before logging")
	// ErrMediaIndexOutOfRange rejects removal of a non-existent asset.
	ErrMediaIndexOutOfRange = errors.New("media index out of range")
	// ErrUnknownPhotoSlot rejects writes to slots outside p1..p3.
	ErrUnknownPhotoSlot = errors.New("unknown photo slot")
	// ErrUnknownMediaKind rejects operations on unrecognized collections.
	ErrUnknownMediaKind = errors.New("unknown media kind")
)

// TimestampLayout is the bail verification timestamp format.
const TimestampLayout = "02/01/2006 15:04:05"

// FormatTimestamp renders t the way the bail form stores it.
func FormatTimestamp(t time.Time) string { return t.Format(TimestampLayout) }

// SetField upserts one field value. Total: any key, any value.
func SetField(d domain.Dossier, key, value string) domain.Dossier {
	out := d.Clone()
	out.Fields[key] = value
	return out
}

// SetReportType switches the report discriminator. Entering bail monitoring
// auto-fills the verification timestamp if it is not set yet; an existing
// value is never reset, even when switching away and back.
func SetReportType(d domain.Dossier, t domain.ReportType, now time.Time) domain.Dossier {
	out := d.Clone()
	out.ReportType = t
	if t == domain.ReportBailMonitoring && out.Fields["bail_datetime"] == "" {
		out.Fields["bail_datetime"] = FormatTimestamp(now)
	}
	return out
}

// ReplaceFields swaps the entire field mapping wholesale. Used after bulk
// translation and full-state load; it never merges.
func ReplaceFields(d domain.Dossier, fields map[string]string) domain.Dossier {
	out := d.Clone()
	out.Fields = make(map[string]string, len(fields))
	for k, v := range fields {
		out.Fields[k] = v
	}
	return out
}

// AppendHistoryEntry snapshots the current bail sub-fields into a new entry
// prepended to the history log. Fails without mutating anything when the
// bail name is empty.
func AppendHistoryEntry(d domain.Dossier, now time.Time) (domain.Dossier, error) {
	if d.Fields["bail_name"] == "" {
		return d, ErrEmptyBailName
	}
	date := d.Fields["bail_datetime"]
	if date == "" {
		date = FormatTimestamp(now)
	}
	entry := domain.BailEntry{
		Date:       date,
		Name:       d.Fields["bail_name"],
		GPS:        d.Fields["bail_gps"],
		Living:     d.Fields["bail_living"],
		Occupation: d.Fields["bail_occupation"],
		Activity:   d.Fields["bail_activity"],
		Income:     d.Fields["bail_income"],
		Other:      d.Fields["bail_other"],
		Verifier:   d.Fields["bail_verifier"],
	}
	out := d.Clone()
	out.BailHistory = append([]domain.BailEntry{entry}, out.BailHistory...)
	return out, nil
}

// SetPhoto fills one fixed identification slot.
func SetPhoto(d domain.Dossier, slot domain.PhotoSlot, data string) (domain.Dossier, error) {
	return updatePhoto(d, slot, &data)
}

// RemovePhoto clears one fixed identification slot.
func RemovePhoto(d domain.Dossier, slot domain.PhotoSlot) (domain.Dossier, error) {
	return updatePhoto(d, slot, nil)
}

func updatePhoto(d domain.Dossier, slot domain.PhotoSlot, data *string) (domain.Dossier, error) {
	out := d.Clone()
	switch slot {
	case domain.PhotoFront:
		out.Photos.P1 = data
	case domain.PhotoLeft:
		out.Photos.P2 = data
	case domain.PhotoRight:
		out.Photos.P3 = data
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownPhotoSlot, slot)
	}
	return out, nil
}

// AddMedia appends a batch of asset handles to one collection. The batch is
// applied atomically: callers converting files fan out first and only call
// this once every conversion succeeded.
func AddMedia(d domain.Dossier, kind domain.MediaKind, items []string) (domain.Dossier, error) {
	out := d.Clone()
	switch kind {
	case domain.MediaPhoto:
		out.ExtraPhotos = append(out.ExtraPhotos, items...)
	case domain.MediaVideo:
		out.Videos = append(out.Videos, items...)
	case domain.MediaAudio:
		out.Audio = append(out.Audio, items...)
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownMediaKind, kind)
	}
	return out, nil
}

// RemoveMedia drops the asset at index, preserving the relative order of the
// remaining assets.
func RemoveMedia(d domain.Dossier, kind domain.MediaKind, index int) (domain.Dossier, error) {
	out := d.Clone()
	var list *[]string
	switch kind {
	case domain.MediaPhoto:
		list = &out.ExtraPhotos
	case domain.MediaVideo:
		list = &out.Videos
	case domain.MediaAudio:
		list = &out.Audio
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownMediaKind, kind)
	}
	if index < 0 || index >= len(*list) {
		return d, fmt.Errorf("%w: %d of %d", ErrMediaIndexOutOfRange, index, len(*list))
	}
	*list = append((*list)[:index], (*list)[index+1:]...)
	return out, nil
}
