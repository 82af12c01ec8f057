// Package layout derives the renderable document tree for a dossier. Render
// is pure: every field lookup defaults to empty and the same input always
// yields the same tree.
package layout

import (
	"fmt"

	"github.com/de-tools/dossier-desk/pkg/models/domain"
	"github.com/de-tools/dossier-desk/pkg/services/schema"
)

// Photo panel slot labels, fixed positions.
var photoSlots = []struct {
	Slot  domain.PhotoSlot
	Label string
}{
	{domain.PhotoFront, "Front View"},
	{domain.PhotoLeft, "Side View (L)"},
	{domain.PhotoRight, "Side View (R)"},
}

// Render derives the document tree for the dossier's report type.
func Render(d domain.Dossier) domain.Document {
	if d.ReportType == domain.ReportBailMonitoring {
		return renderBail(d)
	}
	return renderStandard(d)
}

func renderStandard(d domain.Dossier) domain.Document {
	doc := domain.Document{Title: string(d.ReportType)}

	for _, ps := range photoSlots {
		doc.PhotoPanel = append(doc.PhotoPanel, domain.PhotoBox{
			Label: ps.Label,
			Data:  d.Photos.Get(ps.Slot),
		})
	}

	for _, sec := range schema.Standard() {
		doc.Sections = append(doc.Sections, standardBlock(sec, d))
	}

	doc.Appendix = &domain.Appendix{
		Text:     d.Field("extra_text"),
		Exhibits: append([]string{}, d.ExtraPhotos...),
	}

	doc.Galleries = mediaGalleries(d, "Attached Videos", "Attached Voice Samples")
	return doc
}

func standardBlock(sec schema.Section, d domain.Dossier) domain.SectionBlock {
	block := domain.SectionBlock{
		Number:     sec.Number,
		Label:      sectionLabel(sec),
		AvoidBreak: true,
	}
	if sec.Kind == schema.Plain {
		block.Value = d.Field(schema.FieldKey(sec.Number))
		return block
	}
	block.Group = true
	block.HeaderRow = sec.HeaderRow
	for i, sub := range sec.Subs {
		block.Rows = append(block.Rows, domain.SubRow{
			Label: fmt.Sprintf("%d. %s", i+1, sub.Label),
			Value: d.Field(schema.SubFieldKey(sec.Number, sub.Key)),
		})
	}
	return block
}

func sectionLabel(sec schema.Section) string {
	if sec.Label != "" {
		return sec.Label
	}
	// Sections 13 and 17 surface only sub rows; their blank heading is
	// never shown, so the fallback applies to plain sections alone.
	if sec.Kind == schema.Plain {
		return fmt.Sprintf("Section %d", sec.Number)
	}
	return ""
}

func renderBail(d domain.Dossier) domain.Document {
	doc := domain.Document{Title: "BAIL MONITORING REPORT"}

	for _, sec := range schema.Bail() {
		block := domain.SectionBlock{
			Number:     sec.Number,
			Label:      sec.Label,
			AvoidBreak: true,
		}
		if sec.Kind == schema.Plain {
			block.Value = d.Field(sec.Key)
		} else {
			block.Group = true
			block.HeaderRow = sec.HeaderRow
			for _, sub := range sec.Subs {
				block.Rows = append(block.Rows, domain.SubRow{
					Label: sub.Label,
					Value: d.Field(sub.Key),
				})
			}
		}
		doc.Sections = append(doc.Sections, block)
	}

	if len(d.ExtraPhotos) > 0 {
		doc.Galleries = append(doc.Galleries, domain.Gallery{
			Title: "Verification & Field Evidence",
			Kind:  domain.MediaPhoto,
			Items: append([]string{}, d.ExtraPhotos...),
		})
	}
	doc.Galleries = append(doc.Galleries, mediaGalleries(d, "Attached Videos", "Attached Voice Samples")...)

	for i, entry := range d.BailHistory {
		doc.History = append(doc.History, domain.HistoryEntry{
			Number: len(d.BailHistory) - i,
			Entry:  entry,
		})
	}
	return doc
}

// mediaGalleries emits one gallery per non-empty collection, videos before
// audio. Empty collections render nothing.
func mediaGalleries(d domain.Dossier, videoTitle, audioTitle string) []domain.Gallery {
	var out []domain.Gallery
	if len(d.Videos) > 0 {
		out = append(out, domain.Gallery{
			Title: videoTitle,
			Kind:  domain.MediaVideo,
			Items: append([]string{}, d.Videos...),
		})
	}
	if len(d.Audio) > 0 {
		out = append(out, domain.Gallery{
			Title: audioTitle,
			Kind:  domain.MediaAudio,
			Items: append([]string{}, d.Audio...),
		})
	}
	return out
}
