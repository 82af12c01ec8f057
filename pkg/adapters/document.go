package adapters

import (
	"github.com/de-tools/dossier-desk/pkg/models/api"
	"github.com/de-tools/dossier-desk/pkg/models/domain"
	"github.com/de-tools/dossier-desk/pkg/services/schema"
)

func MapDocumentDomainToApi(doc domain.Document) api.Document {
	out := api.Document{
		Title:    doc.Title,
		Sections: []api.SectionBlock{},
	}
	for _, box := range doc.PhotoPanel {
		out.PhotoPanel = append(out.PhotoPanel, api.PhotoBox(box))
	}
	for _, sec := range doc.Sections {
		out.Sections = append(out.Sections, mapSectionBlock(sec))
	}
	if doc.Appendix != nil {
		out.Appendix = &api.Appendix{
			Text:     doc.Appendix.Text,
			Exhibits: cloneList(doc.Appendix.Exhibits),
		}
	}
	for _, g := range doc.Galleries {
		out.Galleries = append(out.Galleries, api.Gallery{
			Title: g.Title,
			Kind:  string(g.Kind),
			Items: cloneList(g.Items),
		})
	}
	for _, h := range doc.History {
		out.History = append(out.History, api.HistoryEntry{
			Number: h.Number,
			Entry:  api.BailEntry(h.Entry),
		})
	}
	return out
}

func mapSectionBlock(sec domain.SectionBlock) api.SectionBlock {
	out := api.SectionBlock{
		Number:     sec.Number,
		Label:      sec.Label,
		Group:      sec.Group,
		HeaderRow:  sec.HeaderRow,
		Value:      sec.Value,
		AvoidBreak: sec.AvoidBreak,
	}
	for _, row := range sec.Rows {
		out.Rows = append(out.Rows, api.SubRow(row))
	}
	return out
}

func MapSchemaSectionToApi(sec schema.Section) api.SchemaSection {
	out := api.SchemaSection{
		Number:    sec.Number,
		Label:     sec.Label,
		Kind:      string(sec.Kind),
		HeaderRow: sec.HeaderRow,
		Key:       sec.Key,
	}
	for _, sub := range sec.Subs {
		out.Subs = append(out.Subs, api.SchemaSubField(sub))
	}
	return out
}
