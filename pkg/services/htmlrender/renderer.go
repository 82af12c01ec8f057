// Package htmlrender turns a document tree into the fixed tabular HTML
// layout consumed by the preview endpoint and the export collaborators.
package htmlrender

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/de-tools/dossier-desk/pkg/models/domain"
)

// Renderer writes documents as standalone HTML pages.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the document template.
func NewRenderer() *Renderer {
	tmpl := template.Must(template.New("document").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
		// Asset handles are data URIs; html/template would otherwise
		// neuter them in src attributes.
		"assetURL": func(s string) template.URL { return template.URL(s) },
	}).Parse(documentTemplate))
	return &Renderer{tmpl: tmpl}
}

// Render writes the document as HTML.
func (r *Renderer) Render(w io.Writer, doc domain.Document) error {
	view := buildView(doc)
	if err := r.tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return nil
}

// RenderString renders into memory, for the exporters.
func (r *Renderer) RenderString(doc domain.Document) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// documentView flattens the tree into rows and cells so the template stays
// free of numbering and row-span arithmetic.
type documentView struct {
	Title     string
	Rows      []tableRow
	Appendix  *domain.Appendix
	Galleries []domain.Gallery
	History   []domain.HistoryEntry
}

type tableRow struct {
	Avoid bool
	Cells []tableCell
}

type tableCell struct {
	Text    string
	Class   string
	RowSpan int
	ColSpan int
	Photos  []domain.PhotoBox
}

func buildView(doc domain.Document) documentView {
	view := documentView{
		Title:     doc.Title,
		Appendix:  doc.Appendix,
		Galleries: doc.Galleries,
		History:   doc.History,
	}
	for _, sec := range doc.Sections {
		view.Rows = append(view.Rows, sectionRows(sec, doc.PhotoPanel)...)
	}
	return view
}

func sectionRows(sec domain.SectionBlock, panel []domain.PhotoBox) []tableRow {
	num := tableCell{Text: fmt.Sprintf("%d", sec.Number), Class: "num"}

	if !sec.Group {
		row := tableRow{Avoid: sec.AvoidBreak, Cells: []tableCell{
			num,
			{Text: sec.Label, Class: "label"},
			{Text: sec.Value, Class: "val"},
		}}
		// The photo panel spans the first ten rows of the standard table.
		if sec.Number == 1 && len(panel) > 0 {
			row.Cells = append(row.Cells, tableCell{Class: "photos", RowSpan: 10, Photos: panel})
		}
		return []tableRow{row}
	}

	var rows []tableRow
	if sec.HeaderRow {
		num.RowSpan = len(sec.Rows) + 1
		rows = append(rows, tableRow{Avoid: sec.AvoidBreak, Cells: []tableCell{
			num,
			{Text: sec.Label, Class: "head", ColSpan: 2},
		}})
	} else {
		num.RowSpan = len(sec.Rows)
	}
	for i, sub := range sec.Rows {
		cells := []tableCell{}
		if !sec.HeaderRow && i == 0 {
			cells = append(cells, num)
		}
		cells = append(cells,
			tableCell{Text: sub.Label, Class: "sub"},
			tableCell{Text: sub.Value, Class: "val"},
		)
		rows = append(rows, tableRow{Avoid: sec.AvoidBreak, Cells: cells})
	}
	return rows
}

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; color: #000; margin: 12mm; }
.title { text-align: center; font-weight: bold; font-size: 18pt; text-decoration: underline double; text-transform: uppercase; margin-bottom: 16px; }
table { width: 100%; border-collapse: collapse; border: 2px solid #000; font-size: 9pt; }
td { border: 1px solid #000; padding: 4px; vertical-align: top; white-space: pre-wrap; }
td.num { width: 28px; text-align: center; font-weight: bold; }
td.label { width: 180px; font-weight: bold; background: #f5f5f5; }
td.head { font-weight: bold; background: #eef2fa; text-transform: uppercase; }
td.sub { font-style: italic; background: #f5f5f5; padding-left: 16px; }
td.photos { width: 150px; background: #f5f5f5; text-align: center; }
.photo-box { border: 1px solid #000; margin-bottom: 4px; min-height: 110px; }
.photo-box img { max-width: 100%; }
.photo-label { font-size: 7pt; font-weight: bold; text-transform: uppercase; }
.annex { margin-top: 24px; border-top: 4px solid #000; padding-top: 12px; }
.annex h3, .gallery h3, .history h3 { text-decoration: underline; text-transform: uppercase; }
.annex-text { font-size: 9pt; white-space: pre-wrap; border: 1px solid #ddd; background: #fafafa; padding: 8px; min-height: 80px; }
.exhibit { border: 2px solid #000; padding: 4px; margin: 8px 0; text-align: center; }
.exhibit img { max-width: 100%; max-height: 300px; }
.exhibit-label { font-size: 8pt; font-weight: bold; }
.gallery { margin-top: 24px; border-top: 2px dashed #999; padding-top: 12px; }
.gallery-item { border: 1px solid #ccc; background: #fafafa; padding: 8px; margin-bottom: 8px; }
.history { margin-top: 24px; border-top: 2px dashed #999; padding-top: 12px; }
.history-entry { border: 1px solid #ddd; background: #fafafa; padding: 8px; margin-bottom: 8px; font-size: 8pt; }
.history-head { display: flex; justify-content: space-between; font-weight: bold; border-bottom: 1px solid #ddd; margin-bottom: 4px; }
.page-break-avoid { page-break-inside: avoid; break-inside: avoid; }
</style>
</head>
<body>
<div class="title">{{.Title}}</div>
<table>
<tbody>
{{- range .Rows}}
<tr{{if .Avoid}} class="page-break-avoid"{{end}}>
{{- range .Cells}}
<td{{with .Class}} class="{{.}}"{{end}}{{if gt .RowSpan 1}} rowspan="{{.RowSpan}}"{{end}}{{if gt .ColSpan 1}} colspan="{{.ColSpan}}"{{end}}>
{{- if .Photos}}
{{- range .Photos}}
<div class="photo-box">{{if .Data}}<img src="{{assetURL .Data}}" alt="{{.Label}}">{{end}}<div class="photo-label">{{.Label}}</div></div>
{{- end}}
{{- else}}{{.Text}}{{end -}}
</td>
{{- end}}
</tr>
{{- end}}
</tbody>
</table>
{{- with .Appendix}}
<div class="annex page-break-avoid">
<h3>Appendix &amp; Supporting Material</h3>
<div class="annex-text">{{if .Text}}{{.Text}}{{else}}No additional appendix data provided.{{end}}</div>
{{- range $i, $url := .Exhibits}}
<div class="exhibit page-break-avoid"><img src="{{assetURL $url}}" alt="Exhibit {{inc $i}}"><div class="exhibit-label">EXHIBIT {{inc $i}}</div></div>
{{- end}}
</div>
{{- end}}
{{- range .Galleries}}
<div class="gallery">
<h3>{{.Title}}</h3>
{{- $kind := .Kind}}
{{- range $i, $url := .Items}}
<div class="gallery-item page-break-avoid">
{{- if eq $kind "photo"}}<img src="{{assetURL $url}}" alt="Photo {{inc $i}}"><div class="exhibit-label">VERIFICATION PHOTO {{inc $i}}</div>
{{- else if eq $kind "video"}}<video src="{{assetURL $url}}" controls></video><div class="exhibit-label">Video Sample {{inc $i}}</div>
{{- else}}<audio src="{{assetURL $url}}" controls></audio><div class="exhibit-label">Voice Sample {{inc $i}}</div>{{end}}
</div>
{{- end}}
</div>
{{- end}}
{{- if .History}}
<div class="history">
<h3>Bail Verification Log (Internal History)</h3>
{{- range .History}}
<div class="history-entry page-break-avoid">
<div class="history-head"><span>{{.Entry.Date}}</span><span>Log Entry #{{.Number}}</span></div>
<p><strong>Name:</strong> {{.Entry.Name}} <strong>GPS:</strong> {{.Entry.GPS}}</p>
<p><strong>Living At:</strong> {{.Entry.Living}} <strong>Occupation:</strong> {{.Entry.Occupation}}</p>
<p><strong>Activity:</strong> {{.Entry.Activity}} <strong>Income:</strong> {{.Entry.Income}}</p>
<p><strong>Other:</strong> {{.Entry.Other}}</p>
<p><strong>Verifier:</strong> {{.Entry.Verifier}}</p>
</div>
{{- end}}
</div>
{{- end}}
</body>
</html>
`
