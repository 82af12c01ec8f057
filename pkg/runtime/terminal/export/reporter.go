package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/dossier-desk/pkg/models/domain"
)

type TableConfig struct {
	NumberWidth int
	LabelWidth  int
	ValueWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NumberWidth: 4,
		LabelWidth:  48,
		ValueWidth:  60,
	}
}

// Reporter prints a document tree as a plain-text table for terminal review.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(doc *domain.Document) error {
	funcMap := template.FuncMap{
		"formatRow": func(number interface{}, label, value string) string {
			return fmt.Sprintf("| %-*v | %-*s | %-*s |",
				c.config.NumberWidth, number,
				c.config.LabelWidth, truncate(label, c.config.LabelWidth),
				c.config.ValueWidth, truncate(value, c.config.ValueWidth))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.NumberWidth+2),
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
	}

	tmpl := `
{{.Title}}

{{separator}}
{{formatRow "No." "Field" "Value"}}
{{separator}}
{{range .Sections}}{{if .Group}}{{formatRow .Number .Label ""}}
{{range .Rows}}{{formatRow "" .Label .Value}}
{{end}}{{else}}{{formatRow .Number .Label .Value}}
{{end}}{{end}}{{separator}}
{{if .History}}
Verification log:
{{range .History}}  #{{.Number}} {{.Entry.Date}} {{.Entry.Name}} {{.Entry.GPS}}
{{end}}{{end}}`

	t, err := template.New("document").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, doc)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
