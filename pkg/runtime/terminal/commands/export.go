package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	docexport "github.com/de-tools/dossier-desk/pkg/services/export"
	"github.com/de-tools/dossier-desk/pkg/services/htmlrender"
	"github.com/de-tools/dossier-desk/pkg/services/layout"
	"github.com/de-tools/dossier-desk/pkg/store/snapshot"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	format string
	out    string
	engine docexport.Engine
}

func NewExportCmd(engine docexport.Engine) *cobra.Command {
	ec := &ExportCmd{engine: engine}
	cmd := &cobra.Command{
		Use:   "export <snapshot>",
		Short: "Export a saved dossier to PDF or Word",
		Args:  cobra.ExactArgs(1),
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.format, "format", "pdf", "Output format: pdf or doc")
	cmd.Flags().StringVar(&ec.out, "out", "", "Output path (defaults to a name derived from the dossier)")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	state, err := snapshot.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load snapshot %s: %w", args[0], err)
	}

	html, err := htmlrender.NewRenderer().RenderString(layout.Render(state))
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	var data []byte
	switch strings.ToLower(ec.format) {
	case "pdf":
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()
		data, err = ec.engine.PrintPDF(ctx, html)
		if err != nil {
			return fmt.Errorf("failed to print pdf: %w", err)
		}
	case "doc":
		var buf bytes.Buffer
		if err := docexport.PackageWord(&buf, html); err != nil {
			return fmt.Errorf("failed to package word document: %w", err)
		}
		data = buf.Bytes()
	default:
		return fmt.Errorf("unsupported format %q, expected pdf or doc", ec.format)
	}

	out := ec.out
	if out == "" {
		out = docexport.FileName(state, docexport.Kind(strings.ToLower(ec.format)))
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", out, len(data))
	return nil
}
