package commands

import (
	"fmt"

	"github.com/de-tools/dossier-desk/pkg/runtime/terminal/export"
	"github.com/de-tools/dossier-desk/pkg/services/layout"
	"github.com/de-tools/dossier-desk/pkg/store/snapshot"
	"github.com/spf13/cobra"
)

type InspectCmd struct {
	reporter *export.Reporter
}

func NewInspectCmd(reporter *export.Reporter) *cobra.Command {
	ic := &InspectCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "Print a saved dossier as a text table",
		Args:  cobra.ExactArgs(1),
		RunE:  ic.run,
	}
	return cmd
}

func (ic *InspectCmd) run(_ *cobra.Command, args []string) error {
	state, err := snapshot.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load snapshot %s: %w", args[0], err)
	}

	doc := layout.Render(state)
	return ic.reporter.Handle(&doc)
}
