package commands

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/dossier-desk/pkg/adapters"
	"github.com/de-tools/dossier-desk/pkg/services/layout"
	"github.com/de-tools/dossier-desk/pkg/store/snapshot"
	"github.com/spf13/cobra"
)

type DocumentCmd struct{}

func NewDocumentCmd() *cobra.Command {
	dc := &DocumentCmd{}
	cmd := &cobra.Command{
		Use:   "document <snapshot>",
		Short: "Dump the derived document tree as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  dc.run,
	}
	return cmd
}

func (dc *DocumentCmd) run(cmd *cobra.Command, args []string) error {
	state, err := snapshot.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load snapshot %s: %w", args[0], err)
	}

	doc := adapters.MapDocumentDomainToApi(layout.Render(state))
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
