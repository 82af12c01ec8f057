package terminal

import (
	"io"
	"os"

	"github.com/de-tools/dossier-desk/pkg/runtime/terminal/commands"
	"github.com/de-tools/dossier-desk/pkg/runtime/terminal/export"

	docexport "github.com/de-tools/dossier-desk/pkg/services/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	engine   docexport.Engine
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Engine docexport.Engine
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Engine == nil {
		opts.Engine = docexport.NewRodEngine()
	}

	cli := &CLI{
		engine:   opts.Engine,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dossier",
		Short: "Dossier inspection and export tool",
	}

	cmd.AddCommand(commands.NewInspectCmd(cli.reporter))
	cmd.AddCommand(commands.NewDocumentCmd())
	cmd.AddCommand(commands.NewExportCmd(cli.engine))

	return cmd
}
