package terminal

import (
	"io"
	"os"

	"github.com/de-tools/tag-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/tag-atlas/pkg/services/source"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry source.Registry
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry source.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag-atlas",
		Short: "Cloud resource tag compliance auditor",
		// The caller maps errors to exit codes and handles printing.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(commands.NewAuditCmd(cli.registry, cli.output))
	cmd.AddCommand(commands.NewProvidersCmd(cli.registry))

	return cmd
}
