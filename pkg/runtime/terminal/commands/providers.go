package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/tag-atlas/pkg/services/source"
	"github.com/spf13/cobra"
)

type ProvidersCmd struct {
	registry source.Registry
}

func NewProvidersCmd(registry source.Registry) *cobra.Command {
	pc := &ProvidersCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List supported cloud providers",
		RunE:  pc.run,
	}
	return cmd
}

func (pc *ProvidersCmd) run(cmd *cobra.Command, args []string) error {
	providers := pc.registry.ListProviders()
	if len(providers) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No providers registered")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Supported providers:\n%s\n",
		strings.Join(providers, "\n"))
	return nil
}
