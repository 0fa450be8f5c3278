package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/de-tools/tag-atlas/pkg/runtime/terminal"
	"github.com/de-tools/tag-atlas/pkg/services/audit"
	"github.com/de-tools/tag-atlas/pkg/services/source"
	"github.com/de-tools/tag-atlas/pkg/services/source/aws"
	"github.com/de-tools/tag-atlas/pkg/services/source/azure"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: source.NewRegistry(map[string]source.Factory{
			"azure": azure.SourceFactory,
			"aws":   aws.SourceFactory,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		// Non-compliance was already reported on stdout; everything else
		// gets a diagnostic on stderr. Both exit non-zero.
		if !errors.Is(err, audit.ErrNonCompliant) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
