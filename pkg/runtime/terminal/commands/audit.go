package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/de-tools/tag-atlas/pkg/adapters"
	"github.com/de-tools/tag-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/tag-atlas/pkg/services/audit"
	"github.com/de-tools/tag-atlas/pkg/services/config"
	"github.com/de-tools/tag-atlas/pkg/services/source"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type AuditCmd struct {
	subscriptionID string
	resourceGroup  string
	outputFormat   string
	provider       string
	region         string
	configPath     string
	registry       source.Registry
	output         io.Writer
}

func NewAuditCmd(registry source.Registry, output io.Writer) *cobra.Command {
	ac := &AuditCmd{registry: registry, output: output}
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit cloud resources for required governance tags",
		RunE:  ac.run,
	}

	// Define flags
	cmd.Flags().StringVar(&ac.subscriptionID, "subscription-id", "", "Azure subscription ID")
	cmd.Flags().StringVar(&ac.resourceGroup, "resource-group", "", "Optional: resource group to scope the audit (default: all resources)")
	cmd.Flags().StringVar(&ac.outputFormat, "output-format", export.FormatText, "Output format (json|csv|text)")
	cmd.Flags().StringVar(&ac.provider, "provider", "azure", "Cloud provider to audit (azure|aws)")
	cmd.Flags().StringVar(&ac.region, "region", "", "AWS region to audit (aws provider only)")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to an audit settings file")

	_ = cmd.MarkFlagRequired("subscription-id")

	return cmd
}

func (ac *AuditCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	settings, err := config.LoadAuditSettings(ac.configPath)
	if err != nil {
		return fmt.Errorf("failed to load audit settings: %w", err)
	}

	// Validate the output format before any retrieval work.
	reporter, err := export.NewReporter(ac.outputFormat, ac.output)
	if err != nil {
		return err
	}

	src, err := ac.registry.Create(ctx, ac.provider, source.Config{
		SubscriptionID: ac.subscriptionID,
		Region:         ac.region,
	})
	if err != nil {
		return fmt.Errorf("failed to create a source for provider %q: %w", ac.provider, err)
	}

	runner := audit.NewRunner(src, settings.RequiredTags)
	results, err := runner.Run(ctx, ac.resourceGroup)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		logger.Error().Msg("audit failed or no resources found")
		return audit.ErrNoResources
	}

	summary := audit.Summarize(results, settings.RequiredTags, time.Now().UTC())
	report := adapters.MapAuditReportDomainToApi(results, summary)

	if err := reporter.Handle(report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if summary.ComplianceRate < 100 {
		return audit.ErrNonCompliant
	}
	return nil
}
