package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/de-tools/tag-atlas/pkg/models/api"
)

// CSVReporter emits five #-prefixed summary comment lines, a blank line, a
// header row and one data row per result in input order. The compliant column
// uses strconv.FormatBool, so it reads true/false.
type CSVReporter struct {
	writer io.Writer
}

func NewCSVReporter(writer io.Writer) *CSVReporter {
	return &CSVReporter{writer: writer}
}

func (r *CSVReporter) Handle(report *api.AuditReport) error {
	s := report.Summary
	_, err := fmt.Fprintf(r.writer,
		"# Audit Timestamp: %s\n# Total Resources: %d\n# Compliant: %d\n# Non-Compliant: %d\n# Compliance Rate: %s%%\n\n",
		s.AuditTimestamp, s.TotalResources, s.CompliantResources, s.NonCompliantResources, formatRate(s.ComplianceRate))
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	w := csv.NewWriter(r.writer)
	header := []string{
		"resource_name", "resource_type", "resource_group", "location",
		"compliant", "compliance_percentage", "missing_tags",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, res := range report.Results {
		missing := "none"
		if len(res.MissingTags) > 0 {
			missing = strings.Join(res.MissingTags, ", ")
		}
		row := []string{
			res.ResourceName,
			res.ResourceType,
			res.ResourceGroup,
			res.Location,
			strconv.FormatBool(res.Compliant),
			strconv.Itoa(res.CompliancePercentage),
			missing,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
