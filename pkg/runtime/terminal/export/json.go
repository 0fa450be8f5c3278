package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/de-tools/tag-atlas/pkg/models/api"
)

// JSONReporter emits the report as a single pretty-printed object with
// "summary" and "results" keys.
type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	return &JSONReporter{writer: writer}
}

func (r *JSONReporter) Handle(report *api.AuditReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')

	if _, err := r.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
