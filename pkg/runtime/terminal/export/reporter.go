package export

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/de-tools/tag-atlas/pkg/models/api"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatText = "text"
)

// Reporter renders an audit report to its output sink. Implementations are
// deterministic for identical inputs; the timestamp is already embedded in
// the summary.
type Reporter interface {
	Handle(report *api.AuditReport) error
}

// NewReporter returns the reporter for the given output format. An unknown
// format is a configuration error; callers check it before any retrieval
// work starts.
func NewReporter(format string, writer io.Writer) (Reporter, error) {
	if writer == nil {
		writer = os.Stdout
	}
	switch format {
	case FormatJSON:
		return NewJSONReporter(writer), nil
	case FormatCSV:
		return NewCSVReporter(writer), nil
	case FormatText, "":
		return NewTextReporter(writer), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// formatRate renders a compliance rate the same way encoding/json renders the
// float, so CSV comments, the text report and JSON output agree.
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
