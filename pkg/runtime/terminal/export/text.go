package export

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/de-tools/tag-atlas/pkg/models/api"
)

const bannerWidth = 80

// TextReporter renders the banner-delimited human-readable report.
type TextReporter struct {
	writer io.Writer
}

func NewTextReporter(writer io.Writer) *TextReporter {
	return &TextReporter{writer: writer}
}

func (r *TextReporter) Handle(report *api.AuditReport) error {
	funcMap := template.FuncMap{
		"banner": func() string {
			return strings.Repeat("=", bannerWidth)
		},
		"divider": func() string {
			return strings.Repeat("-", bannerWidth)
		},
		"join": func(items []string) string {
			return strings.Join(items, ", ")
		},
		"rate": formatRate,
	}

	tmpl := `{{banner}}
CLOUD RESOURCE TAG COMPLIANCE AUDIT REPORT
{{banner}}

Audit Timestamp: {{.Summary.AuditTimestamp}}
Required Tags: {{join .Summary.RequiredTags}}

Summary:
  Total Resources: {{.Summary.TotalResources}}
  Compliant: {{.Summary.CompliantResources}}
  Non-Compliant: {{.Summary.NonCompliantResources}}
  Compliance Rate: {{rate .Summary.ComplianceRate}}%

{{banner}}
{{if gt .Summary.NonCompliantResources 0}}
NON-COMPLIANT RESOURCES:
{{divider}}
{{range .Results}}{{if not .Compliant}}
Resource: {{.ResourceName}}
  Type: {{.ResourceType}}
  Resource Group: {{.ResourceGroup}}
  Missing Tags: {{join .MissingTags}}
  Compliance: {{.CompliancePercentage}}%
{{end}}{{end}}{{end}}
{{banner}}
Audit complete. {{rate .Summary.ComplianceRate}}% compliant.
{{banner}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, report)
}
