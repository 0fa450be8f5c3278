package adapters

import (
	"testing"

	"github.com/de-tools/tag-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAuditReportDomainToApi(t *testing.T) {
	results := []domain.AuditResult{
		{
			ResourceName:         "vm1",
			ResourceType:         "Microsoft.Compute/virtualMachines",
			ResourceGroup:        "rg1",
			Location:             "eastus",
			Tags:                 map[string]string{"environment": "prod"},
			MissingTags:          []string{"owner", "project"},
			Compliant:            false,
			CompliancePercentage: 33,
		},
	}
	summary := domain.Summary{
		AuditTimestamp:        "2025-06-15T12:30:00Z",
		TotalResources:        1,
		NonCompliantResources: 1,
		RequiredTags:          []string{"environment", "owner", "project"},
	}

	report := MapAuditReportDomainToApi(results, summary)

	require.Len(t, report.Results, 1)
	assert.Equal(t, "vm1", report.Results[0].ResourceName)
	assert.Equal(t, []string{"owner", "project"}, report.Results[0].MissingTags)
	assert.Equal(t, summary.AuditTimestamp, report.Summary.AuditTimestamp)

	t.Run("copies are independent of domain values", func(t *testing.T) {
		report.Results[0].Tags["injected"] = "value"
		report.Summary.RequiredTags[0] = "changed"

		assert.Equal(t, map[string]string{"environment": "prod"}, results[0].Tags)
		assert.Equal(t, "environment", summary.RequiredTags[0])
	})

	t.Run("nil missing tags become empty slice", func(t *testing.T) {
		mapped := MapAuditResultDomainToApi(domain.AuditResult{Compliant: true})

		assert.NotNil(t, mapped.MissingTags)
		assert.Empty(t, mapped.MissingTags)
	})
}
