package adapters

import (
	"github.com/de-tools/tag-atlas/pkg/models/api"
	"github.com/de-tools/tag-atlas/pkg/models/domain"
)

func MapAuditResultDomainToApi(r domain.AuditResult) api.AuditResult {
	res := api.AuditResult{
		ResourceName:         r.ResourceName,
		ResourceType:         r.ResourceType,
		ResourceGroup:        r.ResourceGroup,
		Location:             r.Location,
		Tags:                 map[string]string{},
		MissingTags:          make([]string, 0, len(r.MissingTags)),
		Compliant:            r.Compliant,
		CompliancePercentage: r.CompliancePercentage,
	}
	// copy tags as-is
	for k, v := range r.Tags {
		res.Tags[k] = v
	}
	res.MissingTags = append(res.MissingTags, r.MissingTags...)
	return res
}

func MapSummaryDomainToApi(s domain.Summary) api.Summary {
	return api.Summary{
		AuditTimestamp:        s.AuditTimestamp,
		TotalResources:        s.TotalResources,
		CompliantResources:    s.CompliantResources,
		NonCompliantResources: s.NonCompliantResources,
		ComplianceRate:        s.ComplianceRate,
		RequiredTags:          append([]string{}, s.RequiredTags...),
	}
}

func MapAuditReportDomainToApi(results []domain.AuditResult, summary domain.Summary) *api.AuditReport {
	report := &api.AuditReport{
		Summary: MapSummaryDomainToApi(summary),
		Results: make([]api.AuditResult, 0, len(results)),
	}
	for _, r := range results {
		report.Results = append(report.Results, MapAuditResultDomainToApi(r))
	}
	return report
}
