package api

// AuditResult is the wire form of a single resource evaluation. Field names
// are a stable contract for downstream consumers.
type AuditResult struct {
	ResourceName         string            `json:"resource_name"`
	ResourceType         string            `json:"resource_type"`
	ResourceGroup        string            `json:"resource_group"`
	Location             string            `json:"location"`
	Tags                 map[string]string `json:"tags"`
	MissingTags          []string          `json:"missing_tags"`
	Compliant            bool              `json:"compliant"`
	CompliancePercentage int               `json:"compliance_percentage"`
}

type Summary struct {
	AuditTimestamp        string   `json:"audit_timestamp"`
	TotalResources        int      `json:"total_resources"`
	CompliantResources    int      `json:"compliant_resources"`
	NonCompliantResources int      `json:"non_compliant_resources"`
	ComplianceRate        float64  `json:"compliance_rate"`
	RequiredTags          []string `json:"required_tags"`
}

type AuditReport struct {
	Summary Summary       `json:"summary"`
	Results []AuditResult `json:"results"`
}
