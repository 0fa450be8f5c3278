package domain

// DefaultRequiredTags returns the governance tag keys every resource is
// expected to carry, in report order.
func DefaultRequiredTags() []string {
	return []string{"environment", "owner", "project"}
}

// ResourceRecord is a single cloud resource as reported by a resource source.
type ResourceRecord struct {
	Name     string
	Type     string
	ID       string
	Location string
	Tags     map[string]string
}

// AuditResult is the compliance evaluation of one resource record.
type AuditResult struct {
	ResourceName         string
	ResourceType         string
	ResourceGroup        string
	Location             string
	Tags                 map[string]string
	MissingTags          []string
	Compliant            bool
	CompliancePercentage int
}

// Summary aggregates the results of a full audit run.
type Summary struct {
	AuditTimestamp        string
	TotalResources        int
	CompliantResources    int
	NonCompliantResources int
	ComplianceRate        float64
	RequiredTags          []string
}
