package audit

import (
	"strings"

	"github.com/de-tools/tag-atlas/pkg/models/domain"
)

// resourceGroupSegment is the index of the owning group in a /-delimited
// resource ID, e.g. /subscriptions/{sub}/resourceGroups/{rg}/providers/...
const resourceGroupSegment = 4

// Evaluate checks a single resource record against the required tag keys and
// returns its compliance result. The record is not mutated; tag lookup is
// case-sensitive. A nil tag map counts as empty.
func Evaluate(rec domain.ResourceRecord, required []string) domain.AuditResult {
	tags := make(map[string]string, len(rec.Tags))
	for k, v := range rec.Tags {
		tags[k] = v
	}

	missing := make([]string, 0, len(required))
	for _, tag := range required {
		if _, ok := tags[tag]; !ok {
			missing = append(missing, tag)
		}
	}

	percentage := 100
	if len(required) > 0 {
		percentage = int(float64(len(required)-len(missing)) / float64(len(required)) * 100)
	}

	return domain.AuditResult{
		ResourceName:         rec.Name,
		ResourceType:         rec.Type,
		ResourceGroup:        resourceGroupFromID(rec.ID),
		Location:             rec.Location,
		Tags:                 tags,
		MissingTags:          missing,
		Compliant:            len(missing) == 0,
		CompliancePercentage: percentage,
	}
}

func resourceGroupFromID(id string) string {
	parts := strings.Split(id, "/")
	if len(parts) <= resourceGroupSegment {
		return "unknown"
	}
	return parts[resourceGroupSegment]
}
