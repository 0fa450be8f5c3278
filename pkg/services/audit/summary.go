package audit

import (
	"math"
	"time"

	"github.com/de-tools/tag-atlas/pkg/models/domain"
)

// Summarize reduces a full result set to aggregate statistics. The timestamp
// is taken from now, so callers pass the moment of summarization; the rate is
// rounded to two decimals and is 0 for an empty result set.
func Summarize(results []domain.AuditResult, required []string, now time.Time) domain.Summary {
	total := len(results)
	compliant := 0
	for _, r := range results {
		if r.Compliant {
			compliant++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(compliant)/float64(total)*100*100) / 100
	}

	return domain.Summary{
		AuditTimestamp:        now.UTC().Format(time.RFC3339),
		TotalResources:        total,
		CompliantResources:    compliant,
		NonCompliantResources: total - compliant,
		ComplianceRate:        rate,
		RequiredTags:          append([]string{}, required...),
	}
}
