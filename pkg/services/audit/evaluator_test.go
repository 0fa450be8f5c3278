package audit

import (
	"testing"

	"github.com/de-tools/tag-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	required := domain.DefaultRequiredTags()

	t.Run("all required tags missing", func(t *testing.T) {
		rec := domain.ResourceRecord{
			Name:     "stor1",
			Type:     "Microsoft.Storage/storageAccounts",
			ID:       "/subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.Storage/storageAccounts/stor1",
			Location: "westeurope",
		}

		result := Evaluate(rec, required)

		assert.False(t, result.Compliant)
		assert.Equal(t, 0, result.CompliancePercentage)
		assert.Equal(t, []string{"environment", "owner", "project"}, result.MissingTags)
		assert.Equal(t, map[string]string{}, result.Tags)
	})

	t.Run("all required tags present", func(t *testing.T) {
		rec := domain.ResourceRecord{
			Name:     "vm2",
			Type:     "Microsoft.Compute/virtualMachines",
			ID:       "/subscriptions/sub1/resourceGroups/rg2/providers/Microsoft.Compute/virtualMachines/vm2",
			Location: "eastus",
			Tags: map[string]string{
				"environment": "dev",
				"owner":       "platform",
				"project":     "atlas",
				"extra":       "ignored",
			},
		}

		result := Evaluate(rec, required)

		assert.True(t, result.Compliant)
		assert.Equal(t, 100, result.CompliancePercentage)
		assert.Empty(t, result.MissingTags)
		assert.Equal(t, "rg2", result.ResourceGroup)
	})

	t.Run("one required tag missing", func(t *testing.T) {
		rec := domain.ResourceRecord{
			Name: "vm3",
			ID:   "/subscriptions/sub1/resourceGroups/rg3/providers/Microsoft.Compute/virtualMachines/vm3",
			Tags: map[string]string{
				"environment": "prod",
				"owner":       "ops",
			},
		}

		result := Evaluate(rec, required)

		assert.False(t, result.Compliant)
		assert.Equal(t, 66, result.CompliancePercentage)
		assert.Equal(t, []string{"project"}, result.MissingTags)
	})

	t.Run("partially tagged virtual machine", func(t *testing.T) {
		rec := domain.ResourceRecord{
			Name:     "vm1",
			Type:     "Microsoft.Compute/virtualMachines",
			ID:       "/subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.Compute/virtualMachines/vm1",
			Location: "eastus",
			Tags:     map[string]string{"environment": "prod"},
		}

		result := Evaluate(rec, required)

		assert.Equal(t, "vm1", result.ResourceName)
		assert.Equal(t, "Microsoft.Compute/virtualMachines", result.ResourceType)
		assert.Equal(t, "rg1", result.ResourceGroup)
		assert.Equal(t, "eastus", result.Location)
		assert.Equal(t, []string{"owner", "project"}, result.MissingTags)
		assert.False(t, result.Compliant)
		assert.Equal(t, 33, result.CompliancePercentage)
	})

	t.Run("malformed resource id", func(t *testing.T) {
		rec := domain.ResourceRecord{Name: "i-0abc123", ID: "i-0abc123"}

		result := Evaluate(rec, required)

		assert.Equal(t, "unknown", result.ResourceGroup)
	})

	t.Run("id with too few segments", func(t *testing.T) {
		rec := domain.ResourceRecord{ID: "/subscriptions/sub1"}

		result := Evaluate(rec, required)

		assert.Equal(t, "unknown", result.ResourceGroup)
	})

	t.Run("missing tags keep required order", func(t *testing.T) {
		rec := domain.ResourceRecord{
			ID:   "/subscriptions/sub1/resourceGroups/rg1/providers/p/t/n",
			Tags: map[string]string{"owner": "ops"},
		}

		result := Evaluate(rec, required)

		assert.Equal(t, []string{"environment", "project"}, result.MissingTags)
		assert.Equal(t, len(required), len(result.MissingTags)+1)
	})

	t.Run("does not mutate the input record", func(t *testing.T) {
		tags := map[string]string{"environment": "prod"}
		rec := domain.ResourceRecord{Name: "vm1", ID: "x", Tags: tags}

		result := Evaluate(rec, required)
		result.Tags["injected"] = "value"

		assert.Equal(t, map[string]string{"environment": "prod"}, rec.Tags)
	})

	t.Run("empty required list", func(t *testing.T) {
		result := Evaluate(domain.ResourceRecord{Name: "vm1"}, nil)

		assert.True(t, result.Compliant)
		assert.Equal(t, 100, result.CompliancePercentage)
	})
}
