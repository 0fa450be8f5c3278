package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/de-tools/tag-atlas/pkg/models/domain"
	"github.com/de-tools/tag-atlas/pkg/services/audit"
	"github.com/de-tools/tag-atlas/pkg/services/source"
)

// Source lists Azure resources through the ARM resources API.
type Source struct {
	subscriptionID string
	cred           azcore.TokenCredential
	client         *armresources.Client
	groupsClient   *armresources.ResourceGroupsClient
}

// SourceFactory builds an Azure source for the registry.
func SourceFactory(_ context.Context, cfg source.Config) (audit.ResourceSource, error) {
	if cfg.SubscriptionID == "" {
		return nil, fmt.Errorf("subscription ID is required for the azure provider")
	}
	return NewSource(cfg.SubscriptionID)
}

// NewSource creates a source backed by the default Azure credential chain
// (environment variables, managed identity, Azure CLI).
func NewSource(subscriptionID string) (*Source, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	client, err := armresources.NewClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure resource client: %w", err)
	}

	groupsClient, err := armresources.NewResourceGroupsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure resource groups client: %w", err)
	}

	return &Source{
		subscriptionID: subscriptionID,
		cred:           cred,
		client:         client,
		groupsClient:   groupsClient,
	}, nil
}

// Authenticate probes the management plane by fetching one page of resource
// groups; credential problems surface here rather than mid-listing.
func (s *Source) Authenticate(ctx context.Context) error {
	pager := s.groupsClient.NewListPager(nil)
	if pager.More() {
		if _, err := pager.NextPage(ctx); err != nil {
			return fmt.Errorf("failed to list resource groups: %w", err)
		}
	}
	return nil
}

// ListResources drains every page for the subscription, or for a single
// resource group when scope is set.
func (s *Source) ListResources(ctx context.Context, scope string) ([]domain.ResourceRecord, error) {
	var records []domain.ResourceRecord

	if scope != "" {
		pager := s.client.NewListByResourceGroupPager(scope, nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to list resources in resource group %s: %w", scope, err)
			}
			for _, res := range page.Value {
				records = append(records, recordFromResource(res))
			}
		}
		return records, nil
	}

	pager := s.client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list resources in subscription: %w", err)
		}
		for _, res := range page.Value {
			records = append(records, recordFromResource(res))
		}
	}
	return records, nil
}

func recordFromResource(res *armresources.GenericResourceExpanded) domain.ResourceRecord {
	var rec domain.ResourceRecord
	if res.Name != nil {
		rec.Name = *res.Name
	}
	if res.Type != nil {
		rec.Type = *res.Type
	}
	if res.ID != nil {
		rec.ID = *res.ID
	}
	if res.Location != nil {
		rec.Location = *res.Location
	}
	if res.Tags != nil {
		rec.Tags = make(map[string]string, len(res.Tags))
		for k, v := range res.Tags {
			if v != nil {
				rec.Tags[k] = *v
			}
		}
	}
	return rec
}
