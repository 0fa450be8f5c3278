package audit

import (
	"context"

	"github.com/de-tools/tag-atlas/pkg/models/domain"
)

// ResourceSource supplies the resource records for an audit run. A scope
// restricts listing to a named subgroup (an Azure resource group, a tag-based
// group on AWS); the empty scope means everything the source can see.
// Pagination and retry policy belong to the source, not the caller.
type ResourceSource interface {
	Authenticate(ctx context.Context) error
	ListResources(ctx context.Context, scope string) ([]domain.ResourceRecord, error)
}
