package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/de-tools/tag-atlas/pkg/services/audit"
)

// Config carries the provider-specific knobs a factory may need.
type Config struct {
	// SubscriptionID is the Azure subscription to audit.
	SubscriptionID string
	// Region is the AWS region to audit.
	Region string
}

// Factory is a function type that creates a ResourceSource from a config
type Factory func(ctx context.Context, cfg Config) (audit.ResourceSource, error)

// Registry manages provider source factories
type Registry interface {
	// Register adds a new provider source factory
	Register(provider string, factory Factory) error
	// Create instantiates a source for the specified provider using the provided config
	Create(ctx context.Context, provider string, cfg Config) (audit.ResourceSource, error)
	// ListProviders returns a list of registered providers
	ListProviders() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new source registry pre-populated with factories
func NewRegistry(factories map[string]Factory) Registry {
	r := &registry{factories: make(map[string]Factory)}
	for provider, factory := range factories {
		_ = r.Register(provider, factory)
	}
	return r
}

func (r *registry) Register(provider string, factory Factory) error {
	if provider == "" {
		return fmt.Errorf("provider name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[provider]; exists {
		return fmt.Errorf("provider %q is already registered", provider)
	}

	r.factories[provider] = factory
	return nil
}

func (r *registry) Create(ctx context.Context, provider string, cfg Config) (audit.ResourceSource, error) {
	r.mu.RLock()
	factory, exists := r.factories[provider]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("provider %q is not registered", provider)
	}

	return factory(ctx, cfg)
}

func (r *registry) ListProviders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for provider := range r.factories {
		providers = append(providers, provider)
	}
	return providers
}
