package audit

import (
	"context"
	"fmt"

	"github.com/de-tools/tag-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Runner orchestrates one audit run: authenticate, list, evaluate.
type Runner struct {
	source   ResourceSource
	required []string
}

func NewRunner(source ResourceSource, required []string) *Runner {
	if len(required) == 0 {
		required = domain.DefaultRequiredTags()
	}
	return &Runner{source: source, required: required}
}

func (r *Runner) RequiredTags() []string {
	return append([]string{}, r.required...)
}

// Run authenticates the source, lists resources once (no retries) and
// evaluates every record in source order. Collaborator failures come back as
// ErrAuthentication or ErrRetrieval with the cause wrapped; an empty result
// with a nil error means the scope genuinely contained nothing.
func (r *Runner) Run(ctx context.Context, scope string) ([]domain.AuditResult, error) {
	logger := zerolog.Ctx(ctx)

	if err := r.source.Authenticate(ctx); err != nil {
		logger.Error().Err(err).Msg("authentication failed")
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	logger.Info().Msg("authentication successful")

	if scope != "" {
		logger.Info().Str("scope", scope).Msg("scanning resources in scope")
	} else {
		logger.Info().Msg("scanning all resources")
	}

	records, err := r.source.ListResources(ctx, scope)
	if err != nil {
		logger.Error().Err(err).Msg("error retrieving resources")
		return nil, fmt.Errorf("%w: %w", ErrRetrieval, err)
	}
	logger.Info().Int("count", len(records)).Msg("resources found to audit")

	results := make([]domain.AuditResult, 0, len(records))
	for _, rec := range records {
		results = append(results, Evaluate(rec, r.required))
	}
	return results, nil
}
