package audit

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/de-tools/tag-atlas/pkg/adapters"
	"github.com/de-tools/tag-atlas/pkg/models/domain"
	auditsvc "github.com/de-tools/tag-atlas/pkg/services/audit"
	"github.com/rs/zerolog"
)

// Auditor is the slice of the audit runner the handler needs.
type Auditor interface {
	Run(ctx context.Context, scope string) ([]domain.AuditResult, error)
	RequiredTags() []string
}

type Handler struct {
	auditor Auditor
}

func NewHandler(auditor Auditor) *Handler {
	return &Handler{auditor: auditor}
}

// GetAuditReport runs an audit and returns the JSON report. Unlike the CLI,
// an empty scope is representable here: a report with zero counts.
func (h *Handler) GetAuditReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	scope := r.URL.Query().Get("resource_group")

	results, err := h.auditor.Run(ctx, scope)
	if err != nil {
		logger.Error().Err(err).Msg("audit run failed")
		writeError(w, http.StatusBadGateway, "audit run failed")
		return
	}

	summary := auditsvc.Summarize(results, h.auditor.RequiredTags(), time.Now().UTC())
	report := adapters.MapAuditReportDomainToApi(results, summary)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode audit report")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
