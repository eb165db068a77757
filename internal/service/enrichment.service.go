package service

import (
	"context"
	"fmt"
	"sankyaan/internal/db/models/postgres/public/model"
	"sankyaan/internal/db/models/postgres/public/table"
	"sankyaan/internal/domain"
	"sankyaan/internal/logger"
	"sankyaan/internal/pacer"
	"sankyaan/internal/repository"
	"sankyaan/pkg/morningstar"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/postgres"
)

// SchemeIdentityResolver maps an internal scheme code to a security
// identifier. Implemented by the mfapi client.
type SchemeIdentityResolver interface {
	ResolveISIN(ctx context.Context, schemeCode string) (string, error)
}

// FundAttributeResolver maps a security identifier to manager names and
// an optional inception date. Implemented by the morningstar client.
type FundAttributeResolver interface {
	GetFundAttributes(ctx context.Context, isin string) (*morningstar.FundAttributes, error)
}

type EnrichmentService interface {
	EnrichManagers(ctx context.Context) (*domain.EnrichmentReport, error)
}

type EnrichmentConfig struct {
	// FreshnessWindow is how long a stored manager name stays fresh.
	// Funds enriched more recently than this are skipped.
	FreshnessWindow time.Duration
	// LookupTimeout bounds each individual external call.
	LookupTimeout time.Duration
}

const (
	DefaultFreshnessWindow = 30 * 24 * time.Hour
	DefaultLookupTimeout   = 10 * time.Second
)

type enrichmentServiceHandler struct {
	FundScoreRepository repository.FundScoreRepository
	IdentityResolver    SchemeIdentityResolver
	AttributeResolver   FundAttributeResolver
	Pacer               pacer.Pacer
	FreshnessWindow     time.Duration
	LookupTimeout       time.Duration
}

func NewEnrichmentService(
	fundScoreRepository repository.FundScoreRepository,
	identityResolver SchemeIdentityResolver,
	attributeResolver FundAttributeResolver,
	p pacer.Pacer,
	config EnrichmentConfig,
) EnrichmentService {
	if config.FreshnessWindow == 0 {
		config.FreshnessWindow = DefaultFreshnessWindow
	}
	if config.LookupTimeout == 0 {
		config.LookupTimeout = DefaultLookupTimeout
	}
	return enrichmentServiceHandler{
		FundScoreRepository: fundScoreRepository,
		IdentityResolver:    identityResolver,
		AttributeResolver:   attributeResolver,
		Pacer:               p,
		FreshnessWindow:     config.FreshnessWindow,
		LookupTimeout:       config.LookupTimeout,
	}
}

// EnrichManagers walks every fund with a scheme-code mapping in
// ascending fund-name order and tries to discover its manager names and
// inception date. Lookup failures are per-fund and only counted; db
// failures and context cancellation abort the pass.
func (h enrichmentServiceHandler) EnrichManagers(ctx context.Context) (*domain.EnrichmentReport, error) {
	start := time.Now()
	profile, hasProfile := ctx.Value(domain.ContextProfileKey).(*domain.Profile)

	if hasProfile {
		profile.StartNewSpan("list enrichable funds")
	}
	funds, err := h.FundScoreRepository.ListEnrichable()
	if err != nil {
		return nil, fmt.Errorf("failed to list enrichable funds: %w", err)
	}

	if hasProfile {
		profile.StartNewSpan("enrich funds")
	}
	report := &domain.EnrichmentReport{FundsSeen: len(funds)}
	for _, fund := range funds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		state, err := h.enrichFund(ctx, fund)
		if err != nil {
			return nil, fmt.Errorf("failed enriching %s: %w", fund.FundScoreCache.FundName, err)
		}

		switch state {
		case domain.EnrichmentState_Updated:
			report.Updated++
		case domain.EnrichmentState_Skipped:
			report.Skipped++
		case domain.EnrichmentState_NotFound:
			report.NotFound++
		}
		logger.Debug("enrichment for %s: %s", fund.FundScoreCache.FundName, state)
	}

	report.ElapsedMs = time.Since(start).Milliseconds()
	return report, nil
}

// enrichFund runs the per-fund state machine to a terminal state. The
// returned error is reserved for infrastructure failures (pacer
// cancellation, db writes); upstream lookup problems map to NotFound.
func (h enrichmentServiceHandler) enrichFund(ctx context.Context, fund repository.EnrichableFund) (domain.EnrichmentState, error) {
	fundName := fund.FundScoreCache.FundName

	if h.isFresh(fund.FundScoreCache) {
		return domain.EnrichmentState_Skipped, nil
	}

	// RESOLVING_IDENTITY
	isin, lookupErr := h.resolveISIN(ctx, fund.SchemeCode)
	if err := h.Pacer.Wait(ctx); err != nil {
		return domain.EnrichmentState_ResolvingIdentity, err
	}
	if lookupErr != nil {
		logger.Warn("identity lookup failed for %s (scheme %s): %v", fundName, fund.SchemeCode, lookupErr)
		return domain.EnrichmentState_NotFound, nil
	}

	// RESOLVING_ATTRIBUTES
	attributes, lookupErr := h.resolveAttributes(ctx, isin)
	if err := h.Pacer.Wait(ctx); err != nil {
		return domain.EnrichmentState_ResolvingAttributes, err
	}
	if lookupErr != nil {
		logger.Warn("attribute lookup failed for %s (%s): %v", fundName, isin, lookupErr)
		return domain.EnrichmentState_NotFound, nil
	}
	if len(attributes.Managers) == 0 {
		logger.Warn("attribute lookup for %s (%s) returned no manager", fundName, isin)
		return domain.EnrichmentState_NotFound, nil
	}

	manager := strings.Join(attributes.Managers, "; ")
	now := time.Now().UTC()
	update := model.FundScoreCache{
		FundName:     fundName,
		FundManager:  &manager,
		LastEnriched: &now,
	}
	columns := postgres.ColumnList{
		table.FundScoreCache.FundManager,
		table.FundScoreCache.LastEnriched,
	}
	// inception date is set-once: never overwrite a stored value
	if fund.InceptionDate == nil && attributes.InceptionDate != nil {
		update.InceptionDate = attributes.InceptionDate
		columns = append(columns, table.FundScoreCache.InceptionDate)
	}

	err := h.FundScoreRepository.Update(update, columns)
	if err != nil {
		return domain.EnrichmentState_ResolvingAttributes, err
	}

	return domain.EnrichmentState_Updated, nil
}

// isFresh reports whether the stored manager is recent enough to skip.
// A fund without a manager on record is never fresh.
func (h enrichmentServiceHandler) isFresh(fund model.FundScoreCache) bool {
	if fund.FundManager == nil || *fund.FundManager == "" {
		return false
	}
	if fund.LastEnriched == nil {
		return false
	}
	return time.Since(*fund.LastEnriched) < h.FreshnessWindow
}

func (h enrichmentServiceHandler) resolveISIN(ctx context.Context, schemeCode string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, h.LookupTimeout)
	defer cancel()
	return h.IdentityResolver.ResolveISIN(callCtx, schemeCode)
}

func (h enrichmentServiceHandler) resolveAttributes(ctx context.Context, isin string) (*morningstar.FundAttributes, error) {
	callCtx, cancel := context.WithTimeout(ctx, h.LookupTimeout)
	defer cancel()
	return h.AttributeResolver.GetFundAttributes(callCtx, isin)
}
