package repository

import (
	"database/sql"
	"fmt"
	"sankyaan/internal/db/models/postgres/public/model"
	"sankyaan/internal/db/models/postgres/public/table"
	"time"

	"github.com/go-jet/jet/v2/postgres"
)

// EnrichableFund is a cache row joined with its externally supplied
// scheme code, the key needed to drive the identity lookup.
type EnrichableFund struct {
	model.FundScoreCache
	model.FundSchemeCode
}

type FundScoreRepository interface {
	UpsertScores(m model.FundScoreCache) error
	Update(m model.FundScoreCache, columns postgres.ColumnList) error
	Get(fundName string) (*model.FundScoreCache, error)
	ListEnrichable() ([]EnrichableFund, error)
	ListTop(n int) ([]model.FundScoreCache, error)
}

type fundScoreRepositoryHandler struct {
	Db *sql.DB
}

func NewFundScoreRepository(db *sql.DB) FundScoreRepository {
	return fundScoreRepositoryHandler{Db: db}
}

// UpsertScores writes one fund's aggregated metrics, keyed on fund name.
// Only the aggregation-owned columns are named in the conflict update, so
// enrichment fields on an existing row are never clobbered.
func (h fundScoreRepositoryHandler) UpsertScores(m model.FundScoreCache) error {
	now := time.Now().UTC()
	m.CalculatedAt = &now

	query := table.FundScoreCache.
		INSERT(
			table.FundScoreCache.FundName,
			table.FundScoreCache.SchemeName,
			table.FundScoreCache.FundHouse,
			table.FundScoreCache.ScoredHoldings,
			table.FundScoreCache.CoveragePct,
			table.FundScoreCache.OverallScore,
			table.FundScoreCache.FinancialHealth,
			table.FundScoreCache.ManagementQuality,
			table.FundScoreCache.EarningsQuality,
			table.FundScoreCache.Valuation,
			table.FundScoreCache.Growth,
			table.FundScoreCache.CalculatedAt,
		).
		MODEL(m).
		ON_CONFLICT(table.FundScoreCache.FundName).
		DO_UPDATE(
			postgres.SET(
				table.FundScoreCache.SchemeName.SET(table.FundScoreCache.EXCLUDED.SchemeName),
				table.FundScoreCache.FundHouse.SET(table.FundScoreCache.EXCLUDED.FundHouse),
				table.FundScoreCache.ScoredHoldings.SET(table.FundScoreCache.EXCLUDED.ScoredHoldings),
				table.FundScoreCache.CoveragePct.SET(table.FundScoreCache.EXCLUDED.CoveragePct),
				table.FundScoreCache.OverallScore.SET(table.FundScoreCache.EXCLUDED.OverallScore),
				table.FundScoreCache.FinancialHealth.SET(table.FundScoreCache.EXCLUDED.FinancialHealth),
				table.FundScoreCache.ManagementQuality.SET(table.FundScoreCache.EXCLUDED.ManagementQuality),
				table.FundScoreCache.EarningsQuality.SET(table.FundScoreCache.EXCLUDED.EarningsQuality),
				table.FundScoreCache.Valuation.SET(table.FundScoreCache.EXCLUDED.Valuation),
				table.FundScoreCache.Growth.SET(table.FundScoreCache.EXCLUDED.Growth),
				table.FundScoreCache.CalculatedAt.SET(table.FundScoreCache.EXCLUDED.CalculatedAt),
			),
		)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert fund score for %s: %w", m.FundName, err)
	}

	return nil
}

// Update writes only the given columns of the row keyed by m.FundName.
func (h fundScoreRepositoryHandler) Update(m model.FundScoreCache, columns postgres.ColumnList) error {
	query := table.FundScoreCache.
		UPDATE(columns).
		MODEL(m).
		WHERE(table.FundScoreCache.FundName.EQ(postgres.String(m.FundName)))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to update fund score cache for %s: %w", m.FundName, err)
	}

	return nil
}

func (h fundScoreRepositoryHandler) Get(fundName string) (*model.FundScoreCache, error) {
	query := table.FundScoreCache.
		SELECT(table.FundScoreCache.AllColumns).
		WHERE(table.FundScoreCache.FundName.EQ(postgres.String(fundName)))

	out := model.FundScoreCache{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get fund score for %s: %w", fundName, err)
	}

	return &out, nil
}

// ListEnrichable returns cache rows that have a scheme-code mapping, in
// ascending fund-name order so enrichment passes are reproducible.
func (h fundScoreRepositoryHandler) ListEnrichable() ([]EnrichableFund, error) {
	query := postgres.SELECT(
		table.FundScoreCache.AllColumns,
		table.FundSchemeCode.AllColumns,
	).FROM(
		table.FundScoreCache.
			INNER_JOIN(
				table.FundSchemeCode,
				table.FundSchemeCode.FundName.EQ(table.FundScoreCache.FundName),
			),
	).ORDER_BY(table.FundScoreCache.FundName.ASC())

	out := []EnrichableFund{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrichable funds: %w", err)
	}

	return out, nil
}

// ListTop returns the n highest-scoring funds. Rows without an overall
// score are excluded from the ranking; the ordering is informational.
func (h fundScoreRepositoryHandler) ListTop(n int) ([]model.FundScoreCache, error) {
	query := table.FundScoreCache.
		SELECT(table.FundScoreCache.AllColumns).
		WHERE(table.FundScoreCache.OverallScore.IS_NOT_NULL()).
		ORDER_BY(table.FundScoreCache.OverallScore.DESC()).
		LIMIT(int64(n))

	out := []model.FundScoreCache{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list top funds: %w", err)
	}

	return out, nil
}
