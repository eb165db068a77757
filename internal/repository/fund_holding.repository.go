package repository

import (
	"database/sql"
	"fmt"
	"sankyaan/internal/db/models/postgres/public/model"
	"sankyaan/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

// ScoredHolding is one holdings row joined with the quality scores of
// the security it points to.
type ScoredHolding struct {
	model.FundHolding
	model.SecurityScore
}

type FundHoldingRepository interface {
	ListScored() ([]ScoredHolding, error)
}

type fundHoldingRepositoryHandler struct {
	Db *sql.DB
}

func NewFundHoldingRepository(db *sql.DB) FundHoldingRepository {
	return fundHoldingRepositoryHandler{Db: db}
}

// ListScored returns every holding that can contribute to a fund score:
// linked to a security, strictly positive weight, and an overall quality
// score present upstream. Rows come back grouped by fund name so the
// aggregation pass is deterministic.
func (h fundHoldingRepositoryHandler) ListScored() ([]ScoredHolding, error) {
	query := postgres.SELECT(
		table.FundHolding.AllColumns,
		table.SecurityScore.AllColumns,
	).FROM(
		table.FundHolding.
			INNER_JOIN(
				table.SecurityScore,
				table.SecurityScore.Isin.EQ(table.FundHolding.Isin),
			),
	).WHERE(
		postgres.AND(
			table.FundHolding.Isin.IS_NOT_NULL(),
			table.FundHolding.WeightPct.GT(postgres.Float(0)),
			table.SecurityScore.OverallScore.IS_NOT_NULL(),
		),
	).ORDER_BY(
		table.FundHolding.FundName.ASC(),
		table.FundHolding.InstrumentName.ASC(),
	)

	out := []ScoredHolding{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to query scored holdings: %w", err)
	}

	return out, nil
}
