package service

import (
	"context"
	"fmt"
	"sankyaan/internal/db/models/postgres/public/model"
	"sankyaan/internal/domain"
	"sankyaan/internal/logger"
	"sankyaan/internal/repository"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type AggregationService interface {
	RecomputeScores(ctx context.Context) (*domain.AggregationReport, error)
}

type AggregationConfig struct {
	// TopN is how many funds the run report ranks by overall score.
	TopN int
}

type aggregationServiceHandler struct {
	FundHoldingRepository repository.FundHoldingRepository
	FundScoreRepository   repository.FundScoreRepository
	TopN                  int
}

func NewAggregationService(
	fundHoldingRepository repository.FundHoldingRepository,
	fundScoreRepository repository.FundScoreRepository,
	config AggregationConfig,
) AggregationService {
	return aggregationServiceHandler{
		FundHoldingRepository: fundHoldingRepository,
		FundScoreRepository:   fundScoreRepository,
		TopN:                  config.TopN,
	}
}

// RecomputeScores reads every holding with a usable quality score,
// aggregates them into one row per fund and upserts each row
// individually. A read failure aborts the run; rows upserted before a
// failure stay committed. Funds with no qualifying holding are not
// touched at all.
func (h aggregationServiceHandler) RecomputeScores(ctx context.Context) (*domain.AggregationReport, error) {
	start := time.Now()
	profile, hasProfile := ctx.Value(domain.ContextProfileKey).(*domain.Profile)

	if hasProfile {
		profile.StartNewSpan("read scored holdings")
	}
	rows, err := h.FundHoldingRepository.ListScored()
	if err != nil {
		return nil, fmt.Errorf("failed to read scored holdings: %w", err)
	}

	computed := aggregateByFund(rows)

	if hasProfile {
		profile.StartNewSpan("upsert fund scores")
	}
	coverages := []float64{}
	written := 0
	for _, fund := range computed {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		err = h.FundScoreRepository.UpsertScores(fund)
		if err != nil {
			return nil, err
		}
		written++
		if fund.CoveragePct != nil {
			coverages = append(coverages, *fund.CoveragePct)
		}
		logger.Debug("recomputed scores for %s (%d scored holdings)", fund.FundName, *fund.ScoredHoldings)
	}

	report := &domain.AggregationReport{
		RowsWritten:  written,
		HoldingsRead: len(rows),
		ElapsedMs:    time.Since(start).Milliseconds(),
	}
	if len(coverages) > 0 {
		if mean, err := stats.Mean(coverages); err == nil {
			report.CoverageMean = &mean
		}
		if median, err := stats.Median(coverages); err == nil {
			report.CoverageMedian = &median
		}
	}

	topFunds, err := h.FundScoreRepository.ListTop(h.TopN)
	if err != nil {
		return nil, fmt.Errorf("failed to rank funds for report: %w", err)
	}
	for _, f := range topFunds {
		report.TopFunds = append(report.TopFunds, domain.FundScoreSummary{
			FundName:     f.FundName,
			FundHouse:    f.FundHouse,
			OverallScore: f.OverallScore,
			CoveragePct:  f.CoveragePct,
		})
	}

	return report, nil
}

// scoreAccumulator tracks one weighted average. Rows missing the score
// contribute to neither sum, so the weight denominator can be zero even
// when the fund has scored holdings.
type scoreAccumulator struct {
	weightedSum decimal.Decimal
	weightSum   decimal.Decimal
}

func (a *scoreAccumulator) add(score *float64, weight decimal.Decimal) {
	if score == nil {
		return
	}
	a.weightedSum = a.weightedSum.Add(decimal.NewFromFloat(*score).Mul(weight))
	a.weightSum = a.weightSum.Add(weight)
}

func (a scoreAccumulator) average() *float64 {
	if a.weightSum.IsZero() {
		return nil
	}
	avg := a.weightedSum.Div(a.weightSum).Round(2).InexactFloat64()
	return &avg
}

type fundAccumulator struct {
	schemeName string
	fundHouse  string
	isins      map[string]bool
	coverage   decimal.Decimal

	overall           scoreAccumulator
	financialHealth   scoreAccumulator
	managementQuality scoreAccumulator
	earningsQuality   scoreAccumulator
	valuation         scoreAccumulator
	growth            scoreAccumulator
}

// aggregateByFund folds joined holdings rows into one cache row per
// fund, preserving the fund order of the input. The coverage figure is
// the raw sum of matched weights, deliberately neither normalized
// against total fund weight nor clamped to 100.
func aggregateByFund(rows []repository.ScoredHolding) []model.FundScoreCache {
	order := []string{}
	byFund := map[string]*fundAccumulator{}

	for _, row := range rows {
		acc, ok := byFund[row.FundHolding.FundName]
		if !ok {
			acc = &fundAccumulator{
				schemeName: row.SchemeName,
				fundHouse:  row.FundHouse,
				isins:      map[string]bool{},
			}
			byFund[row.FundHolding.FundName] = acc
			order = append(order, row.FundHolding.FundName)
		}

		weight := decimal.NewFromFloat(row.WeightPct)
		acc.schemeName = row.SchemeName
		acc.fundHouse = row.FundHouse
		acc.isins[row.SecurityScore.Isin] = true
		acc.coverage = acc.coverage.Add(weight)

		acc.overall.add(row.OverallScore, weight)
		acc.financialHealth.add(row.FinancialHealth, weight)
		acc.managementQuality.add(row.ManagementQuality, weight)
		acc.earningsQuality.add(row.EarningsQuality, weight)
		acc.valuation.add(row.Valuation, weight)
		acc.growth.add(row.Growth, weight)
	}

	out := []model.FundScoreCache{}
	for _, fundName := range order {
		acc := byFund[fundName]
		scoredHoldings := int32(len(acc.isins))
		coverage := acc.coverage.Round(2).InexactFloat64()

		out = append(out, model.FundScoreCache{
			FundName:          fundName,
			SchemeName:        &acc.schemeName,
			FundHouse:         &acc.fundHouse,
			ScoredHoldings:    &scoredHoldings,
			CoveragePct:       &coverage,
			OverallScore:      acc.overall.average(),
			FinancialHealth:   acc.financialHealth.average(),
			ManagementQuality: acc.managementQuality.average(),
			EarningsQuality:   acc.earningsQuality.average(),
			Valuation:         acc.valuation.average(),
			Growth:            acc.growth.average(),
		})
	}

	return out
}
