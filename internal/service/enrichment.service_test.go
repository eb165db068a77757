package service

import (
	"context"
	"fmt"
	"sankyaan/internal/db/models/postgres/public/model"
	"sankyaan/internal/db/models/postgres/public/table"
	"sankyaan/internal/pacer"
	"sankyaan/internal/repository"
	mock_repository "sankyaan/internal/repository/mocks"
	"sankyaan/internal/util"
	"sankyaan/pkg/morningstar"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubIdentityResolver struct {
	isin  string
	err   error
	calls []string
}

func (s *stubIdentityResolver) ResolveISIN(ctx context.Context, schemeCode string) (string, error) {
	s.calls = append(s.calls, schemeCode)
	return s.isin, s.err
}

type stubAttributeResolver struct {
	attributes *morningstar.FundAttributes
	err        error
	calls      []string
}

func (s *stubAttributeResolver) GetFundAttributes(ctx context.Context, isin string) (*morningstar.FundAttributes, error) {
	s.calls = append(s.calls, isin)
	return s.attributes, s.err
}

type countingPacer struct {
	waits int
}

func (p *countingPacer) Wait(ctx context.Context) error {
	p.waits++
	return ctx.Err()
}

func enrichableFund(fundName, schemeCode string) repository.EnrichableFund {
	return repository.EnrichableFund{
		FundScoreCache: model.FundScoreCache{FundName: fundName},
		FundSchemeCode: model.FundSchemeCode{FundName: fundName, SchemeCode: schemeCode},
	}
}

func newEnrichmentHandler(
	scoreRepository repository.FundScoreRepository,
	identity SchemeIdentityResolver,
	attributes FundAttributeResolver,
	p pacer.Pacer,
) enrichmentServiceHandler {
	return enrichmentServiceHandler{
		FundScoreRepository: scoreRepository,
		IdentityResolver:    identity,
		AttributeResolver:   attributes,
		Pacer:               p,
		FreshnessWindow:     DefaultFreshnessWindow,
		LookupTimeout:       DefaultLookupTimeout,
	}
}

func Test_EnrichManagers(t *testing.T) {
	t.Run("fresh fund is skipped without external calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		identity := &stubIdentityResolver{}
		attributes := &stubAttributeResolver{}

		fund := enrichableFund("Alpha Fund", "100001")
		fund.FundManager = util.StringPointer("R. Sharma")
		fund.LastEnriched = util.TimePointer(time.Now().Add(-10 * 24 * time.Hour))

		scoreRepository.EXPECT().ListEnrichable().Return([]repository.EnrichableFund{fund}, nil)

		handler := newEnrichmentHandler(scoreRepository, identity, attributes, pacer.NoDelay())
		report, err := handler.EnrichManagers(context.Background())
		require.NoError(t, err)

		require.Equal(t, 1, report.Skipped)
		require.Equal(t, 0, report.Updated)
		require.Empty(t, identity.calls)
		require.Empty(t, attributes.calls)
	})

	t.Run("stale fund is re-enriched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		identity := &stubIdentityResolver{err: fmt.Errorf("no match")}
		attributes := &stubAttributeResolver{}

		fund := enrichableFund("Alpha Fund", "100001")
		fund.FundManager = util.StringPointer("R. Sharma")
		fund.LastEnriched = util.TimePointer(time.Now().Add(-31 * 24 * time.Hour))

		scoreRepository.EXPECT().ListEnrichable().Return([]repository.EnrichableFund{fund}, nil)

		handler := newEnrichmentHandler(scoreRepository, identity, attributes, pacer.NoDelay())
		report, err := handler.EnrichManagers(context.Background())
		require.NoError(t, err)

		require.Equal(t, 0, report.Skipped)
		require.Equal(t, 1, report.NotFound)
		require.Equal(t, []string{"100001"}, identity.calls)
	})

	t.Run("fund without manager is never skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		identity := &stubIdentityResolver{err: fmt.Errorf("no match")}
		attributes := &stubAttributeResolver{}

		fund := enrichableFund("Alpha Fund", "100001")
		fund.LastEnriched = util.TimePointer(time.Now())

		scoreRepository.EXPECT().ListEnrichable().Return([]repository.EnrichableFund{fund}, nil)

		handler := newEnrichmentHandler(scoreRepository, identity, attributes, pacer.NoDelay())
		report, err := handler.EnrichManagers(context.Background())
		require.NoError(t, err)

		require.Equal(t, 0, report.Skipped)
		require.Equal(t, []string{"100001"}, identity.calls)
		require.Equal(t, 1, report.NotFound)
	})

	t.Run("attribute lookup failure is not found, batch continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		identity := &stubIdentityResolver{isin: "INF001"}
		attributes := &stubAttributeResolver{err: fmt.Errorf("malformed response")}

		scoreRepository.EXPECT().ListEnrichable().Return([]repository.EnrichableFund{
			enrichableFund("Alpha Fund", "100001"),
			enrichableFund("Beta Fund", "100002"),
		}, nil)

		handler := newEnrichmentHandler(scoreRepository, identity, attributes, pacer.NoDelay())
		report, err := handler.EnrichManagers(context.Background())
		require.NoError(t, err)

		require.Equal(t, 2, report.NotFound)
		require.Equal(t, []string{"100001", "100002"}, identity.calls)
	})

	t.Run("updated fund persists joined managers and inception date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		identity := &stubIdentityResolver{isin: "INF001"}
		inception := time.Date(2013, 4, 1, 0, 0, 0, 0, time.UTC)
		attributes := &stubAttributeResolver{attributes: &morningstar.FundAttributes{
			Managers:      []string{"R. Sharma", "A. Patel"},
			InceptionDate: &inception,
		}}

		scoreRepository.EXPECT().ListEnrichable().Return([]repository.EnrichableFund{
			enrichableFund("Alpha Fund", "100001"),
		}, nil)

		var gotUpdate model.FundScoreCache
		var gotColumns postgres.ColumnList
		scoreRepository.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(m model.FundScoreCache, columns postgres.ColumnList) error {
				gotUpdate = m
				gotColumns = columns
				return nil
			})

		handler := newEnrichmentHandler(scoreRepository, identity, attributes, pacer.NoDelay())
		report, err := handler.EnrichManagers(context.Background())
		require.NoError(t, err)

		require.Equal(t, 1, report.Updated)
		require.Equal(t, "R. Sharma; A. Patel", *gotUpdate.FundManager)
		require.NotNil(t, gotUpdate.LastEnriched)
		require.Equal(t, inception, *gotUpdate.InceptionDate)
		require.Len(t, gotColumns, 3)
	})

	t.Run("existing inception date is preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		identity := &stubIdentityResolver{isin: "INF001"}
		upstreamInception := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
		attributes := &stubAttributeResolver{attributes: &morningstar.FundAttributes{
			Managers:      []string{"R. Sharma"},
			InceptionDate: &upstreamInception,
		}}

		fund := enrichableFund("Alpha Fund", "100001")
		fund.InceptionDate = util.TimePointer(time.Date(2013, 4, 1, 0, 0, 0, 0, time.UTC))

		scoreRepository.EXPECT().ListEnrichable().Return([]repository.EnrichableFund{fund}, nil)

		var gotUpdate model.FundScoreCache
		var gotColumns postgres.ColumnList
		scoreRepository.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(m model.FundScoreCache, columns postgres.ColumnList) error {
				gotUpdate = m
				gotColumns = columns
				return nil
			})

		handler := newEnrichmentHandler(scoreRepository, identity, attributes, pacer.NoDelay())
		report, err := handler.EnrichManagers(context.Background())
		require.NoError(t, err)

		require.Equal(t, 1, report.Updated)
		require.Nil(t, gotUpdate.InceptionDate)
		require.Equal(t, postgres.ColumnList{
			table.FundScoreCache.FundManager,
			table.FundScoreCache.LastEnriched,
		}, gotColumns)
	})

	t.Run("paces twice per fund and walks funds in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		identity := &stubIdentityResolver{isin: "INF001"}
		attributes := &stubAttributeResolver{attributes: &morningstar.FundAttributes{
			Managers: []string{"R. Sharma"},
		}}
		p := &countingPacer{}

		scoreRepository.EXPECT().ListEnrichable().Return([]repository.EnrichableFund{
			enrichableFund("Alpha Fund", "100001"),
			enrichableFund("Beta Fund", "100002"),
			enrichableFund("Gamma Fund", "100003"),
		}, nil)
		scoreRepository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		handler := newEnrichmentHandler(scoreRepository, identity, attributes, p)
		report, err := handler.EnrichManagers(context.Background())
		require.NoError(t, err)

		require.Equal(t, 3, report.Updated)
		require.Equal(t, 6, p.waits)
		require.Equal(t, []string{"100001", "100002", "100003"}, identity.calls)
	})

	t.Run("elapsed time reflects pacing delay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		identity := &stubIdentityResolver{isin: "INF001"}
		attributes := &stubAttributeResolver{attributes: &morningstar.FundAttributes{
			Managers: []string{"R. Sharma"},
		}}

		scoreRepository.EXPECT().ListEnrichable().Return([]repository.EnrichableFund{
			enrichableFund("Alpha Fund", "100001"),
			enrichableFund("Beta Fund", "100002"),
		}, nil)
		scoreRepository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		delay := 10 * time.Millisecond
		handler := newEnrichmentHandler(scoreRepository, identity, attributes, pacer.NewFixedDelay(delay))

		start := time.Now()
		_, err := handler.EnrichManagers(context.Background())
		require.NoError(t, err)
		require.GreaterOrEqual(t, time.Since(start), 2*2*delay)
	})

	t.Run("cancellation aborts between funds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		identity := &stubIdentityResolver{isin: "INF001"}
		attributes := &stubAttributeResolver{attributes: &morningstar.FundAttributes{
			Managers: []string{"R. Sharma"},
		}}

		scoreRepository.EXPECT().ListEnrichable().Return([]repository.EnrichableFund{
			enrichableFund("Alpha Fund", "100001"),
		}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		handler := newEnrichmentHandler(scoreRepository, identity, attributes, pacer.NoDelay())
		_, err := handler.EnrichManagers(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("db write failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreRepository := mock_repository.NewMockFundScoreRepository(ctrl)
		identity := &stubIdentityResolver{isin: "INF001"}
		attributes := &stubAttributeResolver{attributes: &morningstar.FundAttributes{
			Managers: []string{"R. Sharma"},
		}}

		scoreRepository.EXPECT().ListEnrichable().Return([]repository.EnrichableFund{
			enrichableFund("Alpha Fund", "100001"),
		}, nil)
		scoreRepository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(fmt.Errorf("connection reset"))

		handler := newEnrichmentHandler(scoreRepository, identity, attributes, pacer.NoDelay())
		_, err := handler.EnrichManagers(context.Background())
		require.ErrorContains(t, err, "connection reset")
	})
}
