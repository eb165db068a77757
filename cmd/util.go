package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"sankyaan/internal/pacer"
	"sankyaan/internal/repository"
	"sankyaan/internal/service"
	"sankyaan/internal/util"
	"sankyaan/pkg/mfapi"
	"sankyaan/pkg/morningstar"
	"time"

	_ "github.com/lib/pq"
)

const (
	pacingDelay     = 300 * time.Millisecond
	reportTopNFunds = 10
)

type Handler struct {
	Db                 *sql.DB
	AggregationService service.AggregationService
	EnrichmentService  service.EnrichmentService
}

func initializeDependencies() (*Handler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	fundHoldingRepository := repository.NewFundHoldingRepository(dbConn)
	fundScoreRepository := repository.NewFundScoreRepository(dbConn)

	httpClient := &http.Client{Timeout: service.DefaultLookupTimeout}
	identityClient := mfapi.Client{
		HttpClient: httpClient,
		BaseUrl:    secrets.Mfapi.BaseUrl,
	}
	attributeClient := morningstar.Client{
		HttpClient: httpClient,
		BaseUrl:    secrets.Morningstar.BaseUrl,
		ApiKey:     secrets.Morningstar.ApiKey,
	}

	aggregationService := service.NewAggregationService(
		fundHoldingRepository,
		fundScoreRepository,
		service.AggregationConfig{TopN: reportTopNFunds},
	)
	enrichmentService := service.NewEnrichmentService(
		fundScoreRepository,
		identityClient,
		attributeClient,
		pacer.NewFixedDelay(pacingDelay),
		service.EnrichmentConfig{},
	)

	return &Handler{
		Db:                 dbConn,
		AggregationService: aggregationService,
		EnrichmentService:  enrichmentService,
	}, nil
}

func closeDependencies(handler *Handler) {
	err := handler.Db.Close()
	if err != nil {
		fmt.Printf("failed to close db: %v\n", err)
	}
}
