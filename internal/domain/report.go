package domain

type FundScoreSummary struct {
	FundName     string   `json:"fundName"`
	FundHouse    *string  `json:"fundHouse"`
	OverallScore *float64 `json:"overallScore"`
	CoveragePct  *float64 `json:"coveragePct"`
}

type AggregationReport struct {
	RowsWritten    int                `json:"rowsWritten"`
	HoldingsRead   int                `json:"holdingsRead"`
	CoverageMean   *float64           `json:"coverageMean"`
	CoverageMedian *float64           `json:"coverageMedian"`
	TopFunds       []FundScoreSummary `json:"topFunds"`
	ElapsedMs      int64              `json:"elapsedMs"`
}
