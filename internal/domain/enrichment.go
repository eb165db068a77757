package domain

// EnrichmentState tracks one fund through the manager-discovery
// state machine. Terminal states are Skipped, NotFound and Updated;
// every fund ends in exactly one of them.
type EnrichmentState string

const (
	EnrichmentState_Pending             EnrichmentState = "PENDING"
	EnrichmentState_Skipped             EnrichmentState = "SKIPPED"
	EnrichmentState_ResolvingIdentity   EnrichmentState = "RESOLVING_IDENTITY"
	EnrichmentState_ResolvingAttributes EnrichmentState = "RESOLVING_ATTRIBUTES"
	EnrichmentState_NotFound            EnrichmentState = "NOT_FOUND"
	EnrichmentState_Updated             EnrichmentState = "UPDATED"
)

func (s EnrichmentState) Terminal() bool {
	switch s {
	case EnrichmentState_Skipped, EnrichmentState_NotFound, EnrichmentState_Updated:
		return true
	}
	return false
}

type EnrichmentReport struct {
	FundsSeen int   `json:"fundsSeen"`
	Updated   int   `json:"updated"`
	Skipped   int   `json:"skipped"`
	NotFound  int   `json:"notFound"`
	ElapsedMs int64 `json:"elapsedMs"`
}
