package repoargs

import "github.com/fsdevblog/fidelize/internal/domain"

type CreatePointsTransaction struct {
	ClientID    int64
	OrderID     int64
	Points      int64
	Type        domain.PointsTransactionType
	Description string
}

// LedgerAggregation - суммы по журналу баллов, раздельно по начислениям и списаниям.
type LedgerAggregation struct {
	GainPoints int64
	LossPoints int64
}
