package repository

import (
	"context"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
)

// DateRange bounds a query by calendar day (YYYY-MM-DD, inclusive). Empty
// ends are open.
type DateRange struct {
	From string
	To   string
}

// AnalyticsRepository runs the read-only aggregate queries behind the reports.
type AnalyticsRepository interface {
	// ClientOrderCounts returns one row per client name, including names
	// with no orders, in first-insertion order.
	ClientOrderCounts(ctx context.Context) ([]domain.ClientOrderCount, error)
	DailyOrderCounts(ctx context.Context, r DateRange) ([]domain.DailyOrderCount, error)
	// CoPurchasePairs returns distinct pairs of different clients that
	// ordered at least one common product.
	CoPurchasePairs(ctx context.Context) ([]domain.CoPurchase, error)
}
