package service

import (
	"context"
	"fmt"
	"time"

	"github.com/IIPisarenko/ITOG/internal/core/analytics"
	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/repository"
)

// AnalyticsService answers the read-only reports. Every call rescans the
// store.
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

// TopClients returns at most n clients ranked by order count. Clients with
// no orders are included with zero.
func (s *AnalyticsService) TopClients(ctx context.Context, n int) ([]domain.ClientOrderCount, error) {
	counts, err := s.analyticsRepo.ClientOrderCounts(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.TopClients(counts, n), nil
}

// OrderTrends returns per-day order counts, oldest day first. Zero from or
// to leave that end open; both ends are inclusive.
func (s *AnalyticsService) OrderTrends(ctx context.Context, from, to time.Time) ([]analytics.TrendPoint, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, &domain.ValidationError{Field: "date range", Reason: "end is before start"}
	}

	var dr repository.DateRange
	if !from.IsZero() {
		dr.From = from.UTC().Format(analytics.DayLayout)
	}
	if !to.IsZero() {
		dr.To = to.UTC().Format(analytics.DayLayout)
	}

	rows, err := s.analyticsRepo.DailyOrderCounts(ctx, dr)
	if err != nil {
		return nil, err
	}
	points, err := analytics.Trends(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build order trends: %w", err)
	}
	return points, nil
}

// ClientNetwork returns the graph of clients that bought a common product.
func (s *AnalyticsService) ClientNetwork(ctx context.Context) (*analytics.Graph, error) {
	pairs, err := s.analyticsRepo.CoPurchasePairs(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.BuildNetwork(pairs), nil
}
