package sqlite

import (
	"context"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/repository"
)

type analyticsRepository struct {
	db *DB
}

func NewAnalyticsRepository(db *DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) ClientOrderCounts(ctx context.Context) ([]domain.ClientOrderCount, error) {
	query := `
		SELECT c.name AS name,
			COUNT(o.id) AS order_count,
			COALESCE(SUM(o.quantity), 0) AS units
		FROM clients c
		LEFT JOIN orders o ON c.id = o.client_id
		GROUP BY c.name
		ORDER BY MIN(c.id)
	`
	counts := []domain.ClientOrderCount{}
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, storeErr("failed to count orders per client", err)
	}
	return counts, nil
}

func (r *analyticsRepository) DailyOrderCounts(ctx context.Context, dr repository.DateRange) ([]domain.DailyOrderCount, error) {
	query := `
		SELECT DATE(order_date) AS day, COUNT(id) AS order_count
		FROM orders
		WHERE DATE(order_date) IS NOT NULL
	`
	var args []any
	if dr.From != "" {
		query += " AND DATE(order_date) >= DATE(?)"
		args = append(args, dr.From)
	}
	if dr.To != "" {
		query += " AND DATE(order_date) <= DATE(?)"
		args = append(args, dr.To)
	}
	query += " GROUP BY day ORDER BY day"

	counts := []domain.DailyOrderCount{}
	if err := r.db.SelectContext(ctx, &counts, query, args...); err != nil {
		return nil, storeErr("failed to count orders per day", err)
	}
	return counts, nil
}

func (r *analyticsRepository) CoPurchasePairs(ctx context.Context) ([]domain.CoPurchase, error) {
	// c1.id < c2.id keeps one row per unordered pair and drops self-pairs.
	query := `
		SELECT DISTINCT c1.id AS source_id, c1.name AS source,
			c2.id AS target_id, c2.name AS target
		FROM orders o1
		JOIN clients c1 ON o1.client_id = c1.id
		JOIN orders o2 ON o1.product_id = o2.product_id
		JOIN clients c2 ON o2.client_id = c2.id
		WHERE c1.id < c2.id
		ORDER BY c1.id, c2.id
	`
	pairs := []domain.CoPurchase{}
	if err := r.db.SelectContext(ctx, &pairs, query); err != nil {
		return nil, storeErr("failed to find co-purchasing clients", err)
	}
	return pairs, nil
}
