package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/repository"
)

// orderView joins orders with the names they reference. Left joins keep
// orders whose client or product has been deleted.
const orderView = `
	SELECT o.id, o.client_id, o.product_id, o.quantity, o.order_date,
		COALESCE(c.name, '') AS client_name,
		COALESCE(p.name, '') AS product_name
	FROM orders o
	LEFT JOIN clients c ON c.id = o.client_id
	LEFT JOIN products p ON p.id = o.product_id
`

// orderRow mirrors orderView with the date still in its stored text form.
type orderRow struct {
	ID          int64  `db:"id"`
	ClientID    int64  `db:"client_id"`
	ProductID   int64  `db:"product_id"`
	Quantity    int    `db:"quantity"`
	OrderDate   string `db:"order_date"`
	ClientName  string `db:"client_name"`
	ProductName string `db:"product_name"`
}

type orderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now().UTC().Truncate(time.Second)
	}

	query := `
		INSERT INTO orders (client_id, product_id, quantity, order_date)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		order.ClientID,
		order.ProductID,
		order.Quantity,
		order.OrderDate.UTC().Format(domain.OrderDateLayout),
	)
	if err != nil {
		return storeErr("failed to create order", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeErr("failed to get last insert id", err)
	}
	order.ID = id

	return nil
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*domain.OrderDetail, error) {
	query := `SELECT * FROM (` + orderView + `) WHERE 1=1`
	query, args := applyFilters(query, nil, filter.Filters)
	query = applyOrdering(query, filter.Order, "id ASC")
	query, args = applyPagination(query, args, filter.Page, filter.PerPage)

	var rows []orderRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storeErr("failed to list orders", err)
	}

	orders := make([]*domain.OrderDetail, 0, len(rows))
	for _, row := range rows {
		placedAt, err := parseOrderDate(row.OrderDate)
		if err != nil {
			return nil, storeErr("failed to parse order date", err)
		}
		orders = append(orders, &domain.OrderDetail{
			Order: domain.Order{
				ID:        row.ID,
				ClientID:  row.ClientID,
				ProductID: row.ProductID,
				Quantity:  row.Quantity,
				OrderDate: placedAt,
			},
			ClientName:  row.ClientName,
			ProductName: row.ProductName,
		})
	}

	return orders, nil
}

func (r *orderRepository) Count(ctx context.Context, filter repository.OrderFilter) (int, error) {
	query, args := applyFilters(`SELECT COUNT(*) FROM (`+orderView+`) WHERE 1=1`, nil, filter.Filters)

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, storeErr("failed to count orders", err)
	}
	return count, nil
}

// parseOrderDate accepts the layout this package writes plus the RFC 3339
// forms SQLite date functions also understand.
func parseOrderDate(s string) (time.Time, error) {
	for _, layout := range []string{domain.OrderDateLayout, time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized order date %q", s)
}
