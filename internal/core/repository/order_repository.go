package repository

import (
	"context"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/listing"
)

// OrderQueryFields are the columns of the joined order view.
var OrderQueryFields = []string{"id", "client_id", "product_id", "quantity", "order_date", "client_name", "product_name"}

type OrderFilter struct {
	listing.ListFilter
}

type OrderRepository interface {
	// Create inserts the order as is; client and product ids are not checked.
	Create(ctx context.Context, order *domain.Order) error
	List(ctx context.Context, filter OrderFilter) ([]*domain.OrderDetail, error)
	Count(ctx context.Context, filter OrderFilter) (int, error)
}
