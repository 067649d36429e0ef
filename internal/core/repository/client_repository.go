package repository

import (
	"context"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/listing"
)

// ClientQueryFields are the columns clients can be filtered and ordered by.
var ClientQueryFields = []string{"id", "name", "email", "phone"}

type ClientFilter struct {
	listing.ListFilter
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	// DeleteByName removes every client with exactly this name and reports
	// how many rows went away. Orders are left untouched.
	DeleteByName(ctx context.Context, name string) (int64, error)
	FindByName(ctx context.Context, name string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Search(ctx context.Context, filter ClientFilter) ([]*domain.Client, error)
	Count(ctx context.Context, filter ClientFilter) (int, error)
}
