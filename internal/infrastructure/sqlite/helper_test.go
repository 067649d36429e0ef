package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory store that is closed when the test ends.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() { db.Close() })

	return db
}

func mustAddClient(t *testing.T, db *DB, name, email, phone string) *domain.Client {
	t.Helper()

	c := domain.NewClient(name, email, phone)
	require.NoError(t, NewClientRepository(db).Create(context.Background(), c))
	return c
}

func mustAddProduct(t *testing.T, db *DB, name, price string) *domain.Product {
	t.Helper()

	p := domain.NewProduct(name, decimal.RequireFromString(price))
	require.NoError(t, NewProductRepository(db).Create(context.Background(), p))
	return p
}

func mustAddOrder(t *testing.T, db *DB, clientID, productID int64, placedAt time.Time) *domain.Order {
	t.Helper()

	o := domain.NewOrder(clientID, productID, 1, placedAt)
	require.NoError(t, NewOrderRepository(db).Create(context.Background(), o))
	return o
}

// fixedDay returns 10:00 UTC on the given day of November 2025.
func fixedDay(day int) time.Time {
	return time.Date(2025, time.November, day, 10, 0, 0, 0, time.UTC)
}
