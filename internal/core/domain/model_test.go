package domain_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClientFields(t *testing.T) {
	c := domain.NewClient("Иван", "ivan@example.com", "0123456789")

	fields := c.Fields()
	assert.Equal(t, []string{"Имя", "E-mail", "Номер телефона"}, domain.Labels(fields))
	assert.Equal(t, "Иван", fields[0].Value)
	assert.Equal(t, "ivan@example.com", fields[1].Value)
	assert.Equal(t, "0123456789", fields[2].Value)
}

func TestProductFieldsFormatPrice(t *testing.T) {
	p := domain.NewProduct("Чайник", decimal.RequireFromString("7.5"))

	fields := p.Fields()
	assert.Equal(t, []string{"Название", "Цена"}, domain.Labels(fields))
	assert.Equal(t, "7.50", fields[1].Value)
}

func TestOrderDetailFields(t *testing.T) {
	o := domain.OrderDetail{
		Order:       *domain.NewOrder(1, 2, 3, time.Time{}),
		ClientName:  "Ann",
		ProductName: "Kettle",
	}

	fields := o.Fields()
	assert.Equal(t, []string{"Клиент", "Товар", "Количество"}, domain.Labels(fields))
	assert.Equal(t, 3, fields[2].Value)
}

func TestNewOrderNormalizesDate(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	placed := time.Date(2025, 3, 1, 1, 30, 15, 999, loc)

	o := domain.NewOrder(1, 2, 1, placed)
	assert.Equal(t, time.UTC, o.OrderDate.Location())
	assert.Equal(t, "2025-02-28 22:30:15", o.OrderDate.Format(domain.OrderDateLayout))

	before := time.Now().Add(-time.Second)
	o = domain.NewOrder(1, 2, 1, time.Time{})
	assert.False(t, o.OrderDate.Before(before.UTC().Truncate(time.Second)))
}

func TestStoreErrorClassification(t *testing.T) {
	driverErr := errors.New("UNIQUE constraint failed: clients.email")
	err := fmt.Errorf("add client: %w", &domain.StoreError{
		Op:   "failed to create client",
		Kind: domain.ErrConstraint,
		Err:  driverErr,
	})

	assert.ErrorIs(t, err, domain.ErrConstraint)
	assert.ErrorIs(t, err, driverErr)
	assert.NotErrorIs(t, err, domain.ErrConnection)
	assert.Contains(t, err.Error(), "failed to create client")
}

func TestNotFoundErrorIsErrNotFound(t *testing.T) {
	err := fmt.Errorf("place order: %w", &domain.NotFoundError{Entity: "client", Key: "Bob"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "place order: client not found: Bob")
}
