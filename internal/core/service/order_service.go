package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/repository"
)

type OrderService struct {
	orderRepo   repository.OrderRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Place records an order for the first client and the first product with
// the given names. If either name is unknown a NotFoundError is returned and
// nothing is written. A zero placedAt means now.
func (s *OrderService) Place(ctx context.Context, clientName, productName string, quantity int, placedAt time.Time) (*domain.Order, error) {
	if err := domain.ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindByName(ctx, strings.TrimSpace(clientName))
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByName(ctx, strings.TrimSpace(productName))
	if err != nil {
		return nil, err
	}

	return s.create(ctx, domain.NewOrder(client.ID, product.ID, quantity, placedAt))
}

// PlaceByID records an order for raw ids. The ids are not checked against
// existing clients or products.
func (s *OrderService) PlaceByID(ctx context.Context, clientID, productID int64, quantity int, placedAt time.Time) (*domain.Order, error) {
	if err := domain.ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	return s.create(ctx, domain.NewOrder(clientID, productID, quantity, placedAt))
}

func (s *OrderService) create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info("order_placed",
		"id", order.ID,
		"client_id", order.ClientID,
		"product_id", order.ProductID,
		"quantity", order.Quantity,
	)
	return order, nil
}

// List returns orders joined with client and product names, plus the total
// count ignoring pagination.
func (s *OrderService) List(ctx context.Context, filter repository.OrderFilter) ([]*domain.OrderDetail, int, error) {
	if err := filter.Validate(repository.OrderQueryFields); err != nil {
		return nil, 0, invalidFilter(err)
	}

	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
