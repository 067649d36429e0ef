package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/repository"
)

type ProductService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

func NewProductService(productRepo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Add stores a product. rawPrice is parsed as a non-negative decimal.
func (s *ProductService) Add(ctx context.Context, name, rawPrice string) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if err := domain.ValidateProductName(name); err != nil {
		return nil, err
	}
	price, err := domain.ParsePrice(rawPrice)
	if err != nil {
		return nil, err
	}

	product := domain.NewProduct(name, price)
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to add product %q: %w", name, err)
	}

	s.logger.Info("product_added", "id", product.ID, "name", product.Name, "price", product.Price.String())
	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.List(ctx)
}
