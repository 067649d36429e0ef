package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/repository"
)

type productRepository struct {
	db *DB
}

func NewProductRepository(db *DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (name, price)
		VALUES (:name, :price)
	`
	result, err := r.db.NamedExecContext(ctx, query, product)
	if err != nil {
		return storeErr("failed to create product", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeErr("failed to get last insert id", err)
	}
	product.ID = id

	return nil
}

func (r *productRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.GetContext(ctx, &product, `SELECT id, name, price FROM products WHERE name = ? ORDER BY id LIMIT 1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "product", Key: name}
	}
	if err != nil {
		return nil, storeErr("failed to find product", err)
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	products := []*domain.Product{}
	if err := r.db.SelectContext(ctx, &products, `SELECT id, name, price FROM products ORDER BY id`); err != nil {
		return nil, storeErr("failed to list products", err)
	}
	return products, nil
}
