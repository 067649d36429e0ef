package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/repository"
)

const clientColumns = `id, name, email, phone`

type clientRepository struct {
	db *DB
}

func NewClientRepository(db *DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (name, email, phone)
		VALUES (:name, :email, :phone)
	`
	result, err := r.db.NamedExecContext(ctx, query, client)
	if err != nil {
		return storeErr("failed to create client", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeErr("failed to get last insert id", err)
	}
	client.ID = id

	return nil
}

func (r *clientRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE name = ?`, name)
	if err != nil {
		return 0, storeErr("failed to delete client", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, storeErr("failed to get rows affected", err)
	}

	return rows, nil
}

func (r *clientRepository) FindByName(ctx context.Context, name string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE name = ? ORDER BY id LIMIT 1`

	var client domain.Client
	err := r.db.GetContext(ctx, &client, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "client", Key: name}
	}
	if err != nil {
		return nil, storeErr("failed to find client", err)
	}

	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	clients := []*domain.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY id`
	if err := r.db.SelectContext(ctx, &clients, query); err != nil {
		return nil, storeErr("failed to list clients", err)
	}
	return clients, nil
}

func (r *clientRepository) Search(ctx context.Context, filter repository.ClientFilter) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE 1=1`
	query, args := applyFilters(query, nil, filter.Filters)
	query = applyOrdering(query, filter.Order, "id ASC")
	query, args = applyPagination(query, args, filter.Page, filter.PerPage)

	clients := []*domain.Client{}
	if err := r.db.SelectContext(ctx, &clients, query, args...); err != nil {
		return nil, storeErr("failed to search clients", err)
	}
	return clients, nil
}

func (r *clientRepository) Count(ctx context.Context, filter repository.ClientFilter) (int, error) {
	query, args := applyFilters(`SELECT COUNT(*) FROM clients WHERE 1=1`, nil, filter.Filters)

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, storeErr("failed to count clients", err)
	}
	return count, nil
}
