package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/repository"
)

type ClientService struct {
	clientRepo repository.ClientRepository
	logger     *slog.Logger
}

func NewClientService(clientRepo repository.ClientRepository, logger *slog.Logger) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Add validates and stores a new client. Input is trimmed first; the first
// failing field is reported and nothing is written.
func (s *ClientService) Add(ctx context.Context, name, email, phone string) (*domain.Client, error) {
	client := domain.NewClient(strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(phone))
	if err := domain.ValidateClient(client); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to add client %q: %w", client.Name, err)
	}

	s.logger.Info("client_added", "id", client.ID, "name", client.Name)
	return client, nil
}

// Delete removes every client named exactly name, after trimming, and
// returns how many were removed. A name that matches nothing is not an error.
func (s *ClientService) Delete(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	removed, err := s.clientRepo.DeleteByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to delete client %q: %w", name, err)
	}

	s.logger.Info("client_deleted", "name", name, "removed", removed)
	return removed, nil
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clientRepo.List(ctx)
}

// Search lists clients through the query/order/pagination filter and
// returns the matching page with the total count.
func (s *ClientService) Search(ctx context.Context, filter repository.ClientFilter) ([]*domain.Client, int, error) {
	if err := filter.Validate(repository.ClientQueryFields); err != nil {
		return nil, 0, invalidFilter(err)
	}

	clients, err := s.clientRepo.Search(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.clientRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}
