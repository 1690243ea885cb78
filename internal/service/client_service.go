package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/karthikbhat/invoice-hub-service/internal/domain"
	"github.com/karthikbhat/invoice-hub-service/internal/model"
	"github.com/karthikbhat/invoice-hub-service/internal/repository"
)

// minNameLength is the minimum length for client and item names,
// counted in characters after trimming.
const minNameLength = 2

// ClientService defines the business logic for clients.
type ClientService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, req *model.CreateClientRequest) (*domain.Client, error)
}

// ClientServiceImpl implements ClientService.
type ClientServiceImpl struct {
	repo repository.ClientRepository
}

// NewClientService creates a new ClientService.
func NewClientService(repo repository.ClientRepository) ClientService {
	return &ClientServiceImpl{repo: repo}
}

// ListClients returns all clients ordered by name.
func (s *ClientServiceImpl) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.repo.ListClients(ctx)
}

// CreateClient validates and persists a new client. The name must be at
// least two characters after trimming and unique case-insensitively.
func (s *ClientServiceImpl) CreateClient(ctx context.Context, req *model.CreateClientRequest) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < minNameLength {
		return nil, domain.NewValidationError("Client name must be at least 2 characters")
	}

	exists, err := s.repo.ClientNameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewConflictError("Client already exists")
	}

	client := &domain.Client{
		Name:    name,
		Email:   normalizeOptional(req.Email),
		Address: normalizeOptional(req.Address),
	}
	if err := s.repo.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// normalizeOptional trims s and treats the empty string as absent.
func normalizeOptional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
