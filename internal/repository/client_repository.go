package repository

import (
	"context"

	"github.com/karthikbhat/invoice-hub-service/internal/domain"
)

// ClientRepository defines data access for clients.
type ClientRepository interface {
	// ListClients returns all clients ordered by name ascending.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// CreateClient inserts a new client and fills in its generated ID.
	// Returns a conflict error if a client with the same name (compared
	// case-insensitively) already exists.
	CreateClient(ctx context.Context, client *domain.Client) error

	// ClientNameExists reports whether a client with the given name
	// exists, compared case-insensitively.
	ClientNameExists(ctx context.Context, name string) (bool, error)
}
