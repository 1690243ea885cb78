package repository

import (
	"context"

	"github.com/karthikbhat/invoice-hub-service/internal/domain"
)

// ItemRepository defines data access for catalog items.
type ItemRepository interface {
	// ListItems returns all catalog items ordered by name ascending.
	ListItems(ctx context.Context) ([]domain.Item, error)

	// CreateItem inserts a new catalog item and fills in its generated ID.
	// Returns a conflict error if an item with the same name (compared
	// case-insensitively) already exists.
	CreateItem(ctx context.Context, item *domain.Item) error

	// ItemNameExists reports whether a catalog item with the given name
	// exists, compared case-insensitively.
	ItemNameExists(ctx context.Context, name string) (bool, error)
}
