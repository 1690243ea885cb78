package repository

import (
	"context"

	"github.com/karthikbhat/invoice-hub-service/internal/database"
	"github.com/karthikbhat/invoice-hub-service/internal/domain"
)

// PostgresItemRepository implements ItemRepository using PostgreSQL.
type PostgresItemRepository struct {
	db *database.PostgresDB
}

// NewPostgresItemRepository creates a new PostgreSQL item repository.
func NewPostgresItemRepository(db *database.PostgresDB) ItemRepository {
	return &PostgresItemRepository{db: db}
}

// ListItems returns all catalog items ordered by name ascending.
func (r *PostgresItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Pool().Query(ctx, `
		SELECT id, name, unit_price, gst_percent
		FROM items
		ORDER BY name
	`)
	if err != nil {
		return nil, domain.NewPersistenceError("query items", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.UnitPrice, &it.GSTPercent); err != nil {
			return nil, domain.NewPersistenceError("scan item", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("iterate items", err)
	}

	return items, nil
}

// CreateItem inserts a new catalog item and fills in its generated ID.
func (r *PostgresItemRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	err := r.db.Pool().QueryRow(ctx, `
		INSERT INTO items (name, unit_price, gst_percent)
		VALUES ($1, $2, $3)
		RETURNING id
	`, item.Name, item.UnitPrice, item.GSTPercent).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("Item already exists")
		}
		return domain.NewPersistenceError("insert item", err)
	}

	return nil
}

// ItemNameExists reports whether a catalog item with the given name
// exists, compared case-insensitively.
func (r *PostgresItemRepository) ItemNameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.Pool().QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM items WHERE LOWER(name) = LOWER($1))
	`, name).Scan(&exists)
	if err != nil {
		return false, domain.NewPersistenceError("check item name", err)
	}

	return exists, nil
}
