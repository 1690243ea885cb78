package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/karthikbhat/invoice-hub-service/internal/database"
	"github.com/karthikbhat/invoice-hub-service/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations. The schema carries unique indexes on LOWER(name), which
// closes the race between concurrent check-then-insert requests.
const uniqueViolation = "23505"

// PostgresClientRepository implements ClientRepository using PostgreSQL.
type PostgresClientRepository struct {
	db *database.PostgresDB
}

// NewPostgresClientRepository creates a new PostgreSQL client repository.
func NewPostgresClientRepository(db *database.PostgresDB) ClientRepository {
	return &PostgresClientRepository{db: db}
}

// ListClients returns all clients ordered by name ascending.
func (r *PostgresClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.Pool().Query(ctx, `
		SELECT id, name, email, address
		FROM clients
		ORDER BY name
	`)
	if err != nil {
		return nil, domain.NewPersistenceError("query clients", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Address); err != nil {
			return nil, domain.NewPersistenceError("scan client", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("iterate clients", err)
	}

	return clients, nil
}

// CreateClient inserts a new client and fills in its generated ID.
func (r *PostgresClientRepository) CreateClient(ctx context.Context, client *domain.Client) error {
	err := r.db.Pool().QueryRow(ctx, `
		INSERT INTO clients (name, email, address)
		VALUES ($1, $2, $3)
		RETURNING id
	`, client.Name, client.Email, client.Address).Scan(&client.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("Client already exists")
		}
		return domain.NewPersistenceError("insert client", err)
	}

	return nil
}

// ClientNameExists reports whether a client with the given name exists,
// compared case-insensitively.
func (r *PostgresClientRepository) ClientNameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.Pool().QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM clients WHERE LOWER(name) = LOWER($1))
	`, name).Scan(&exists)
	if err != nil {
		return false, domain.NewPersistenceError("check client name", err)
	}

	return exists, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
