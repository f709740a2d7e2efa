// Package repository implements data persistence for service records.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx(). PostgreSQL uses native UUID types, MySQL uses BINARY(16).
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/pcoetsee/settings-service/internal/database"
	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
)

// PostgreSQLServiceRepository implements Service persistence for PostgreSQL.
type PostgreSQLServiceRepository struct {
	db *sql.DB
}

// NewPostgreSQLServiceRepository creates a new PostgreSQL Service repository.
func NewPostgreSQLServiceRepository(db *sql.DB) *PostgreSQLServiceRepository {
	return &PostgreSQLServiceRepository{db: db}
}

// Create inserts a new service. A live record with the same name under
// case-insensitive comparison yields ErrServiceAlreadyExists.
func (p *PostgreSQLServiceRepository) Create(ctx context.Context, svc *servicesDomain.Service) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO services (id, name, password, role, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		svc.ID,
		svc.Name,
		svc.PasswordHash,
		svc.Role.String(),
		svc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return servicesDomain.ErrServiceAlreadyExists
		}
		return database.WrapError(err, "failed to create service")
	}
	return nil
}

// GetByName retrieves a service by name. Matching is case-insensitive, the
// same as the unique index on LOWER(name) that guards registration.
func (p *PostgreSQLServiceRepository) GetByName(
	ctx context.Context,
	name string,
) (*servicesDomain.Service, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, password, role, created_at FROM services WHERE LOWER(name) = LOWER($1)`

	var svc servicesDomain.Service
	var role string

	err := querier.QueryRowContext(ctx, query, name).Scan(
		&svc.ID,
		&svc.Name,
		&svc.PasswordHash,
		&role,
		&svc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servicesDomain.ErrServiceNotFound
		}
		return nil, database.WrapError(err, "failed to get service by name")
	}

	svc.Role = servicesDomain.Role(role)
	return &svc, nil
}

// Update replaces the full record identified by the service's id.
// Returns ErrServiceNotFound when the id has no row.
func (p *PostgreSQLServiceRepository) Update(ctx context.Context, svc *servicesDomain.Service) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE services
			  SET name = $1,
			  	  password = $2,
				  role = $3,
				  created_at = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(
		ctx,
		query,
		svc.Name,
		svc.PasswordHash,
		svc.Role.String(),
		svc.CreatedAt,
		svc.ID,
	)
	if err != nil {
		return database.WrapError(err, "failed to update service")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return database.WrapError(err, "failed to read update result")
	}
	if affected == 0 {
		return servicesDomain.ErrServiceNotFound
	}

	return nil
}

// List retrieves services ordered by id ascending with pagination support.
// Returns an empty slice when the window is past the end; the caller decides
// what an empty store means.
func (p *PostgreSQLServiceRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*servicesDomain.Service, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, password, role, created_at
			  FROM services
			  ORDER BY id ASC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, database.WrapError(err, "failed to list services")
	}
	defer func() {
		_ = rows.Close()
	}()

	// Initialize empty slice to avoid returning nil for empty results
	services := make([]*servicesDomain.Service, 0)
	for rows.Next() {
		var svc servicesDomain.Service
		var role string

		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.PasswordHash,
			&role,
			&svc.CreatedAt,
		)
		if err != nil {
			return nil, database.WrapError(err, "failed to scan service row")
		}

		svc.Role = servicesDomain.Role(role)
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, database.WrapError(err, "error iterating service rows")
	}

	return services, nil
}

// Count returns the total number of live services.
func (p *PostgreSQLServiceRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&count)
	if err != nil {
		return 0, database.WrapError(err, "failed to count services")
	}

	return count, nil
}

// isUniqueViolation checks if the error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint"
	// MySQL: "Error 1062 ... Duplicate entry"
	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate entry")
}
