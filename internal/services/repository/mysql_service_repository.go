package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pcoetsee/settings-service/internal/database"
	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
)

// MySQLServiceRepository implements Service persistence for MySQL.
// UUIDs are stored as BINARY(16).
type MySQLServiceRepository struct {
	db *sql.DB
}

// NewMySQLServiceRepository creates a new MySQL Service repository.
func NewMySQLServiceRepository(db *sql.DB) *MySQLServiceRepository {
	return &MySQLServiceRepository{db: db}
}

// Create inserts a new service. A live record with the same name under
// case-insensitive comparison yields ErrServiceAlreadyExists.
func (m *MySQLServiceRepository) Create(ctx context.Context, svc *servicesDomain.Service) error {
	querier := database.GetTx(ctx, m.db)

	id, err := svc.ID.MarshalBinary()
	if err != nil {
		return database.WrapError(err, "failed to marshal service id")
	}

	query := `INSERT INTO services (id, name, password, role, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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

// GetByName retrieves a service by name. The utf8mb4 collation on the name
// column makes the match case-insensitive, matching the PostgreSQL repository.
func (m *MySQLServiceRepository) GetByName(
	ctx context.Context,
	name string,
) (*servicesDomain.Service, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, password, role, created_at FROM services WHERE name = ?`

	var svc servicesDomain.Service
	var idBytes []byte
	var role string

	err := querier.QueryRowContext(ctx, query, name).Scan(
		&idBytes,
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

	if err := svc.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, database.WrapError(err, "failed to unmarshal service id")
	}

	svc.Role = servicesDomain.Role(role)
	return &svc, nil
}

// Update replaces the full record identified by the service's id.
// Returns ErrServiceNotFound when the id has no row.
func (m *MySQLServiceRepository) Update(ctx context.Context, svc *servicesDomain.Service) error {
	querier := database.GetTx(ctx, m.db)

	id, err := svc.ID.MarshalBinary()
	if err != nil {
		return database.WrapError(err, "failed to marshal service id")
	}

	query := `UPDATE services
			  SET name = ?,
			  	  password = ?,
				  role = ?,
				  created_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		svc.Name,
		svc.PasswordHash,
		svc.Role.String(),
		svc.CreatedAt,
		id,
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
func (m *MySQLServiceRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*servicesDomain.Service, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, password, role, created_at
			  FROM services
			  ORDER BY id ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, database.WrapError(err, "failed to list services")
	}
	defer func() {
		_ = rows.Close()
	}()

	services := make([]*servicesDomain.Service, 0)
	for rows.Next() {
		var svc servicesDomain.Service
		var idBytes []byte
		var role string

		err := rows.Scan(
			&idBytes,
			&svc.Name,
			&svc.PasswordHash,
			&role,
			&svc.CreatedAt,
		)
		if err != nil {
			return nil, database.WrapError(err, "failed to scan service row")
		}

		if err := svc.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, database.WrapError(err, "failed to unmarshal service id")
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
func (m *MySQLServiceRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&count)
	if err != nil {
		return 0, database.WrapError(err, "failed to count services")
	}

	return count, nil
}
