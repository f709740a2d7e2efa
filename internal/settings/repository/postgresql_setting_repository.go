// Package repository implements data persistence for settings.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx(). PostgreSQL uses native UUID types, MySQL uses BINARY(16).
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pcoetsee/settings-service/internal/database"
	settingsDomain "github.com/pcoetsee/settings-service/internal/settings/domain"
)

// PostgreSQLSettingRepository implements Setting persistence for PostgreSQL.
type PostgreSQLSettingRepository struct {
	db *sql.DB
}

// NewPostgreSQLSettingRepository creates a new PostgreSQL Setting repository.
func NewPostgreSQLSettingRepository(db *sql.DB) *PostgreSQLSettingRepository {
	return &PostgreSQLSettingRepository{db: db}
}

// Create inserts a new setting for an owner.
func (p *PostgreSQLSettingRepository) Create(ctx context.Context, setting *settingsDomain.Setting) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO settings (id, service_id, name, value, date_last_used)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		setting.ID,
		setting.ServiceID,
		setting.Name,
		setting.Value,
		setting.DateLastUsed,
	)
	if err != nil {
		return database.WrapError(err, "failed to create setting")
	}
	return nil
}

// Update replaces the value of the setting identified by its id. The owner
// and the date-last-used marker are left untouched.
func (p *PostgreSQLSettingRepository) Update(ctx context.Context, setting *settingsDomain.Setting) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE settings
			  SET name = $1,
			  	  value = $2
			  WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, setting.Name, setting.Value, setting.ID)
	if err != nil {
		return database.WrapError(err, "failed to update setting")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return database.WrapError(err, "failed to read update result")
	}
	if affected == 0 {
		return settingsDomain.ErrSettingNotFound
	}

	return nil
}

// GetByOwnerAndName retrieves a setting by its owner and exact name.
func (p *PostgreSQLSettingRepository) GetByOwnerAndName(
	ctx context.Context,
	serviceID uuid.UUID,
	name string,
) (*settingsDomain.Setting, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, service_id, name, value, date_last_used
			  FROM settings
			  WHERE service_id = $1 AND name = $2`

	var setting settingsDomain.Setting

	err := querier.QueryRowContext(ctx, query, serviceID, name).Scan(
		&setting.ID,
		&setting.ServiceID,
		&setting.Name,
		&setting.Value,
		&setting.DateLastUsed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settingsDomain.ErrSettingNotFound
		}
		return nil, database.WrapError(err, "failed to get setting")
	}

	return &setting, nil
}

// TouchDateLastUsed marks the setting as read at the given time.
func (p *PostgreSQLSettingRepository) TouchDateLastUsed(
	ctx context.Context,
	settingID uuid.UUID,
	usedAt time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE settings SET date_last_used = $1 WHERE id = $2`

	_, err := querier.ExecContext(ctx, query, usedAt, settingID)
	if err != nil {
		return database.WrapError(err, "failed to touch setting")
	}
	return nil
}

// ListByOwner retrieves an owner's settings ordered by id ascending with
// pagination support. Returns an empty slice when the owner has none.
func (p *PostgreSQLSettingRepository) ListByOwner(
	ctx context.Context,
	serviceID uuid.UUID,
	offset, limit int,
) ([]*settingsDomain.Setting, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, service_id, name, value, date_last_used
			  FROM settings
			  WHERE service_id = $1
			  ORDER BY id ASC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, serviceID, limit, offset)
	if err != nil {
		return nil, database.WrapError(err, "failed to list settings")
	}
	defer func() {
		_ = rows.Close()
	}()

	// Initialize empty slice to avoid returning nil for empty results
	settings := make([]*settingsDomain.Setting, 0)
	for rows.Next() {
		var setting settingsDomain.Setting

		err := rows.Scan(
			&setting.ID,
			&setting.ServiceID,
			&setting.Name,
			&setting.Value,
			&setting.DateLastUsed,
		)
		if err != nil {
			return nil, database.WrapError(err, "failed to scan setting row")
		}

		settings = append(settings, &setting)
	}

	if err := rows.Err(); err != nil {
		return nil, database.WrapError(err, "error iterating setting rows")
	}

	return settings, nil
}

// CountByOwner returns the owner's total number of settings.
func (p *PostgreSQLSettingRepository) CountByOwner(
	ctx context.Context,
	serviceID uuid.UUID,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	var count int64
	err := querier.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM settings WHERE service_id = $1`,
		serviceID,
	).Scan(&count)
	if err != nil {
		return 0, database.WrapError(err, "failed to count settings")
	}

	return count, nil
}

// Delete removes the owner's setting with the given name. Reports whether a
// row was actually removed; a miss is not an error.
func (p *PostgreSQLSettingRepository) Delete(
	ctx context.Context,
	serviceID uuid.UUID,
	name string,
) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM settings WHERE service_id = $1 AND name = $2`

	result, err := querier.ExecContext(ctx, query, serviceID, name)
	if err != nil {
		return false, database.WrapError(err, "failed to delete setting")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, database.WrapError(err, "failed to read delete result")
	}

	return affected > 0, nil
}
