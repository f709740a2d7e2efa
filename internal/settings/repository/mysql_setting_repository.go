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

// MySQLSettingRepository implements Setting persistence for MySQL.
// UUIDs are stored as BINARY(16).
type MySQLSettingRepository struct {
	db *sql.DB
}

// NewMySQLSettingRepository creates a new MySQL Setting repository.
func NewMySQLSettingRepository(db *sql.DB) *MySQLSettingRepository {
	return &MySQLSettingRepository{db: db}
}

// Create inserts a new setting for an owner.
func (m *MySQLSettingRepository) Create(ctx context.Context, setting *settingsDomain.Setting) error {
	querier := database.GetTx(ctx, m.db)

	id, err := setting.ID.MarshalBinary()
	if err != nil {
		return database.WrapError(err, "failed to marshal setting id")
	}
	serviceID, err := setting.ServiceID.MarshalBinary()
	if err != nil {
		return database.WrapError(err, "failed to marshal service id")
	}

	query := `INSERT INTO settings (id, service_id, name, value, date_last_used)
			  VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		serviceID,
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
func (m *MySQLSettingRepository) Update(ctx context.Context, setting *settingsDomain.Setting) error {
	querier := database.GetTx(ctx, m.db)

	id, err := setting.ID.MarshalBinary()
	if err != nil {
		return database.WrapError(err, "failed to marshal setting id")
	}

	query := `UPDATE settings
			  SET name = ?,
			  	  value = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, setting.Name, setting.Value, id)
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
func (m *MySQLSettingRepository) GetByOwnerAndName(
	ctx context.Context,
	serviceID uuid.UUID,
	name string,
) (*settingsDomain.Setting, error) {
	querier := database.GetTx(ctx, m.db)

	ownerID, err := serviceID.MarshalBinary()
	if err != nil {
		return nil, database.WrapError(err, "failed to marshal service id")
	}

	query := `SELECT id, service_id, name, value, date_last_used
			  FROM settings
			  WHERE service_id = ? AND name = ?`

	var setting settingsDomain.Setting
	var idBytes, serviceIDBytes []byte

	err = querier.QueryRowContext(ctx, query, ownerID, name).Scan(
		&idBytes,
		&serviceIDBytes,
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

	if err := setting.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, database.WrapError(err, "failed to unmarshal setting id")
	}
	if err := setting.ServiceID.UnmarshalBinary(serviceIDBytes); err != nil {
		return nil, database.WrapError(err, "failed to unmarshal service id")
	}

	return &setting, nil
}

// TouchDateLastUsed marks the setting as read at the given time.
func (m *MySQLSettingRepository) TouchDateLastUsed(
	ctx context.Context,
	settingID uuid.UUID,
	usedAt time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	id, err := settingID.MarshalBinary()
	if err != nil {
		return database.WrapError(err, "failed to marshal setting id")
	}

	query := `UPDATE settings SET date_last_used = ? WHERE id = ?`

	_, err = querier.ExecContext(ctx, query, usedAt, id)
	if err != nil {
		return database.WrapError(err, "failed to touch setting")
	}
	return nil
}

// ListByOwner retrieves an owner's settings ordered by id ascending with
// pagination support. Returns an empty slice when the owner has none.
func (m *MySQLSettingRepository) ListByOwner(
	ctx context.Context,
	serviceID uuid.UUID,
	offset, limit int,
) ([]*settingsDomain.Setting, error) {
	querier := database.GetTx(ctx, m.db)

	ownerID, err := serviceID.MarshalBinary()
	if err != nil {
		return nil, database.WrapError(err, "failed to marshal service id")
	}

	query := `SELECT id, service_id, name, value, date_last_used
			  FROM settings
			  WHERE service_id = ?
			  ORDER BY id ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, ownerID, limit, offset)
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
		var idBytes, serviceIDBytes []byte

		err := rows.Scan(
			&idBytes,
			&serviceIDBytes,
			&setting.Name,
			&setting.Value,
			&setting.DateLastUsed,
		)
		if err != nil {
			return nil, database.WrapError(err, "failed to scan setting row")
		}

		if err := setting.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, database.WrapError(err, "failed to unmarshal setting id")
		}
		if err := setting.ServiceID.UnmarshalBinary(serviceIDBytes); err != nil {
			return nil, database.WrapError(err, "failed to unmarshal service id")
		}

		settings = append(settings, &setting)
	}

	if err := rows.Err(); err != nil {
		return nil, database.WrapError(err, "error iterating setting rows")
	}

	return settings, nil
}

// CountByOwner returns the owner's total number of settings.
func (m *MySQLSettingRepository) CountByOwner(
	ctx context.Context,
	serviceID uuid.UUID,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	ownerID, err := serviceID.MarshalBinary()
	if err != nil {
		return 0, database.WrapError(err, "failed to marshal service id")
	}

	var count int64
	err = querier.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM settings WHERE service_id = ?`,
		ownerID,
	).Scan(&count)
	if err != nil {
		return 0, database.WrapError(err, "failed to count settings")
	}

	return count, nil
}

// Delete removes the owner's setting with the given name. Reports whether a
// row was actually removed; a miss is not an error.
func (m *MySQLSettingRepository) Delete(
	ctx context.Context,
	serviceID uuid.UUID,
	name string,
) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	ownerID, err := serviceID.MarshalBinary()
	if err != nil {
		return false, database.WrapError(err, "failed to marshal service id")
	}

	query := `DELETE FROM settings WHERE service_id = ? AND name = ?`

	result, err := querier.ExecContext(ctx, query, ownerID, name)
	if err != nil {
		return false, database.WrapError(err, "failed to delete setting")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, database.WrapError(err, "failed to read delete result")
	}

	return affected > 0, nil
}
