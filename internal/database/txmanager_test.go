package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pcoetsee/settings-service/internal/errors"
)

func TestWithTx_Commit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectCommit()

	txManager := NewTxManager(db)
	err = txManager.WithTx(context.Background(), func(ctx context.Context) error {
		// Verify the transaction is available via GetTx
		querier := GetTx(ctx, db)
		assert.IsType(t, &sql.Tx{}, querier)
		return nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectRollback()

	txManager := NewTxManager(db)
	testError := errors.New("boom")
	err = txManager.WithTx(context.Background(), func(ctx context.Context) error {
		return testError
	})

	assert.Equal(t, testError, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin().WillReturnError(errors.New("begin failed"))

	txManager := NewTxManager(db)
	err = txManager.WithTx(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn should not run when begin fails")
		return nil
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTx_WithoutTransaction(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	querier := GetTx(context.Background(), db)
	assert.Equal(t, db, querier)
}

func TestWrapError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, WrapError(nil, "context"))
	})

	t.Run("deadline exceeded classifies as unavailable", func(t *testing.T) {
		err := WrapError(context.DeadlineExceeded, "failed to query")
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	})

	t.Run("cancellation classifies as unavailable", func(t *testing.T) {
		err := WrapError(context.Canceled, "failed to query")
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	})

	t.Run("bad connection classifies as unavailable", func(t *testing.T) {
		err := WrapError(driver.ErrBadConn, "failed to query")
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	})

	t.Run("other errors keep their chain", func(t *testing.T) {
		base := errors.New("syntax error")
		err := WrapError(base, "failed to query")
		assert.ErrorIs(t, err, base)
		assert.NotErrorIs(t, err, apperrors.ErrUnavailable)
	})
}
