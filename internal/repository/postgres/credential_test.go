package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepository_Load(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"api_key"}).AddRow("stored-key")

		mock.ExpectQuery(`SELECT api_key`).
			WithArgs(credentialRowID).
			WillReturnRows(rows)

		key, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "stored-key", key)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing stored", func(t *testing.T) {
		mock.ExpectQuery(`SELECT api_key`).
			WithArgs(credentialRowID).
			WillReturnError(pgx.ErrNoRows)

		key, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, key)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Table missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT api_key`).
			WithArgs(credentialRowID).
			WillReturnError(&pgconn.PgError{Code: undefinedTable})

		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, ErrSchemaMissing)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT api_key`).
			WithArgs(credentialRowID).
			WillReturnError(errors.New("database error"))

		_, err := repo.Load(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load credential")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCredentialRepository_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO credentials`).
			WithArgs(credentialRowID, "new-key").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Save(ctx, "new-key")
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Table missing", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO credentials`).
			WithArgs(credentialRowID, "new-key").
			WillReturnError(&pgconn.PgError{Code: undefinedTable})

		err := repo.Save(ctx, "new-key")
		assert.ErrorIs(t, err, ErrSchemaMissing)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO credentials`).
			WithArgs(credentialRowID, "new-key").
			WillReturnError(errors.New("database error"))

		err := repo.Save(ctx, "new-key")
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
