package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// credentialRowID - ключ API хранится в единственной строке
const credentialRowID = 1

// CredentialRepository хранит ключ API в PostgreSQL.
// Реализует domain.CredentialStore.
type CredentialRepository struct {
	db DBTX
}

// NewCredentialRepository создает новый CredentialRepository
func NewCredentialRepository(db DBTX) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Load возвращает сохраненный ключ или пустую строку, если ключ не сохранялся
func (r *CredentialRepository) Load(ctx context.Context) (string, error) {
	var key string

	err := r.db.QueryRow(ctx,
		`SELECT api_key
		 FROM credentials
		 WHERE id = $1`,
		credentialRowID,
	).Scan(&key)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		if isUndefinedTable(err) {
			return "", ErrSchemaMissing
		}
		return "", fmt.Errorf("repository: failed to load credential: %w", err)
	}

	return key, nil
}

// Save сохраняет ключ, заменяя предыдущий
func (r *CredentialRepository) Save(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO credentials (id, api_key, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (id) DO UPDATE
		 SET api_key = EXCLUDED.api_key, updated_at = EXCLUDED.updated_at`,
		credentialRowID, key,
	)
	if err != nil {
		if isUndefinedTable(err) {
			return ErrSchemaMissing
		}
		return fmt.Errorf("repository: failed to save credential: %w", err)
	}

	return nil
}
