package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrSchemaMissing возвращается, если таблица ключа не создана
var ErrSchemaMissing = errors.New("credentials table does not exist, run migrations first")

// undefinedTable - код ошибки PostgreSQL для отсутствующей таблицы
const undefinedTable = "42P01"

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTable
}
