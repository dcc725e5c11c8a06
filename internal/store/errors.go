package store

import (
	"errors"

	"bookservice/internal/book"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// translateError maps driver errors the service can describe to domain errors.
// A foreign key violation on books.author_id means the author vanished
// between lookup and write.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return errors.Join(book.ErrAuthorNotFound, err)
	}
	return err
}
