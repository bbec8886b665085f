package database

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// isForeignKeyViolation reports whether err is a foreign key violation raised
// by either PostgreSQL (23503) or SQLite.
func isForeignKeyViolation(err error) bool {
	var pge *pq.Error
	if errors.As(err, &pge) {
		return string(pge.Code) == pgerrcode.ForeignKeyViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
