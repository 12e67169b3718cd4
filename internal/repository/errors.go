package repo

import (
	"errors"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrEmailExists       = errors.New("email already registered")
	ErrEquipmentExists   = errors.New("equipment record for this date, type and team already exists")
	ErrTeamExists        = errors.New("team with this id already exists")
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// isUniqueViolation recognises unique constraint failures from every
// supported driver.
func isUniqueViolation(err error) bool {
	pgErr := &pq.Error{}
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	return false
}
