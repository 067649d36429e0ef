package sqlite

import (
	"errors"
	"strings"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// storeErr classifies a failed statement as a constraint violation or a
// generic store error.
func storeErr(op string, err error) error {
	kind := domain.ErrStore
	if isConstraint(err) {
		kind = domain.ErrConstraint
	}
	return &domain.StoreError{Op: op, Kind: kind, Err: err}
}

func isConstraint(err error) bool {
	var se *msqlite.Error
	if errors.As(err, &se) {
		// extended codes keep the primary code in the low byte
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return strings.Contains(err.Error(), "constraint failed")
}
