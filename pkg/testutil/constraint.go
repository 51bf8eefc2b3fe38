package testutil

import (
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// RequireConstraint asserts that err is the sqlite error raised when the
// store rejects a row for the given constraint kind, for example
// sqlite3.ErrConstraintUnique or sqlite3.ErrConstraintForeignKey.
func RequireConstraint(t *testing.T, err error, code sqlite3.ErrNoExtended) {
	t.Helper()

	var sqliteErr sqlite3.Error
	require.ErrorAs(t, err, &sqliteErr)
	require.Equal(t, code, sqliteErr.ExtendedCode, sqliteErr.Error())
}
