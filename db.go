package xlsq

import (
	"database/sql"

	"github.com/pkg/errors"

	// sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// OpenDatabase opens (creating it if needed) the sqlite database at path.
func OpenDatabase(path string) (db *sql.DB, err error) {
	connStr := "file:" + path + "?cache=shared&mode=rwc&_journal_mode=WAL&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", connStr)
	if err != nil {
		return db, errors.Wrap(err, "database open failed")
	}
	db.SetMaxOpenConns(1)

	return
}
