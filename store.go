package main

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when the referenced id does not exist
	ErrNotFound = errors.New("record not found")
	// ErrTitleRequired is returned when a create or update would leave a
	// record without a title
	ErrTitleRequired = errors.New("title is required")
)

// CreateTables creates the todo and book tables if they do not exist yet.
// The id column keyword differs per driver; sqlite needs AUTOINCREMENT so
// that ids of deleted rows are never reassigned.
func CreateTables(db *sql.DB, driver string) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == "mysql" {
		idColumn = "INT AUTO_INCREMENT PRIMARY KEY"
	}

	statements := []string{
		fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS todo (
            id %s,
            title VARCHAR(100) NOT NULL,
            is_done BOOLEAN NOT NULL DEFAULT FALSE,
            created_at DATETIME NOT NULL,
            updated_at DATETIME NOT NULL
        )`, idColumn),
		fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS book (
            id %s,
            title VARCHAR(100) NOT NULL,
            is_discontinued BOOLEAN NOT NULL DEFAULT FALSE,
            category VARCHAR(50),
            rating DOUBLE,
            quantity INT,
            created_at DATETIME NOT NULL,
            updated_at DATETIME NOT NULL
        )`, idColumn),
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// now returns the current time at the precision the schema and the wire
// format carry.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// parseStamp parses a DATETIME column read back as text. Both drivers
// return exactly what was written, which is always timeLayout.
func parseStamp(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
