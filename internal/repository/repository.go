package repository

import (
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // register postgres dialect
)

type Repository struct {
	DB            *sql.DB
	GoquDBWrapper *goqu.Database
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DB:            db,
		GoquDBWrapper: goqu.New("postgres", db),
	}
}

// HasTable reports whether a table is provisioned in the current schema.
// History sources are optional features; an adapter probes once per call and
// treats a missing table as an empty source. to_regclass returns NULL for an
// unknown relation without erroring, so a query error here is a real database
// failure and is returned, never folded into "source absent".
func (r *Repository) HasTable(name string) (bool, error) {
	var regclass sql.NullString
	err := r.DB.QueryRow(`SELECT to_regclass($1)`, name).Scan(&regclass)
	if err != nil {
		return false, fmt.Errorf("failed to check for table %s: %w", name, err)
	}
	return regclass.Valid, nil
}
