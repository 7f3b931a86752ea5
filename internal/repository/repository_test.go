package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	_ "github.com/lib/pq"
)

// A failing probe must surface as an error, not masquerade as a missing
// table: otherwise a dropped connection would silently truncate a timeline.
func TestHasTablePropagatesQueryErrors(t *testing.T) {
	db, err := sql.Open("postgres", "postgres://localhost:5432/facility?sslmode=disable")
	assert.NoError(t, err)
	assert.NoError(t, db.Close())

	repo := NewRepository(db)

	provisioned, err := repo.HasTable("activity_log")
	assert.False(t, provisioned)
	assert.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}
