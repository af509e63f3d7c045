package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}

	assert.True(t, IsDuplicateError(dup))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert failed: %w", dup)))

	assert.False(t, IsDuplicateError(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsDuplicateError(errors.New("not a pg error")))
	assert.False(t, IsDuplicateError(nil))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}

	assert.True(t, IsDuplicateConstraintError(dup, "students_email_key"))
	assert.False(t, IsDuplicateConstraintError(dup, "courses_code_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), "students_email_key"))
}
