package postgresql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}
	unique := &pgconn.PgError{Code: "23505"}

	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("delete: %w", fk)))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.False(t, IsForeignKeyViolation(errors.New("23503")))
	assert.False(t, IsForeignKeyViolation(nil))

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
}

func TestConstraintName(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: "recipes_product_id_fkey"})

	assert.Equal(t, "recipes_product_id_fkey", ConstraintName(err))
	assert.Empty(t, ConstraintName(errors.New("boom")))
}
