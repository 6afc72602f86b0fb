package repository_test

import (
	"errors"
	"fmt"
	"frontdesk/shared/repository"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint \"bookings_pkey\""}
	fk := &pq.Error{Code: "23503", Message: "insert or update on table \"bookings\" violates foreign key constraint"}

	assert.True(t, repository.IsUniqueViolation(unique))
	assert.True(t, repository.IsUniqueViolation(fmt.Errorf("failed to insert data (booking): %w", unique)))
	assert.False(t, repository.IsUniqueViolation(fk))
	assert.False(t, repository.IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, repository.IsUniqueViolation(nil))

	assert.True(t, repository.IsForeignKeyViolation(fk))
	assert.False(t, repository.IsForeignKeyViolation(unique))
}
