package repository

import (
	"errors"
	"frontdesk/shared/constant"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err came from a postgres unique constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

// IsForeignKeyViolation reports whether err came from a postgres foreign key constraint.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeFkViolation
	}

	return false
}
