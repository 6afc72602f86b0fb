package repository

//go:generate go run go.uber.org/mock/mockgen -source=./assignment.go -destination=../mocks/assignment_mock.go -package=mocks

import (
	"context"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Assignment interface {
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int64, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Assignment) error
}

type assignmentImpl struct {
	gRepo.Repository[model.Assignment]
}

func NewAssignment(db *postgres.Connection, otel otel.Otel) Assignment {
	return &assignmentImpl{
		Repository: gRepo.NewRepository[model.Assignment](model.AssignmentEntityName, model.AssignmentTableName, model.FieldBookingID, db, otel),
	}
}
