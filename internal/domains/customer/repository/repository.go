package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/customer/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Customer interface {
	UpsertTx(ctx context.Context, sqltx *sqlx.Tx, customer model.Customer) (string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpsertTx inserts the customer or, when (name, phone) already exists, overwrites its
// contact fields. It returns the id of the row that now holds the customer.
func (r *repositoryImpl) UpsertTx(ctx context.Context, sqltx *sqlx.Tx, customer model.Customer) (string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.UpsertTx")
	defer scope.End()

	placeholders := make([]string, 0, len(r.InsertColumns))
	for _, col := range r.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s RETURNING %s",
		model.TableName, strings.Join(r.InsertColumns, ", "), strings.Join(placeholders, ", "),
		model.FieldName, model.FieldPhone,
		model.FieldEmail, model.FieldEmail,
		model.FieldAddress, model.FieldAddress,
		model.FieldTaxID, model.FieldTaxID,
		model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return constant.Empty, fmt.Errorf("failed to prepare customer upsert: %w", err)
	}
	defer stmt.Close()

	var id string
	if err = stmt.GetContext(ctx, &id, customer); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return constant.Empty, fmt.Errorf("failed to upsert customer: %w", err)
	}

	return id, nil
}
