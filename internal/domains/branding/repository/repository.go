package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/branding/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"
)

type Setting interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Setting, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Setting]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Setting {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Setting](model.EntityName, model.TableName, model.FieldKey, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Put stores value under key, replacing any previous value.
func (r *repositoryImpl) Put(ctx context.Context, key, value string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".setting.Put")
	defer scope.End()

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s) VALUES (:%s, :%s, :%s) ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s",
		model.TableName, model.FieldKey, model.FieldValue, model.FieldUpdatedAt,
		model.FieldKey, model.FieldValue, model.FieldUpdatedAt,
		model.FieldKey,
		model.FieldValue, model.FieldValue,
		model.FieldUpdatedAt, model.FieldUpdatedAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	setting := model.Setting{Key: key, Value: value, UpdatedAt: timezone.Now()}

	if _, err := r.db.Write.NamedExecContext(ctx, query, setting); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to put setting %s: %w", key, err)
	}

	return nil
}
