package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/cleaning/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type CleaningStatus interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CleaningStatus, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.CleaningStatus]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) CleaningStatus {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CleaningStatus](model.EntityName, model.TableName, model.FieldRoomID, db, otel),
		db:         db,
		otel:       otel,
	}
}
