package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	ResolveNumbersTx(ctx context.Context, sqltx *sqlx.Tx, roomNumbers []string) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ResolveNumbersTx looks up every room number in one round trip. Numbers without a room are absent from the result.
func (r *repositoryImpl) ResolveNumbersTx(ctx context.Context, sqltx *sqlx.Tx, roomNumbers []string) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ResolveNumbersTx")
	defer scope.End()

	rooms := []model.Room{}

	if len(roomNumbers) == 0 {
		return rooms, nil
	}

	query, args, err := resolveNumbersQuery(roomNumbers)
	if err != nil {
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to build room lookup: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	scope.SetAttribute("room_numbers", roomNumbers)

	if err = sqltx.SelectContext(ctx, &rooms, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to resolve room numbers: %w", err)
	}

	return rooms, nil
}

// resolveNumbersQuery binds every room number as one array parameter.
func resolveNumbersQuery(roomNumbers []string) (string, []any, error) {
	filter := gDto.Filter{
		ArgName:  "room_numbers",
		Field:    model.FieldRoomNumber,
		Table:    model.TableName,
		Value:    roomNumbers,
		Operator: gDto.FilterOperatorAny,
	}
	where, namedArgs := filter.GetWhereClause()

	query := fmt.Sprintf(
		"SELECT %s, %s, %s, %s, %s FROM %s WHERE %s",
		model.FieldID, model.FieldRoomNumber, model.FieldType, model.FieldBed, model.FieldFloor,
		model.TableName, where,
	)

	query, args, err := sqlx.Named(query, namedArgs)
	if err != nil {
		return "", nil, err
	}

	return sqlx.Rebind(sqlx.DOLLAR, query), args, nil
}
