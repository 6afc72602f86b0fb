package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

// listQuery aggregates room numbers per booking. The LEFT JOIN keeps bookings whose
// rooms all failed to resolve, and FILTER turns their NULL aggregate into an empty array.
const listQuery = `
SELECT
	b.id,
	b.created_at,
	c.name AS customer_name,
	c.phone,
	c.email,
	c.address,
	c.tax_id,
	b.check_in,
	b.check_out,
	b.payment_status,
	b.price_per_night,
	b.deposit_amount,
	COALESCE(
		ARRAY_AGG(r.room_number ORDER BY LENGTH(r.room_number), r.room_number)
			FILTER (WHERE r.room_number IS NOT NULL),
		'{}'
	) AS room_numbers
FROM bookings b
JOIN customers c ON c.id = b.customer_id
LEFT JOIN booking_rooms br ON br.booking_id = b.id
LEFT JOIN rooms r ON r.id = br.room_id
GROUP BY b.id, c.id
ORDER BY b.created_at DESC, b.id`

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
	GetAllViews(ctx context.Context) ([]model.BookingView, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAllViews returns every booking newest first.
func (r *repositoryImpl) GetAllViews(ctx context.Context) ([]model.BookingView, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetAllViews")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, listQuery)

	views := []model.BookingView{}

	if err := r.db.Read.SelectContext(ctx, &views, listQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return views, fmt.Errorf("failed to get booking views: %w", err)
	}

	return views, nil
}
