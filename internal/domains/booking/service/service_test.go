package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/postgres"
	pgMocks "frontdesk/infras/postgres/mocks"
	idgenMocks "frontdesk/internal/domains/booking/idgen/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	customerModel "frontdesk/internal/domains/customer/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"
)

type fixture struct {
	repo           *bookingMocks.MockBooking
	assignmentRepo *bookingMocks.MockAssignment
	customerRepo   *customerMocks.MockCustomer
	roomRepo       *roomMocks.MockRoom
	transactor     *pgMocks.MockTransactor
	idGenerator    *idgenMocks.MockGenerator
	cache          *cacheMocks.MockRedisCache
	svc            service.Booking
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:           bookingMocks.NewMockBooking(ctrl),
		assignmentRepo: bookingMocks.NewMockAssignment(ctrl),
		customerRepo:   customerMocks.NewMockCustomer(ctrl),
		roomRepo:       roomMocks.NewMockRoom(ctrl),
		transactor:     pgMocks.NewMockTransactor(ctrl),
		idGenerator:    idgenMocks.NewMockGenerator(ctrl),
		cache:          cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.repo, f.assignmentRepo, f.customerRepo, f.roomRepo, f.transactor, f.idGenerator, cfg, f.cache, mocks.NewOtel())

	return f
}

// runsTransaction makes the transactor call fn directly and hand back its error.
func (f fixture) runsTransaction() {
	f.transactor.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn postgres.TxFunc) error {
			return fn(ctx, nil)
		})
}

func (f fixture) invalidatesBookings() {
	f.cache.EXPECT().NextGeneration(gomock.Any(), "generation:booking").Return(int64(4), nil)
	f.cache.EXPECT().Clear(gomock.Any(), "booking:*").Return(nil)
	f.cache.EXPECT().Delete(gomock.Any(), "booking").Return(nil)
}

func validRequest() dto.UpsertBookingRequest {
	return dto.UpsertBookingRequest{
		ID:            "BK1",
		CustomerName:  "Jane Doe",
		Phone:         "0811111111",
		CheckIn:       "01/06/2024",
		CheckOut:      "03/06/2024",
		RoomIDs:       []string{"101"},
		PaymentStatus: "PAID",
		PricePerNight: decimal.NewFromInt(1000),
	}
}

func rooms(numbers ...string) []roomModel.Room {
	res := make([]roomModel.Room, len(numbers))
	for i, number := range numbers {
		res[i] = roomModel.Room{ID: "room-" + number, RoomNumber: number}
	}

	return res
}

// stayDate is a DATE column as lib/pq scans it.
func stayDate(day, month, year int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	createdAt := time.Date(2024, 5, 20, 2, 30, 0, 0, time.UTC)

	f.cache.EXPECT().Get(gomock.Any(), "booking:all", gomock.Any()).Return(errors.New("cache miss"))
	f.cache.EXPECT().Generation(gomock.Any(), "generation:booking").Return(int64(3), nil)
	f.repo.EXPECT().GetAllViews(gomock.Any()).Return([]model.BookingView{
		{
			ID:            "BK2",
			CreatedAt:     createdAt,
			CustomerName:  "John Roe",
			Phone:         "0822222222",
			CheckIn:       stayDate(5, 6, 2024),
			CheckOut:      stayDate(6, 6, 2024),
			PaymentStatus: "UNPAID",
			PricePerNight: decimal.NewFromInt(800),
			RoomNumbers:   pq.StringArray{},
		},
		{
			ID:            "BK1",
			CreatedAt:     createdAt.Add(-time.Hour),
			CustomerName:  "Jane Doe",
			Phone:         "0811111111",
			CheckIn:       stayDate(1, 6, 2024),
			CheckOut:      stayDate(3, 6, 2024),
			PaymentStatus: "PAID",
			PricePerNight: decimal.NewFromInt(1000),
			RoomNumbers:   pq.StringArray{"101", "102"},
		},
	}, nil)
	f.cache.EXPECT().SaveIfGeneration(gomock.Any(), "booking:all", gomock.Any(), 60, "generation:booking", int64(3)).Return(nil).AnyTimes()

	res, err := f.svc.GetAll(context.Background())
	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "BK2", res[0].ID)
	assert.Equal(t, []string{}, res[0].RoomIDs)
	assert.Equal(t, "BK1", res[1].ID)
	assert.Equal(t, []string{"101", "102"}, res[1].RoomIDs)
	assert.Equal(t, "01/06/2024", res[1].CheckIn)
	assert.Equal(t, "06/06/2024", res[0].CheckOut)
	assert.NotEmpty(t, res[1].Timestamp)
}

func TestBookingService_GetAllFromCache(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "booking:all", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any) error {
			*dest.(*dto.GetBookingsResponse) = dto.GetBookingsResponse{{ID: "BK1"}}

			return nil
		})

	res, err := f.svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "BK1", res[0].ID)
}

func TestBookingService_GetAllRepositoryError(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.cache.EXPECT().Generation(gomock.Any(), "generation:booking").Return(int64(3), nil)
	f.repo.EXPECT().GetAllViews(gomock.Any()).Return(nil, errors.New("database error"))

	_, err := f.svc.GetAll(context.Background())

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestBookingService_Create(t *testing.T) {
	t.Run("stores customer, booking and rooms in one transaction", func(t *testing.T) {
		f := newFixture(t)
		f.runsTransaction()

		f.customerRepo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, customer customerModel.Customer) (string, error) {
				assert.Equal(t, "Jane Doe", customer.Name)
				assert.Equal(t, "0811111111", customer.Phone)
				assert.Nil(t, customer.Email)

				return "cust-1", nil
			})
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				assert.Equal(t, "BK1", booking.ID)
				assert.Equal(t, "cust-1", booking.CustomerID)
				assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), booking.CheckIn)
				assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), booking.CheckOut)
				assert.Equal(t, "PAID", booking.PaymentStatus)
				assert.True(t, decimal.NewFromInt(1000).Equal(booking.PricePerNight))
				assert.False(t, booking.DepositAmount.Valid)

				return nil
			})
		f.roomRepo.EXPECT().ResolveNumbersTx(gomock.Any(), gomock.Any(), []string{"101"}).Return(rooms("101"), nil)
		f.assignmentRepo.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), []model.Assignment{{BookingID: "BK1", RoomID: "room-101"}}).
			Return(nil)
		f.invalidatesBookings()

		id, err := f.svc.Create(context.Background(), validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "BK1", id)
	})

	t.Run("generates an id when none is given", func(t *testing.T) {
		f := newFixture(t)
		f.runsTransaction()

		req := validRequest()
		req.ID = "  "

		f.idGenerator.EXPECT().GetID(gomock.Any()).Return("BK-20240601-ABCDEF")
		f.customerRepo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return("cust-1", nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				assert.Equal(t, "BK-20240601-ABCDEF", booking.ID)

				return nil
			})
		f.roomRepo.EXPECT().ResolveNumbersTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms("101"), nil)
		f.assignmentRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.invalidatesBookings()

		id, err := f.svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "BK-20240601-ABCDEF", id)
	})

	t.Run("unpaid is the default payment status", func(t *testing.T) {
		f := newFixture(t)
		f.runsTransaction()

		req := validRequest()
		req.PaymentStatus = ""

		f.customerRepo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return("cust-1", nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				assert.Equal(t, "UNPAID", booking.PaymentStatus)

				return nil
			})
		f.roomRepo.EXPECT().ResolveNumbersTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms("101"), nil)
		f.assignmentRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.invalidatesBookings()

		_, err := f.svc.Create(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("unknown rooms are skipped", func(t *testing.T) {
		f := newFixture(t)
		f.runsTransaction()

		req := validRequest()
		req.RoomIDs = []string{"102", "999", "101", "102"}

		f.customerRepo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return("cust-1", nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.roomRepo.EXPECT().
			ResolveNumbersTx(gomock.Any(), gomock.Any(), []string{"102", "999", "101"}).
			Return(rooms("101", "102"), nil)
		f.assignmentRepo.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), []model.Assignment{
				{BookingID: "BK1", RoomID: "room-102"},
				{BookingID: "BK1", RoomID: "room-101"},
			}).
			Return(nil)
		f.invalidatesBookings()

		_, err := f.svc.Create(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("duplicate id is a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.runsTransaction()

		f.customerRepo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return("cust-1", nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"})

		_, err := f.svc.Create(context.Background(), validRequest())

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, "Booking already exists")
	})

	t.Run("datastore error surfaces as internal error", func(t *testing.T) {
		f := newFixture(t)
		f.runsTransaction()

		f.customerRepo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return("cust-1", nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.roomRepo.EXPECT().ResolveNumbersTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms("101"), nil)
		f.assignmentRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := f.svc.Create(context.Background(), validRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("room removed before assignment", func(t *testing.T) {
		f := newFixture(t)
		f.runsTransaction()

		f.customerRepo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return("cust-1", nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.roomRepo.EXPECT().ResolveNumbersTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms("101"), nil)
		f.assignmentRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23503", Constraint: "booking_rooms_room_id_fkey"})

		_, err := f.svc.Create(context.Background(), validRequest())

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.EqualError(t, err, "Room not found")
	})

	t.Run("customer error stops the transaction", func(t *testing.T) {
		f := newFixture(t)
		f.runsTransaction()

		f.customerRepo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("database error"))

		_, err := f.svc.Create(context.Background(), validRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_CreateRejectsInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.UpsertBookingRequest)
		wantMsg string
	}{
		{
			name:    "missing phone",
			mutate:  func(req *dto.UpsertBookingRequest) { req.Phone = "" },
			wantMsg: "Missing required fields.",
		},
		{
			name:    "blank customer name",
			mutate:  func(req *dto.UpsertBookingRequest) { req.CustomerName = "   " },
			wantMsg: "Missing required fields.",
		},
		{
			name:    "missing check out",
			mutate:  func(req *dto.UpsertBookingRequest) { req.CheckOut = "" },
			wantMsg: "Missing required fields.",
		},
		{
			name:    "no rooms",
			mutate:  func(req *dto.UpsertBookingRequest) { req.RoomIDs = nil },
			wantMsg: "Missing required fields.",
		},
		{
			name:    "only blank rooms",
			mutate:  func(req *dto.UpsertBookingRequest) { req.RoomIDs = []string{" ", ""} },
			wantMsg: "Missing required fields.",
		},
		{
			name:    "date with two components",
			mutate:  func(req *dto.UpsertBookingRequest) { req.CheckIn = "01/06" },
			wantMsg: "checkIn must be a date in dd/mm/yyyy form",
		},
		{
			name:    "impossible calendar date",
			mutate:  func(req *dto.UpsertBookingRequest) { req.CheckOut = "31/02/2024" },
			wantMsg: "checkOut must be a date in dd/mm/yyyy form",
		},
		{
			name:    "unknown payment status",
			mutate:  func(req *dto.UpsertBookingRequest) { req.PaymentStatus = "LATER" },
			wantMsg: "paymentStatus must be one of PAID DEPOSIT UNPAID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			req := validRequest()
			tt.mutate(&req)

			_, err := f.svc.Create(context.Background(), req)

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	t.Run("replaces the room set", func(t *testing.T) {
		f := newFixture(t)
		f.runsTransaction()

		req := validRequest()
		req.RoomIDs = []string{"102", "101"}
		req.DepositAmount = decimal.NewNullDecimal(decimal.NewFromInt(500))
		req.PaymentStatus = "deposit"

		f.customerRepo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return("cust-1", nil)
		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), shared.FilterByID("BK1", model.FieldID, model.TableName)).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ any) (int64, error) {
				assert.Equal(t, "cust-1", mod[model.FieldCustomerID])
				assert.Equal(t, "DEPOSIT", mod[model.FieldPaymentStatus])
				assert.NotContains(t, mod, model.FieldID)
				assert.NotContains(t, mod, model.FieldCreatedAt)

				return 1, nil
			})
		f.assignmentRepo.EXPECT().
			DeleteTx(gomock.Any(), gomock.Any(), shared.FilterByID("BK1", model.FieldBookingID, model.AssignmentTableName)).
			Return(int64(1), nil)
		f.roomRepo.EXPECT().ResolveNumbersTx(gomock.Any(), gomock.Any(), []string{"102", "101"}).Return(rooms("101", "102"), nil)
		f.assignmentRepo.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), []model.Assignment{
				{BookingID: "BK1", RoomID: "room-102"},
				{BookingID: "BK1", RoomID: "room-101"},
			}).
			Return(nil)
		f.invalidatesBookings()

		err := f.svc.Update(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		f.runsTransaction()

		f.customerRepo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return("cust-1", nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := f.svc.Update(context.Background(), validRequest())

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.EqualError(t, err, "Booking not found")
	})

	t.Run("missing id", func(t *testing.T) {
		f := newFixture(t)

		req := validRequest()
		req.ID = ""

		err := f.svc.Update(context.Background(), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, "Missing required fields.")
	})

	t.Run("clearing rooms fails", func(t *testing.T) {
		f := newFixture(t)
		f.runsTransaction()

		f.customerRepo.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return("cust-1", nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.assignmentRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))

		err := f.svc.Update(context.Background(), validRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("transaction cannot begin", func(t *testing.T) {
		f := newFixture(t)

		f.transactor.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		err := f.svc.Update(context.Background(), validRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
