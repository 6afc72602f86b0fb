package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/booking/model/dto"
	serviceMocks "frontdesk/internal/domains/booking/service/mocks"
	"frontdesk/internal/handlers/booking"
	"frontdesk/shared/failure"
)

func newRouter(t *testing.T) (*serviceMocks.MockBooking, http.Handler) {
	ctrl := gomock.NewController(t)

	svc := serviceMocks.NewMockBooking(ctrl)
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestCreateBooking(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.UpsertBookingRequest) (string, error) {
			assert.Equal(t, "BK1", req.ID)
			assert.Equal(t, "Jane Doe", req.CustomerName)
			assert.Equal(t, []string{"101"}, req.RoomIDs)
			assert.True(t, decimal.NewFromInt(1000).Equal(req.PricePerNight))
			assert.False(t, req.DepositAmount.Valid)

			return "BK1", nil
		})

	rec := serve(router, http.MethodPost, `{"id":"BK1","customerName":"Jane Doe","phone":"0811111111","checkIn":"01/06/2024","checkOut":"03/06/2024","roomIds":["101"],"paymentStatus":"PAID","pricePerNight":1000}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"id":"BK1"}`, rec.Body.String())
}

func TestCreateBookingMissingPhone(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", failure.MissingBookingFields)

	rec := serve(router, http.MethodPost, `{"id":"BK1","customerName":"Jane Doe","checkIn":"01/06/2024","checkOut":"03/06/2024","roomIds":["101"]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields."}`, rec.Body.String())
}

func TestCreateBookingEmptyBody(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Create(gomock.Any(), dto.UpsertBookingRequest{}).Return("", failure.MissingBookingFields)

	rec := serve(router, http.MethodPost, ``)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields."}`, rec.Body.String())
}

func TestCreateBookingMalformedJSON(t *testing.T) {
	_, router := newRouter(t)

	rec := serve(router, http.MethodPost, `{"id":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingDatastoreError(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", assert.AnError)

	rec := serve(router, http.MethodPost, `{"id":"BK1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestUpdateBooking(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.UpsertBookingRequest) error {
			assert.Equal(t, []string{"101", "102"}, req.RoomIDs)

			return nil
		})

	rec := serve(router, http.MethodPut, `{"id":"BK1","customerName":"Jane Doe","phone":"0811111111","checkIn":"01/06/2024","checkOut":"03/06/2024","roomIds":["101","102"]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestUpdateBookingNotFound(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(failure.NotFound("Booking not found"))

	rec := serve(router, http.MethodPut, `{"id":"BK404"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Booking not found"}`, rec.Body.String())
}

func TestGetBookings(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any()).Return(dto.GetBookingsResponse{
		{
			ID:            "BK1",
			Timestamp:     "2024-05-20T09:30:00+07:00",
			CustomerName:  "Jane Doe",
			Phone:         "0811111111",
			CheckIn:       "01/06/2024",
			CheckOut:      "03/06/2024",
			PaymentStatus: "PAID",
			PricePerNight: decimal.NewFromInt(1000),
			RoomIDs:       []string{"101", "102"},
		},
	}, nil)

	rec := serve(router, http.MethodGet, ``)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id":"BK1",
		"timestamp":"2024-05-20T09:30:00+07:00",
		"customerName":"Jane Doe",
		"phone":"0811111111",
		"checkIn":"01/06/2024",
		"checkOut":"03/06/2024",
		"paymentStatus":"PAID",
		"depositAmount":null,
		"email":null,
		"address":null,
		"taxId":null,
		"pricePerNight":1000,
		"roomIds":["101","102"]
	}]`, rec.Body.String())
}
