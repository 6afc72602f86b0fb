package dto

import (
	"frontdesk/internal/domains/booking/model"
	customerModel "frontdesk/internal/domains/customer/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// UpsertBookingRequest is the body of both create and update. Presence of the
// required fields is checked by the service so the caller gets a single message.
type UpsertBookingRequest struct {
	ID            string              `json:"id"                      example:"BK-20240601-1A2B3C"`
	CustomerName  string              `json:"customerName"            example:"Jane Doe"`
	Phone         string              `json:"phone"                   example:"0811111111"`
	Email         *string             `json:"email,omitempty"         example:"jane@example.com"`
	Address       *string             `json:"address,omitempty"       example:"1 River Road"`
	TaxID         *string             `json:"taxId,omitempty"         example:"0105551234567"`
	CheckIn       string              `json:"checkIn"                 example:"01/06/2024"  validate:"dmydate"`
	CheckOut      string              `json:"checkOut"                example:"03/06/2024"  validate:"dmydate"`
	RoomIDs       []string            `json:"roomIds"`
	PaymentStatus string              `json:"paymentStatus"           example:"PAID"        validate:"omitempty,oneof=PAID DEPOSIT UNPAID"`
	PricePerNight decimal.Decimal     `json:"pricePerNight"           swaggertype:"number"  example:"1000"`
	DepositAmount decimal.NullDecimal `json:"depositAmount"           swaggertype:"number"  example:"500"`
}

// Normalize trims text fields, upper-cases the payment status and drops blank optional fields.
func (r *UpsertBookingRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.CheckIn = strings.TrimSpace(r.CheckIn)
	r.CheckOut = strings.TrimSpace(r.CheckOut)
	r.PaymentStatus = strings.ToUpper(strings.TrimSpace(r.PaymentStatus))
	r.Email = trimOptional(r.Email)
	r.Address = trimOptional(r.Address)
	r.TaxID = trimOptional(r.TaxID)

	roomIDs := make([]string, 0, len(r.RoomIDs))
	for _, roomID := range r.RoomIDs {
		roomID = strings.TrimSpace(roomID)
		if roomID == constant.Empty || slices.Contains(roomIDs, roomID) {
			continue
		}

		roomIDs = append(roomIDs, roomID)
	}

	r.RoomIDs = roomIDs
}

// HasRequiredFields reports whether every field a booking cannot exist without is present.
func (r *UpsertBookingRequest) HasRequiredFields() bool {
	return r.CustomerName != constant.Empty &&
		r.Phone != constant.Empty &&
		r.CheckIn != constant.Empty &&
		r.CheckOut != constant.Empty &&
		len(r.RoomIDs) > 0
}

func (r *UpsertBookingRequest) ToCustomer() customerModel.Customer {
	return customerModel.Customer{
		ID:      uuid.NewString(),
		Name:    r.CustomerName,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		TaxID:   r.TaxID,
	}
}

func (r *UpsertBookingRequest) ToModel(id, customerID string, checkIn, checkOut time.Time) model.Booking {
	paymentStatus := r.PaymentStatus
	if paymentStatus == constant.Empty {
		paymentStatus = constant.PaymentStatusUnpaid
	}

	return model.Booking{
		ID:            id,
		CustomerID:    customerID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentStatus: paymentStatus,
		PricePerNight: r.PricePerNight,
		DepositAmount: r.DepositAmount,
		CreatedAt:     timezone.Now(),
	}
}

type BookingResponse struct {
	ID            string              `json:"id"            example:"BK-20240601-1A2B3C"`
	Timestamp     string              `json:"timestamp"     example:"2024-05-20T09:30:00+07:00"`
	CustomerName  string              `json:"customerName"  example:"Jane Doe"`
	Phone         string              `json:"phone"         example:"0811111111"`
	CheckIn       string              `json:"checkIn"       example:"01/06/2024"`
	CheckOut      string              `json:"checkOut"      example:"03/06/2024"`
	PaymentStatus string              `json:"paymentStatus" example:"PAID"`
	DepositAmount decimal.NullDecimal `json:"depositAmount" swaggertype:"number"`
	Email         *string             `json:"email"`
	Address       *string             `json:"address"`
	TaxID         *string             `json:"taxId"`
	PricePerNight decimal.Decimal     `json:"pricePerNight" swaggertype:"number" example:"1000"`
	RoomIDs       []string            `json:"roomIds"       example:"101,102"`
}

func (b *BookingResponse) FromModel(view model.BookingView) {
	b.ID = view.ID
	b.Timestamp = timezone.Format(view.CreatedAt, constant.DateFormat)
	b.CustomerName = view.CustomerName
	b.Phone = view.Phone
	b.CheckIn = timezone.FormatDayMonthYear(view.CheckIn)
	b.CheckOut = timezone.FormatDayMonthYear(view.CheckOut)
	b.PaymentStatus = view.PaymentStatus
	b.DepositAmount = view.DepositAmount
	b.Email = view.Email
	b.Address = view.Address
	b.TaxID = view.TaxID
	b.PricePerNight = view.PricePerNight

	b.RoomIDs = make([]string, len(view.RoomNumbers))
	copy(b.RoomIDs, view.RoomNumbers)
}

type GetBookingsResponse []BookingResponse

func (r *GetBookingsResponse) FromModels(views []model.BookingView) {
	bookings := make(GetBookingsResponse, len(views))
	for i, view := range views {
		bookings[i].FromModel(view)
	}

	*r = bookings
}

type UpsertBookingResponse struct {
	Success bool   `json:"success" example:"true"`
	ID      string `json:"id,omitempty" example:"BK-20240601-1A2B3C"`
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == constant.Empty {
		return nil
	}

	return &trimmed
}
