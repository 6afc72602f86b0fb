package model

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldCustomerID    = "customer_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldPaymentStatus = "payment_status"
	FieldPricePerNight = "price_per_night"
	FieldDepositAmount = "deposit_amount"
	FieldCreatedAt     = "created_at"
)

const (
	AssignmentTableName  = "booking_rooms"
	AssignmentEntityName = "booking_room"

	FieldBookingID = "booking_id"
	FieldRoomID    = "room_id"
)

// Booking is one stay. Only the customer, dates, payment and prices change on update.
type Booking struct {
	ID            string              `db:"id"              update:"-"`
	CustomerID    string              `db:"customer_id"`
	CheckIn       time.Time           `db:"check_in"`
	CheckOut      time.Time           `db:"check_out"`
	PaymentStatus string              `db:"payment_status"`
	PricePerNight decimal.Decimal     `db:"price_per_night"`
	DepositAmount decimal.NullDecimal `db:"deposit_amount"`
	CreatedAt     time.Time           `db:"created_at"      update:"-"`
}

// Assignment links a booking to one room. The set is replaced wholesale on every write.
type Assignment struct {
	BookingID string `db:"booking_id"`
	RoomID    string `db:"room_id"`
}

// BookingView is a booking joined with its customer and its room numbers in ascending order.
type BookingView struct {
	ID            string              `db:"id"`
	CreatedAt     time.Time           `db:"created_at"`
	CustomerName  string              `db:"customer_name"`
	Phone         string              `db:"phone"`
	Email         *string             `db:"email"`
	Address       *string             `db:"address"`
	TaxID         *string             `db:"tax_id"`
	CheckIn       time.Time           `db:"check_in"`
	CheckOut      time.Time           `db:"check_out"`
	PaymentStatus string              `db:"payment_status"`
	PricePerNight decimal.Decimal     `db:"price_per_night"`
	DepositAmount decimal.NullDecimal `db:"deposit_amount"`
	RoomNumbers   pq.StringArray      `db:"room_numbers"`
}
