package model

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID      = "id"
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldAddress = "address"
	FieldTaxID   = "tax_id"
)

// Customer is deduplicated on (name, phone). Contact fields follow the latest booking.
type Customer struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	Phone   string  `db:"phone"`
	Email   *string `db:"email"`
	Address *string `db:"address"`
	TaxID   *string `db:"tax_id"`
}
