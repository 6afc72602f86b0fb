package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldType       = "type"
	FieldBed        = "bed"
	FieldFloor      = "floor"

	// OrderByRoomNumber sorts room numbers numerically when they share a width, so "9" precedes "10".
	OrderByRoomNumber = "LENGTH(rooms.room_number), rooms.room_number"
)

const (
	TypeRiverView    = "River view"
	TypeStandardView = "Standard view"
	TypeCottage      = "Cottage"

	BedDouble = "Double bed"
	BedTwin   = "Twin bed"
)

type Room struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	Type       string `db:"type"`
	Bed        string `db:"bed"`
	Floor      int    `db:"floor"`
}
