package model

import "time"

const (
	TableName  = "settings"
	EntityName = "setting"

	FieldKey       = "key"
	FieldValue     = "value"
	FieldUpdatedAt = "updated_at"
)

// Setting is one application wide key/value pair shared by every desk.
type Setting struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
