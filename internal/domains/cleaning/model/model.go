package model

import (
	"fmt"
	"time"

	roomModel "frontdesk/internal/domains/room/model"
)

const (
	TableName  = "cleaning_statuses"
	EntityName = "cleaning_status"

	FieldRoomID      = "room_id"
	FieldStatus      = "status"
	FieldLastUpdated = "last_updated"
)

// CleaningStatus is the housekeeping state of one room, read together with its room number.
type CleaningStatus struct {
	RoomID      string    `db:"room_id"`
	RoomNumber  string    `db:"room_number" table:"rooms"`
	Status      string    `db:"status"`
	LastUpdated time.Time `db:"last_updated"`
}

func (CleaningStatus) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %s ON %s.%s = %s.%s",
		roomModel.TableName, roomModel.TableName, roomModel.FieldID, TableName, FieldRoomID)
}
