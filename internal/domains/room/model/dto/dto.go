package dto

import (
	"frontdesk/internal/domains/room/model"
)

// RoomResponse exposes the room number as the room's public id.
type RoomResponse struct {
	ID    string `json:"id"    example:"101"`
	Type  string `json:"type"  example:"River view"`
	Bed   string `json:"bed"   example:"Double bed"`
	Floor int    `json:"floor" example:"1"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.RoomNumber
	r.Type = model.Type
	r.Bed = model.Bed
	r.Floor = model.Floor
}

type GetRoomsResponse []RoomResponse

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	rooms := make(GetRoomsResponse, len(models))
	for i, mod := range models {
		rooms[i].FromModel(mod)
	}

	*r = rooms
}
