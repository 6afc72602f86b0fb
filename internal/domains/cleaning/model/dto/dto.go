package dto

import (
	"frontdesk/internal/domains/cleaning/model"
	"strings"
)

type SetCleaningStatusRequest struct {
	RoomID string `json:"roomId" validate:"required"                   example:"101"`
	Status string `json:"status" validate:"required,oneof=CLEAN DIRTY" example:"DIRTY"`
}

// Normalize trims the room number and upper-cases the status.
func (r *SetCleaningStatusRequest) Normalize() {
	r.RoomID = strings.TrimSpace(r.RoomID)
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
}

// CleaningStatusResponse maps room number to CLEAN or DIRTY.
type CleaningStatusResponse map[string]string

func (r *CleaningStatusResponse) FromModels(models []model.CleaningStatus) {
	statuses := make(CleaningStatusResponse, len(models))
	for _, mod := range models {
		statuses[mod.RoomNumber] = mod.Status
	}

	*r = statuses
}
