package dto

import (
	"hotel/internal/domains/room/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

type CreateRoomRequest struct {
	Name       string `json:"name"`
	RoomTypeID string `json:"roomTypeId"`
	Status     string `json:"status"`
	Note       string `json:"note"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		Name:       c.Name,
		RoomTypeID: c.RoomTypeID,
		Status:     c.Status,
		Note:       c.Note,
		Metadata:   gModel.NewMetadata(user),
	}
}

type UpdateRoomRequest struct {
	Name       *string `json:"name"`
	RoomTypeID *string `json:"roomTypeId"`
	Status     *string `json:"status"`
	Note       *string `json:"note"`
}

func (u *UpdateRoomRequest) Apply(room *model.Room) {
	if u.Name != nil {
		room.Name = *u.Name
	}

	if u.RoomTypeID != nil {
		room.RoomTypeID = *u.RoomTypeID
	}

	if u.Status != nil {
		room.Status = *u.Status
	}

	if u.Note != nil {
		room.Note = *u.Note
	}
}

type RoomResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RoomTypeID string `json:"roomTypeId"`
	Status     string `json:"status"`
	Note       string `json:"note"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.RoomTypeID = model.RoomTypeID
	r.Status = model.Status
	r.Note = model.Note
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
