package dto

import (
	"hotel/internal/domains/roomtype/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

// RoomTypeRequest is used for both create and update. basePrice may be a number or a numeric
// string; anything else is stored as zero.
type RoomTypeRequest struct {
	Name        string            `json:"name"        validate:"notblank"`
	Description string            `json:"description"`
	BasePrice   gDto.LenientFloat `json:"basePrice"`
}

func (r *RoomTypeRequest) ToModel(user string) model.RoomType {
	roomType := model.RoomType{Metadata: gModel.NewMetadata(user)}
	r.Apply(&roomType)

	return roomType
}

func (r *RoomTypeRequest) Apply(roomType *model.RoomType) {
	roomType.Name = r.Name
	roomType.Description = r.Description
	roomType.BasePrice = r.BasePrice.Float64()
}

type RoomTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.BasePrice = model.BasePrice
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.RoomType) []RoomTypeResponse {
	res := make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
