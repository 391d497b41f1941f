package model

import "hotel/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room type"
	IDPrefix   = "LP"
)

type RoomType struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	BasePrice   float64 `db:"base_price"`
	model.Metadata
}

func (r RoomType) Key() string {
	return r.ID
}

func (r RoomType) WithKey(id string) RoomType {
	r.ID = id

	return r
}
