package model

import "hotel/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"
	IDPrefix   = "P"
)

type Room struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	RoomTypeID string `db:"room_type_id"`
	Status     string `db:"status"`
	Note       string `db:"note"`
	model.Metadata
}

func (r Room) Key() string {
	return r.ID
}

func (r Room) WithKey(id string) Room {
	r.ID = id

	return r
}
