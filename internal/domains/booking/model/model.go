package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"
	IDPrefix   = "DP"

	FieldID           = "id"
	FieldCustomerID   = "customer_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
)

type Booking struct {
	ID           string     `db:"id"`
	CustomerID   string     `db:"customer_id"`
	RoomID       string     `db:"room_id"`
	CheckInDate  *time.Time `db:"check_in_date"`
	CheckOutDate *time.Time `db:"check_out_date"`
	GuestCount   int        `db:"guest_count"`
	Note         string     `db:"note"`
	Status       string     `db:"status"`
	EmployeeID   string     `db:"employee_id"`
	model.Metadata
}

func (b Booking) Key() string {
	return b.ID
}

func (b Booking) WithKey(id string) Booking {
	b.ID = id

	return b
}
