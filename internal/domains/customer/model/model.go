package model

import "hotel/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"
	IDPrefix   = "KH"

	FieldID          = "id"
	FieldFullName    = "full_name"
	FieldNationalID  = "national_id"
	FieldAddress     = "address"
	FieldPhoneNumber = "phone_number"
	FieldEmail       = "email"
)

type Customer struct {
	ID          string `db:"id"`
	FullName    string `db:"full_name"`
	NationalID  string `db:"national_id"`
	Address     string `db:"address"`
	PhoneNumber string `db:"phone_number"`
	Email       string `db:"email"`
	model.Metadata
}

func (c Customer) Key() string {
	return c.ID
}

func (c Customer) WithKey(id string) Customer {
	c.ID = id

	return c
}
