package model

import "hotel/shared/model"

const (
	TableName  = "settings"
	EntityName = "settings"
	IDPrefix   = "CH"

	FieldProfile   = "profile"
	DefaultProfile = "default"
)

// Setting is the hotel-wide configuration the console edits. One record exists per profile.
type Setting struct {
	ID           string  `db:"id"`
	Profile      string  `db:"profile"`
	HotelName    string  `db:"hotel_name"`
	Address      string  `db:"address"`
	Phone        string  `db:"phone"`
	Email        string  `db:"email"`
	TaxRate      float64 `db:"tax_rate"`
	CheckInTime  string  `db:"check_in_time"`
	CheckOutTime string  `db:"check_out_time"`
	Currency     string  `db:"currency"`
	Language     string  `db:"language"`
	Theme        string  `db:"theme"`
	model.Metadata
}

func (s Setting) Key() string {
	return s.ID
}

func (s Setting) WithKey(id string) Setting {
	s.ID = id

	return s
}

// ResetTo overwrites every editable value with the ones from defaults.
func (s *Setting) ResetTo(defaults Setting) {
	s.HotelName = defaults.HotelName
	s.Address = defaults.Address
	s.Phone = defaults.Phone
	s.Email = defaults.Email
	s.TaxRate = defaults.TaxRate
	s.CheckInTime = defaults.CheckInTime
	s.CheckOutTime = defaults.CheckOutTime
	s.Currency = defaults.Currency
	s.Language = defaults.Language
	s.Theme = defaults.Theme
}
