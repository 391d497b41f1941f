package dto

import (
	"hotel/config"
	"hotel/internal/domains/setting/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

// Defaults builds the settings record described by the configuration.
func Defaults(cfg *config.Config, user string) model.Setting {
	return model.Setting{
		Profile:      model.DefaultProfile,
		HotelName:    cfg.Settings.HotelName,
		Address:      cfg.Settings.Address,
		Phone:        cfg.Settings.Phone,
		Email:        cfg.Settings.Email,
		TaxRate:      cfg.Settings.TaxRate,
		CheckInTime:  cfg.Settings.CheckInTime,
		CheckOutTime: cfg.Settings.CheckOutTime,
		Currency:     cfg.Settings.Currency,
		Language:     cfg.Settings.Language,
		Theme:        cfg.Settings.Theme,
		Metadata:     gModel.NewMetadata(user),
	}
}

type UpdateSettingsRequest struct {
	HotelName    *string             `json:"hotelName"    validate:"omitempty,notblank"`
	Address      *string             `json:"address"`
	Phone        *gDto.LenientString `json:"phone"`
	Email        *string             `json:"email"`
	TaxRate      *gDto.LenientFloat  `json:"taxRate"      validate:"omitempty,gte=0,lte=100"`
	CheckInTime  *string             `json:"checkInTime"  validate:"omitempty,datetime=15:04"`
	CheckOutTime *string             `json:"checkOutTime" validate:"omitempty,datetime=15:04"`
	Currency     *string             `json:"currency"`
	Language     *string             `json:"language"`
	Theme        *string             `json:"theme"        validate:"omitempty,oneof=light dark"`
}

// Apply copies the present fields.
func (u *UpdateSettingsRequest) Apply(setting *model.Setting) {
	if u.HotelName != nil {
		setting.HotelName = *u.HotelName
	}

	if u.Address != nil {
		setting.Address = *u.Address
	}

	if u.Phone != nil {
		setting.Phone = u.Phone.String()
	}

	if u.Email != nil {
		setting.Email = *u.Email
	}

	if u.TaxRate != nil {
		setting.TaxRate = u.TaxRate.Float64()
	}

	if u.CheckInTime != nil {
		setting.CheckInTime = *u.CheckInTime
	}

	if u.CheckOutTime != nil {
		setting.CheckOutTime = *u.CheckOutTime
	}

	if u.Currency != nil {
		setting.Currency = *u.Currency
	}

	if u.Language != nil {
		setting.Language = *u.Language
	}

	if u.Theme != nil {
		setting.Theme = *u.Theme
	}
}

type SettingsResponse struct {
	HotelName    string  `json:"hotelName"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	TaxRate      float64 `json:"taxRate"`
	CheckInTime  string  `json:"checkInTime"`
	CheckOutTime string  `json:"checkOutTime"`
	Currency     string  `json:"currency"`
	Language     string  `json:"language"`
	Theme        string  `json:"theme"`
	gDto.Metadata
}

func (r *SettingsResponse) FromModel(model model.Setting) {
	r.HotelName = model.HotelName
	r.Address = model.Address
	r.Phone = model.Phone
	r.Email = model.Email
	r.TaxRate = model.TaxRate
	r.CheckInTime = model.CheckInTime
	r.CheckOutTime = model.CheckOutTime
	r.Currency = model.Currency
	r.Language = model.Language
	r.Theme = model.Theme
	r.Metadata.FromModel(model.Metadata)
}
