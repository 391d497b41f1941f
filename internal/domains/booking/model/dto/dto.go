package dto

import (
	"hotel/internal/domains/booking/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

type CreateBookingRequest struct {
	CustomerID   string `json:"customerId"`
	RoomID       string `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	GuestCount   int    `json:"guestCount"`
	Note         string `json:"note"`
	Status       string `json:"status"`
	EmployeeID   string `json:"employeeId"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := gDto.ParseDateField("checkInDate", c.CheckInDate)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	checkOut, err := gDto.ParseDateField("checkOutDate", c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	return model.Booking{
		CustomerID:   c.CustomerID,
		RoomID:       c.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		GuestCount:   c.GuestCount,
		Note:         c.Note,
		Status:       c.Status,
		EmployeeID:   c.EmployeeID,
		Metadata:     gModel.NewMetadata(user),
	}, nil
}

type UpdateBookingRequest struct {
	CustomerID   *string `json:"customerId"`
	RoomID       *string `json:"roomId"`
	CheckInDate  *string `json:"checkInDate"`
	CheckOutDate *string `json:"checkOutDate"`
	GuestCount   *int    `json:"guestCount"`
	Note         *string `json:"note"`
	Status       *string `json:"status"`
	EmployeeID   *string `json:"employeeId"`
}

// Apply copies the fields present in the body. An empty date string clears the stored date.
func (u *UpdateBookingRequest) Apply(booking *model.Booking) error {
	if u.CheckInDate != nil {
		checkIn, err := gDto.ParseDateField("checkInDate", *u.CheckInDate)
		if err != nil {
			return err //nolint:wrapcheck
		}

		booking.CheckInDate = checkIn
	}

	if u.CheckOutDate != nil {
		checkOut, err := gDto.ParseDateField("checkOutDate", *u.CheckOutDate)
		if err != nil {
			return err //nolint:wrapcheck
		}

		booking.CheckOutDate = checkOut
	}

	if u.CustomerID != nil {
		booking.CustomerID = *u.CustomerID
	}

	if u.RoomID != nil {
		booking.RoomID = *u.RoomID
	}

	if u.GuestCount != nil {
		booking.GuestCount = *u.GuestCount
	}

	if u.Note != nil {
		booking.Note = *u.Note
	}

	if u.Status != nil {
		booking.Status = *u.Status
	}

	if u.EmployeeID != nil {
		booking.EmployeeID = *u.EmployeeID
	}

	return nil
}

type BookingResponse struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customerId"`
	RoomID       string  `json:"roomId"`
	CheckInDate  *string `json:"checkInDate"`
	CheckOutDate *string `json:"checkOutDate"`
	GuestCount   int     `json:"guestCount"`
	Note         string  `json:"note"`
	Status       string  `json:"status"`
	EmployeeID   string  `json:"employeeId"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.RoomID = model.RoomID
	r.CheckInDate = gDto.FormatDate(model.CheckInDate)
	r.CheckOutDate = gDto.FormatDate(model.CheckOutDate)
	r.GuestCount = model.GuestCount
	r.Note = model.Note
	r.Status = model.Status
	r.EmployeeID = model.EmployeeID
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
