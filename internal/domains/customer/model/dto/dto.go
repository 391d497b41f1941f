package dto

import (
	"hotel/internal/domains/customer/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

// CreateCustomerRequest accepts national id and phone number as JSON strings or numbers.
type CreateCustomerRequest struct {
	FullName    string             `json:"fullName"`
	NationalID  gDto.LenientString `json:"nationalId"`
	Address     string             `json:"address"`
	PhoneNumber gDto.LenientString `json:"phoneNumber"`
	Email       string             `json:"email"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		FullName:    c.FullName,
		NationalID:  c.NationalID.String(),
		Address:     c.Address,
		PhoneNumber: c.PhoneNumber.String(),
		Email:       c.Email,
		Metadata:    gModel.NewMetadata(user),
	}
}

// UpdateCustomerRequest copies only the fields present in the body.
type UpdateCustomerRequest struct {
	FullName    *string             `json:"fullName"`
	NationalID  *gDto.LenientString `json:"nationalId"`
	Address     *string             `json:"address"`
	PhoneNumber *gDto.LenientString `json:"phoneNumber"`
	Email       *string             `json:"email"`
}

func (u *UpdateCustomerRequest) Apply(customer *model.Customer) {
	if u.FullName != nil {
		customer.FullName = *u.FullName
	}

	if u.NationalID != nil {
		customer.NationalID = u.NationalID.String()
	}

	if u.Address != nil {
		customer.Address = *u.Address
	}

	if u.PhoneNumber != nil {
		customer.PhoneNumber = u.PhoneNumber.String()
	}

	if u.Email != nil {
		customer.Email = *u.Email
	}
}

type CustomerResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	NationalID  string `json:"nationalId"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.NationalID = model.NationalID
	r.Address = model.Address
	r.PhoneNumber = model.PhoneNumber
	r.Email = model.Email
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
