package dto

import (
	"hotel/internal/domains/account/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

type RegisterRequest struct {
	EmployeeID string `json:"employeeId"`
	LoginName  string `json:"loginName"  validate:"notblank"`
	Password   string `json:"password"   validate:"notblank"`
	Role       string `json:"role"`
}

// ToModel builds an active account around an already hashed password.
func (r *RegisterRequest) ToModel(user, hashedPassword string) model.Account {
	return model.Account{
		EmployeeID: r.EmployeeID,
		LoginName:  r.LoginName,
		Password:   hashedPassword,
		Role:       r.Role,
		Active:     true,
		Metadata:   gModel.NewMetadata(user),
	}
}

// UpdateAccountRequest carries the mutable account fields. The login name and linked employee are fixed at registration.
type UpdateAccountRequest struct {
	Password string  `json:"password"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
}

// Apply copies the present fields. An empty hashedPassword keeps the stored one.
func (u *UpdateAccountRequest) Apply(account *model.Account, hashedPassword string) {
	if hashedPassword != "" {
		account.Password = hashedPassword
	}

	if u.Role != nil {
		account.Role = *u.Role
	}

	if u.Active != nil {
		account.Active = *u.Active
	}
}

type LoginRequest struct {
	LoginName string `json:"loginName"`
	Password  string `json:"password"`
}

type AccountResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employeeId"`
	LoginName   string  `json:"loginName"`
	Role        string  `json:"role"`
	Active      bool    `json:"active"`
	LastLoginAt *string `json:"lastLoginAt"`
	gDto.Metadata
}

func (r *AccountResponse) FromModel(model model.Account) {
	r.ID = model.ID
	r.EmployeeID = model.EmployeeID
	r.LoginName = model.LoginName
	r.Role = model.Role
	r.Active = model.Active
	r.LastLoginAt = gDto.FormatDate(model.LastLoginAt)
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Account) []AccountResponse {
	res := make([]AccountResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
