package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "accounts"
	EntityName = "account"
	IDPrefix   = "TK"

	FieldID        = "id"
	FieldLoginName = "login_name"
)

// Account is a console login. Password holds the bcrypt hash and never leaves the service layer.
type Account struct {
	ID          string     `db:"id"`
	EmployeeID  string     `db:"employee_id"`
	LoginName   string     `db:"login_name"`
	Password    string     `db:"password"`
	Role        string     `db:"role"`
	Active      bool       `db:"active"`
	LastLoginAt *time.Time `db:"last_login_at"`
	model.Metadata
}

func (a Account) Key() string {
	return a.ID
}

func (a Account) WithKey(id string) Account {
	a.ID = id

	return a
}
