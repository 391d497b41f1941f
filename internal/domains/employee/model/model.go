package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "employees"
	EntityName = "employee"
	IDPrefix   = "NV"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldJobTitle = "job_title"
)

type Employee struct {
	ID        string     `db:"id"`
	FullName  string     `db:"full_name"`
	Email     string     `db:"email"`
	Phone     string     `db:"phone"`
	Address   string     `db:"address"`
	BirthDate *time.Time `db:"birth_date"`
	Gender    string     `db:"gender"`
	JobTitle  string     `db:"job_title"`
	HireDate  *time.Time `db:"hire_date"`
	Salary    float64    `db:"salary"`
	Status    string     `db:"status"`
	Note      *string    `db:"note"`
	model.Metadata
}

func (e Employee) Key() string {
	return e.ID
}

func (e Employee) WithKey(id string) Employee {
	e.ID = id

	return e
}
