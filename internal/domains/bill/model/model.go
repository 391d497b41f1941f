package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "bills"
	EntityName = "bill"
	IDPrefix   = "HD"

	FieldID         = "id"
	FieldCustomerID = "customer_id"
	FieldIssueDate  = "issue_date"
)

type Bill struct {
	ID            string     `db:"id"`
	CustomerID    string     `db:"customer_id"`
	BookingID     string     `db:"booking_id"`
	IssueDate     *time.Time `db:"issue_date"`
	TotalAmount   float64    `db:"total_amount"`
	Status        string     `db:"status"`
	Note          string     `db:"note"`
	IssuedBy      string     `db:"issued_by"`
	PaymentMethod string     `db:"payment_method"`
	model.Metadata
}

func (b Bill) Key() string {
	return b.ID
}

func (b Bill) WithKey(id string) Bill {
	b.ID = id

	return b
}
