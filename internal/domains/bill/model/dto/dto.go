package dto

import (
	"hotel/internal/domains/bill/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

type CreateBillRequest struct {
	CustomerID    string  `json:"customerId"`
	BookingID     string  `json:"bookingId"`
	IssueDate     string  `json:"issueDate"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	Note          string  `json:"note"`
	IssuedBy      string  `json:"issuedBy"`
	PaymentMethod string  `json:"paymentMethod"`
}

func (c *CreateBillRequest) ToModel(user string) (model.Bill, error) {
	issueDate, err := gDto.ParseDateField("issueDate", c.IssueDate)
	if err != nil {
		return model.Bill{}, err //nolint:wrapcheck
	}

	return model.Bill{
		CustomerID:    c.CustomerID,
		BookingID:     c.BookingID,
		IssueDate:     issueDate,
		TotalAmount:   c.TotalAmount,
		Status:        c.Status,
		Note:          c.Note,
		IssuedBy:      c.IssuedBy,
		PaymentMethod: c.PaymentMethod,
		Metadata:      gModel.NewMetadata(user),
	}, nil
}

type UpdateBillRequest struct {
	CustomerID    *string  `json:"customerId"`
	BookingID     *string  `json:"bookingId"`
	IssueDate     *string  `json:"issueDate"`
	TotalAmount   *float64 `json:"totalAmount"`
	Status        *string  `json:"status"`
	Note          *string  `json:"note"`
	IssuedBy      *string  `json:"issuedBy"`
	PaymentMethod *string  `json:"paymentMethod"`
}

func (u *UpdateBillRequest) Apply(bill *model.Bill) error {
	if u.IssueDate != nil {
		issueDate, err := gDto.ParseDateField("issueDate", *u.IssueDate)
		if err != nil {
			return err //nolint:wrapcheck
		}

		bill.IssueDate = issueDate
	}

	if u.CustomerID != nil {
		bill.CustomerID = *u.CustomerID
	}

	if u.BookingID != nil {
		bill.BookingID = *u.BookingID
	}

	if u.TotalAmount != nil {
		bill.TotalAmount = *u.TotalAmount
	}

	if u.Status != nil {
		bill.Status = *u.Status
	}

	if u.Note != nil {
		bill.Note = *u.Note
	}

	if u.IssuedBy != nil {
		bill.IssuedBy = *u.IssuedBy
	}

	if u.PaymentMethod != nil {
		bill.PaymentMethod = *u.PaymentMethod
	}

	return nil
}

type BillResponse struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customerId"`
	BookingID     string  `json:"bookingId"`
	IssueDate     *string `json:"issueDate"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	Note          string  `json:"note"`
	IssuedBy      string  `json:"issuedBy"`
	PaymentMethod string  `json:"paymentMethod"`
	gDto.Metadata
}

func (r *BillResponse) FromModel(model model.Bill) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.BookingID = model.BookingID
	r.IssueDate = gDto.FormatDate(model.IssueDate)
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status
	r.Note = model.Note
	r.IssuedBy = model.IssuedBy
	r.PaymentMethod = model.PaymentMethod
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Bill) []BillResponse {
	res := make([]BillResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
