package dto

import (
	"hotel/internal/domains/employee/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

// EmployeeRequest is used for both create and update. An update replaces every mutable field.
type EmployeeRequest struct {
	ID        string             `json:"id"`
	FullName  string             `json:"fullName"`
	Email     string             `json:"email"`
	Phone     gDto.LenientString `json:"phone"`
	Address   string             `json:"address"`
	BirthDate string             `json:"birthDate"`
	Gender    string             `json:"gender"`
	JobTitle  string             `json:"jobTitle"`
	HireDate  string             `json:"hireDate"`
	Salary    float64            `json:"salary"`
	Status    string             `json:"status"`
	Note      *string            `json:"note"`
}

func (r *EmployeeRequest) ToModel(user string) (model.Employee, error) {
	employee := model.Employee{Metadata: gModel.NewMetadata(user)}

	if err := r.Apply(&employee); err != nil {
		return model.Employee{}, err
	}

	return employee, nil
}

// Apply overwrites every mutable field of employee. The id is left untouched.
func (r *EmployeeRequest) Apply(employee *model.Employee) error {
	birthDate, err := gDto.ParseDateField("birthDate", r.BirthDate)
	if err != nil {
		return err //nolint:wrapcheck
	}

	hireDate, err := gDto.ParseDateField("hireDate", r.HireDate)
	if err != nil {
		return err //nolint:wrapcheck
	}

	employee.FullName = r.FullName
	employee.Email = r.Email
	employee.Phone = r.Phone.String()
	employee.Address = r.Address
	employee.BirthDate = birthDate
	employee.Gender = r.Gender
	employee.JobTitle = r.JobTitle
	employee.HireDate = hireDate
	employee.Salary = r.Salary
	employee.Status = r.Status
	employee.Note = r.Note

	return nil
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	BirthDate *string `json:"birthDate"`
	Gender    string  `json:"gender"`
	JobTitle  string  `json:"jobTitle"`
	HireDate  *string `json:"hireDate"`
	Salary    float64 `json:"salary"`
	Status    string  `json:"status"`
	Note      *string `json:"note,omitempty"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.BirthDate = gDto.FormatDate(model.BirthDate)
	r.Gender = model.Gender
	r.JobTitle = model.JobTitle
	r.HireDate = gDto.FormatDate(model.HireDate)
	r.Salary = model.Salary
	r.Status = model.Status
	r.Note = model.Note
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
