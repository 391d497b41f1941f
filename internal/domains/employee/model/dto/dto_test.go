package dto_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"hotel/internal/domains/employee/model"
	"hotel/internal/domains/employee/model/dto"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRequest_ApplyReplacesEverything(t *testing.T) {
	note := "night shift"
	employee := model.Employee{
		ID:       "NV1",
		FullName: "Pham Thi D",
		JobTitle: "Receptionist",
		Salary:   9000000,
		Note:     &note,
	}

	var req dto.EmployeeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"fullName":"Pham Thi D","hireDate":"2024-02-01","phone":912000111}`), &req))
	require.NoError(t, req.Apply(&employee))

	assert.Equal(t, "NV1", employee.ID)
	assert.Empty(t, employee.JobTitle)
	assert.Zero(t, employee.Salary)
	assert.Nil(t, employee.Note)
	assert.Equal(t, "912000111", employee.Phone)
	require.NotNil(t, employee.HireDate)
	assert.Equal(t, 2024, employee.HireDate.Year())
}

func TestEmployeeRequest_InvalidDate(t *testing.T) {
	req := dto.EmployeeRequest{BirthDate: "yesterday"}

	_, err := req.ToModel("admin")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestEmployeeResponse_FromModel(t *testing.T) {
	var res dto.EmployeeResponse
	res.FromModel(model.Employee{ID: "NV2", FullName: "Vo Van E"})

	assert.Equal(t, "NV2", res.ID)
	assert.Nil(t, res.BirthDate)
	assert.Nil(t, res.HireDate)
}
