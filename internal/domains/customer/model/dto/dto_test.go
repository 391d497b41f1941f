package dto_test

import (
	"encoding/json"
	"testing"

	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerRequest_NumericFields(t *testing.T) {
	var req dto.CreateCustomerRequest

	body := `{"fullName":"Tran Thi B","nationalId":79201000123,"phoneNumber":"0901234567","vip":true}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	customer := req.ToModel("admin")

	assert.Equal(t, "Tran Thi B", customer.FullName)
	assert.Equal(t, "79201000123", customer.NationalID)
	assert.Equal(t, "0901234567", customer.PhoneNumber)
	assert.Equal(t, "admin", customer.CreatedBy)
	assert.Empty(t, customer.ID)
}

func TestUpdateCustomerRequest_Apply(t *testing.T) {
	customer := model.Customer{
		ID:          "KH1",
		FullName:    "Le Van C",
		Address:     "Hue",
		PhoneNumber: "0900000000",
		Email:       "c@example.com",
	}

	var req dto.UpdateCustomerRequest
	require.NoError(t, json.Unmarshal([]byte(`{"address":"Da Nang","phoneNumber":912345678}`), &req))

	req.Apply(&customer)

	assert.Equal(t, "KH1", customer.ID)
	assert.Equal(t, "Le Van C", customer.FullName)
	assert.Equal(t, "Da Nang", customer.Address)
	assert.Equal(t, "912345678", customer.PhoneNumber)
	assert.Equal(t, "c@example.com", customer.Email)
}
