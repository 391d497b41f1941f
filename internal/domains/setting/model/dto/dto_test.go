package dto_test

import (
	"net/http"
	"strings"
	"testing"

	"hotel/config"
	"hotel/internal/domains/setting/model"
	"hotel/internal/domains/setting/model/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.Settings.HotelName = "Sea Breeze"
	cfg.Settings.TaxRate = 10
	cfg.Settings.Theme = "light"

	setting := dto.Defaults(cfg, "system")

	assert.Equal(t, model.DefaultProfile, setting.Profile)
	assert.Equal(t, "Sea Breeze", setting.HotelName)
	assert.InDelta(t, 10, setting.TaxRate, 0.0001)
	assert.Equal(t, "light", setting.Theme)
	assert.Equal(t, "system", setting.CreatedBy)
}

func TestUpdateSettingsRequest_Apply(t *testing.T) {
	setting := model.Setting{ID: "CH1", HotelName: "Sea Breeze", Phone: "0900", TaxRate: 10, Theme: "light"}

	var req dto.UpdateSettingsRequest
	require.NoError(t, validator.Validate(strings.NewReader(`{"phone":912345678,"taxRate":"8","theme":"dark","address":""}`), &req))

	req.Apply(&setting)

	assert.Equal(t, "CH1", setting.ID)
	assert.Equal(t, "Sea Breeze", setting.HotelName)
	assert.Equal(t, "912345678", setting.Phone)
	assert.InDelta(t, 8, setting.TaxRate, 0.0001)
	assert.Equal(t, "dark", setting.Theme)
	assert.Empty(t, setting.Address)
}

func TestUpdateSettingsRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "empty body", body: `{}`},
		{name: "valid times", body: `{"checkInTime":"13:30","checkOutTime":"11:00"}`},
		{name: "unknown theme", body: `{"theme":"neon"}`, wantErr: true},
		{name: "negative tax", body: `{"taxRate":-1}`, wantErr: true},
		{name: "tax over 100", body: `{"taxRate":"150"}`, wantErr: true},
		{name: "malformed time", body: `{"checkInTime":"2pm"}`, wantErr: true},
		{name: "blank hotel name", body: `{"hotelName":"  "}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.UpdateSettingsRequest
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}
