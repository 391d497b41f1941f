package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.True(t, createdAt.Equal(mustParse(t, metadata.CreatedAt)))
	assert.True(t, modifiedAt.Equal(mustParse(t, metadata.ModifiedAt)))
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)

	body, err := json.Marshal(metadata)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"createdBy":"creator"`)
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(constant.DateFormat, value)
	require.NoError(t, err)

	return parsed
}

func TestLenientFloat(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{name: "number", body: `{"basePrice":120.5}`, want: 120.5},
		{name: "numeric string", body: `{"basePrice":"120.50"}`, want: 120.5},
		{name: "padded string", body: `{"basePrice":" 80 "}`, want: 80},
		{name: "unparsable string", body: `{"basePrice":"cheap"}`, want: 0},
		{name: "null", body: `{"basePrice":null}`, want: 0},
		{name: "boolean", body: `{"basePrice":true}`, want: 0},
		{name: "absent", body: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				BasePrice dto.LenientFloat `json:"basePrice"`
			}

			require.NoError(t, json.Unmarshal([]byte(tt.body), &payload))
			assert.InDelta(t, tt.want, payload.BasePrice.Float64(), 0.0001)
		})
	}
}

func TestLenientString(t *testing.T) {
	var payload struct {
		NationalID  dto.LenientString  `json:"nationalId"`
		PhoneNumber *dto.LenientString `json:"phoneNumber"`
		Email       *dto.LenientString `json:"email"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"nationalId":"079201000123","phoneNumber":912345678}`), &payload))

	assert.Equal(t, "079201000123", payload.NationalID.String())
	require.NotNil(t, payload.PhoneNumber)
	assert.Equal(t, "912345678", *payload.PhoneNumber.StringPtr())
	assert.Nil(t, payload.Email.StringPtr())

	err := json.Unmarshal([]byte(`{"nationalId":{"nested":true}}`), &payload)
	assert.Error(t, err)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		expected string
		args     map[string]any
	}{
		{
			name:     "eq",
			filter:   dto.Filter{Field: "login_name", Operator: dto.FilterOperatorEq, Value: "admin"},
			expected: "login_name = :login_name",
			args:     map[string]any{"login_name": "admin"},
		},
		{
			name:     "like with table",
			filter:   dto.Filter{Field: "full_name", Table: "customers", Operator: dto.FilterOperatorLike, Value: "an"},
			expected: "LOWER(customers.full_name) LIKE LOWER(:full_name)",
			args:     map[string]any{"full_name": "%an%"},
		},
		{
			name:     "in with slice",
			filter:   dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{"Booked", "CheckedIn"}},
			expected: "status IN (:status_0, :status_1)",
			args:     map[string]any{"status_0": "Booked", "status_1": "CheckedIn"},
		},
		{
			name:     "greater or equal with arg name",
			filter:   dto.Filter{Field: "check_in_date", ArgName: "start", Operator: dto.FilterOperatorGreaterEq, Value: 1},
			expected: "check_in_date >= :start",
			args:     map[string]any{"start": 1},
		},
		{
			name:     "is null",
			filter:   dto.Filter{Field: "last_login_at", Operator: dto.FilterIsNull},
			expected: "last_login_at IS NULL",
			args:     map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expected, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilterGroup_GetWhereClauseDefaultsToAnd(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "customer_id", Operator: dto.FilterOperatorEq, Value: "KH1"},
			dto.Filter{Field: "room_id", Operator: dto.FilterOperatorEq, Value: "P1"},
			dto.FilterGroup{},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(customer_id = :customer_id AND room_id = :room_id)", where)
	assert.Len(t, args, 2)
}

func TestFilterGroup_Match(t *testing.T) {
	checkIn := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	row := map[string]any{
		"id":            "DP1",
		"customer_id":   "KH1",
		"guest_count":   2,
		"check_in_date": checkIn,
		"note":          (*string)(nil),
		"status":        "Booked",
	}

	tests := []struct {
		name  string
		group dto.FilterGroup
		want  bool
	}{
		{name: "empty group", group: dto.FilterGroup{}, want: true},
		{
			name: "eq and number compare",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "customer_id", Operator: dto.FilterOperatorEq, Value: "KH1"},
				dto.Filter{Field: "guest_count", Operator: dto.FilterOperatorLessEq, Value: 2},
			}},
			want: true,
		},
		{
			name: "and fails on one",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "customer_id", Operator: dto.FilterOperatorEq, Value: "KH1"},
				dto.Filter{Field: "guest_count", Operator: dto.FilterOperatorGreaterEq, Value: 3},
			}},
			want: false,
		},
		{
			name: "or matches one",
			group: dto.FilterGroup{Operator: dto.FilterGroupOperatorOr, Filters: []any{
				dto.Filter{Field: "customer_id", Operator: dto.FilterOperatorEq, Value: "KH9"},
				dto.Filter{Field: "status", Operator: dto.FilterOperatorLike, Value: "book"},
			}},
			want: true,
		},
		{
			name: "or matches none",
			group: dto.FilterGroup{Operator: dto.FilterGroupOperatorOr, Filters: []any{
				dto.Filter{Field: "customer_id", Operator: dto.FilterOperatorNotEq, Value: "KH1"},
				dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{"Cancelled"}},
			}},
			want: false,
		},
		{
			name: "time range",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "check_in_date", Operator: dto.FilterOperatorGreaterEq, Value: checkIn},
				dto.Filter{Field: "check_in_date", Operator: dto.FilterOperatorLessEq, Value: checkIn.Add(time.Hour)},
			}},
			want: true,
		},
		{
			name: "nil pointer is null",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "note", Operator: dto.FilterIsNull},
				dto.Filter{Field: "status", Operator: dto.FilterIsNotNull},
			}},
			want: true,
		},
		{
			name: "nested group",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: "DP1"},
				dto.FilterGroup{Operator: dto.FilterGroupOperatorOr, Filters: []any{
					dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "CheckedIn"},
					dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "Booked"},
				}},
			}},
			want: true,
		},
		{
			name: "mismatched types never compare",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "guest_count", Operator: dto.FilterOperatorGreaterEq, Value: "1"},
			}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.group.Match(row))
		})
	}
}

func TestParseDateField(t *testing.T) {
	parsed, err := dto.ParseDateField("checkInDate", "")
	require.NoError(t, err)
	assert.Nil(t, parsed)

	parsed, err = dto.ParseDateField("checkInDate", "2025-06-01")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, time.June, parsed.Month())

	_, err = dto.ParseDateField("checkInDate", "01/06/2025")
	assert.EqualError(t, err, "checkInDate must be an ISO-8601 date")
}

func TestFormatDate(t *testing.T) {
	assert.Nil(t, dto.FormatDate(nil))

	moment := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	formatted := dto.FormatDate(&moment)

	require.NotNil(t, formatted)

	roundTrip, err := time.Parse(constant.DateFormat, *formatted)
	require.NoError(t, err)
	assert.True(t, moment.Equal(roundTrip))
}
