package di_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel/di"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type api struct {
	t       *testing.T
	handler http.Handler
}

func newAPI(t *testing.T) api {
	t.Helper()

	return api{t: t, handler: di.InitializeService().Handler()}
}

func (a api) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var payload bytes.Buffer
	if body != nil {
		switch v := body.(type) {
		case string:
			payload.WriteString(v)
		default:
			require.NoError(a.t, json.NewEncoder(&payload).Encode(v))
		}
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

type message struct {
	Message string `json:"message"`
}

type record map[string]any

func TestCustomerLifecycle(t *testing.T) {
	a := newAPI(t)

	for i, want := range []string{"KH1", "KH2", "KH3"} {
		rec := a.do(http.MethodPost, "/api/customers", record{"fullName": "Guest", "nationalId": 7900 + i})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		created := decode[record](t, rec)
		assert.Equal(t, want, created["id"])
		assert.Equal(t, "/api/customers/"+want, rec.Header().Get("Location"))
	}

	rec := a.do(http.MethodGet, "/api/customers/KH2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7901", decode[record](t, rec)["nationalId"])

	rec = a.do(http.MethodDelete, "/api/customers/KH2", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(http.MethodGet, "/api/customers/KH2", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "customer not found", decode[message](t, rec).Message)

	rec = a.do(http.MethodGet, "/api/customers", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	all := decode[[]record](t, rec)
	require.Len(t, all, 2)
	assert.Equal(t, "KH1", all[0]["id"])
	assert.Equal(t, "KH3", all[1]["id"])
}

func TestResourceLifecycle(t *testing.T) {
	tests := []struct {
		resource string
		prefix   string
		body     record
	}{
		{resource: "customers", prefix: "KH", body: record{"fullName": "Tran Minh", "nationalId": 79123456, "phoneNumber": "0901234567"}},
		{resource: "employees", prefix: "NV", body: record{"fullName": "Le Hoa", "email": "hoa@hotel.test", "jobTitle": "receptionist", "birthDate": "1995-04-12", "salary": 1200}},
		{resource: "accounts", prefix: "TK", body: record{"loginName": "hoa", "password": "s3cret", "role": "receptionist"}},
		{resource: "room-types", prefix: "LP", body: record{"name": "Deluxe", "description": "sea view", "basePrice": 120.5}},
		{resource: "rooms", prefix: "P", body: record{"name": "101", "roomTypeId": "LP1", "status": "available"}},
		{resource: "bookings", prefix: "DP", body: record{"customerId": "KH1", "roomId": "P1", "checkInDate": "2025-07-02", "checkOutDate": "2025-07-04", "guestCount": 2}},
		{resource: "bills", prefix: "HD", body: record{"customerId": "KH1", "bookingId": "DP1", "issueDate": "2025-07-04", "totalAmount": 180.25, "paymentMethod": "cash"}},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			a := newAPI(t)
			base := "/api/" + tt.resource

			rec := a.do(http.MethodPost, base, tt.body)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

			created := decode[record](t, rec)
			id, ok := created["id"].(string)
			require.True(t, ok)
			assert.True(t, strings.HasPrefix(id, tt.prefix), "id %s", id)
			assert.Equal(t, base+"/"+id, rec.Header().Get("Location"))

			rec = a.do(http.MethodGet, base+"/"+id, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, created, decode[record](t, rec))

			rec = a.do(http.MethodDelete, base+"/"+id, nil)
			require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
			assert.Empty(t, rec.Body.String())

			rec = a.do(http.MethodGet, base+"/"+id, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)

			rec = a.do(http.MethodDelete, base+"/"+id, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestAccountRegistrationAndLogin(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/accounts/register", record{"loginName": "lan", "password": "s3cret", "role": "receptionist"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	account := decode[record](t, rec)
	assert.Equal(t, true, account["active"])
	assert.NotContains(t, rec.Body.String(), "s3cret")
	assert.NotContains(t, account, "password")

	rec = a.do(http.MethodPost, "/api/accounts/register", record{"loginName": "lan", "password": "other"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "login name already exists", decode[message](t, rec).Message)

	rec = a.do(http.MethodPost, "/api/accounts/register", record{"loginName": "", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/api/accounts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	matches := 0
	for _, acc := range decode[[]record](t, rec) {
		if acc["loginName"] == "lan" {
			matches++
		}
	}

	assert.Equal(t, 1, matches)

	for range 5 {
		calledAt := time.Now()

		rec = a.do(http.MethodPost, "/api/accounts/login", record{"loginName": "lan", "password": "s3cret"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		lastLogin, err := time.Parse(time.RFC3339Nano, decode[record](t, rec)["lastLoginAt"].(string))
		require.NoError(t, err)
		assert.False(t, lastLogin.Before(calledAt), "lastLoginAt %s is before the call at %s", lastLogin, calledAt)

		time.Sleep(3 * time.Millisecond)
	}

	rec = a.do(http.MethodPost, "/api/accounts/login", record{"loginName": "lan", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(http.MethodPut, "/api/accounts/"+account["id"].(string), record{"active": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(http.MethodPost, "/api/accounts/login", record{"loginName": "lan", "password": "s3cret"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLogin(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/auth/login", record{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decode[struct {
		Token       string          `json:"token"`
		User        record          `json:"user"`
		Permissions map[string]bool `json:"permissions"`
	}](t, rec)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "admin", res.User["loginName"])
	assert.Equal(t, "admin", res.User["role"])
	assert.True(t, res.Permissions["canManageUsers"])
	assert.True(t, res.Permissions["canViewReports"])

	rec = a.do(http.MethodPost, "/api/auth/login", record{"username": "admin", "password": "guess"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, decode[message](t, rec).Message)
}

func TestRoomTypePrice(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/room-types", record{"name": "  ", "basePrice": 10})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodPost, "/api/room-types", record{"name": "Deluxe", "basePrice": "120.50"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.InDelta(t, 120.5, decode[record](t, rec)["basePrice"], 0.0001)

	rec = a.do(http.MethodPost, "/api/room-types", record{"name": "Suite", "basePrice": "abc"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.InDelta(t, 0.0, decode[record](t, rec)["basePrice"], 0.0001)
}

func TestRoomUpdate(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPut, "/api/rooms/P404", record{"status": "cleaning"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodPost, "/api/rooms", record{"name": "101", "status": "available"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(http.MethodPut, "/api/rooms/P1", `{"status":"cleaning","floorPlan":"unused"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	room := decode[record](t, rec)
	assert.Equal(t, "cleaning", room["status"])
	assert.Equal(t, "101", room["name"])
}

func TestBookingAndBillQueries(t *testing.T) {
	a := newAPI(t)

	bookings := []record{
		{"customerId": "KH1", "roomId": "P1", "checkInDate": "2025-07-02", "checkOutDate": "2025-07-04"},
		{"customerId": "KH2", "roomId": "P1", "checkInDate": "2025-07-10", "checkOutDate": "2025-08-02"},
		{"customerId": "KH1", "roomId": "P2", "checkInDate": "2025-07-20", "checkOutDate": "2025-07-21"},
	}

	for _, booking := range bookings {
		rec := a.do(http.MethodPost, "/api/bookings", booking)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := a.do(http.MethodGet, "/api/bookings/customer/KH1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]record](t, rec), 2)

	rec = a.do(http.MethodGet, "/api/bookings/room/P1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]record](t, rec), 2)

	rec = a.do(http.MethodGet, "/api/bookings/date-range?startDate=2025-07-01&endDate=2025-07-31", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decode[[]record](t, rec), 2)

	rec = a.do(http.MethodGet, "/api/bookings/date-range?startDate=2025-07-01", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodPost, "/api/bills", record{"customerId": "KH1", "bookingId": "DP1", "issueDate": "2025-07-04", "totalAmount": 180.25})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(http.MethodGet, "/api/bills/HD1/total", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":180.25}`, rec.Body.String())

	rec = a.do(http.MethodGet, "/api/bills/date-range?startDate=2025-07-01&endDate=2025-07-31", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]record](t, rec), 1)

	rec = a.do(http.MethodGet, "/api/bills/customer/KH2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]record](t, rec))
}

func TestEmployeeQueries(t *testing.T) {
	a := newAPI(t)

	employees := []record{
		{"fullName": "Nguyen Thi Lan", "email": "lan@hotel.test", "phone": "0901000001", "jobTitle": "receptionist"},
		{"fullName": "Tran Van Minh", "email": "minh@hotel.test", "phone": "0912000002", "jobTitle": "manager"},
		{"fullName": "Le Thi Hoa", "email": "hoa@hotel.test", "phone": "0988000003", "jobTitle": "receptionist"},
	}

	for _, employee := range employees {
		rec := a.do(http.MethodPost, "/api/employees", employee)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := a.do(http.MethodGet, "/api/employees/role/receptionist", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	found := decode[[]record](t, rec)
	require.Len(t, found, 2)
	assert.Equal(t, "NV1", found[0]["id"])
	assert.Equal(t, "NV3", found[1]["id"])

	rec = a.do(http.MethodGet, "/api/employees/search?query=MINH", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	found = decode[[]record](t, rec)
	require.Len(t, found, 1)
	assert.Equal(t, "NV2", found[0]["id"])

	rec = a.do(http.MethodGet, "/api/employees/search?query=0988", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]record](t, rec), 1)

	rec = a.do(http.MethodGet, "/api/employees/search", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]record](t, rec), 3)

	rec = a.do(http.MethodGet, "/api/employees/role/housekeeper", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]record](t, rec))
}

func TestSettings(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	settings := decode[record](t, rec)
	assert.Equal(t, "Hotel", settings["hotelName"])
	assert.Equal(t, "light", settings["theme"])
	assert.NotContains(t, settings, "id")

	rec = a.do(http.MethodPut, "/api/settings", `{"theme":"dark","taxRate":"8","checkInTime":"13:00"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	settings = decode[record](t, rec)
	assert.Equal(t, "dark", settings["theme"])
	assert.InDelta(t, 8.0, settings["taxRate"], 0.0001)
	assert.Equal(t, "13:00", settings["checkInTime"])
	assert.Equal(t, "Hotel", settings["hotelName"])

	rec = a.do(http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dark", decode[record](t, rec)["theme"])

	rec = a.do(http.MethodPut, "/api/settings", record{"theme": "neon"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodPost, "/api/settings/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	settings = decode[record](t, rec)
	assert.Equal(t, "light", settings["theme"])
	assert.Equal(t, "14:00", settings["checkInTime"])
}

func TestRecoverAndRouting(t *testing.T) {
	a := newAPI(t)

	mux, ok := a.handler.(*chi.Mux)
	require.True(t, ok)

	mux.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})

	rec := a.do(http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = a.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodGet, "/api/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
