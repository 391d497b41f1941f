package permissions_test

import (
	"testing"

	"hotel/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
	assert.Same(t, data, permissions.Get())
}

func TestForRole(t *testing.T) {
	data := permissions.Get()

	assert.Equal(t, permissions.RolePermissions{
		CanManageUsers:    true,
		CanManageRooms:    true,
		CanManageBookings: true,
		CanManageBills:    true,
		CanViewReports:    true,
	}, data.ForRole("admin"))

	receptionist := data.ForRole("receptionist")
	assert.True(t, receptionist.CanManageBookings)
	assert.False(t, receptionist.CanManageUsers)

	assert.Equal(t, permissions.RolePermissions{}, data.ForRole("intruder"))

	var empty *permissions.PermissionData
	assert.Equal(t, permissions.RolePermissions{}, empty.ForRole("admin"))
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()

	login := data.FindPermissions("/api/auth/login", "POST")
	assert.True(t, login.Skip)

	deleteAccount := data.FindPermissions("/api/accounts/{id}", "DELETE")
	assert.Equal(t, []string{"admin"}, deleteAccount.Permissions)

	listRooms := data.FindPermissions("/api/rooms", "GET")
	assert.Contains(t, listRooms.Permissions, "receptionist")

	resetSettings := data.FindPermissions("/api/settings/reset", "POST")
	assert.Equal(t, []string{"admin"}, resetSettings.Permissions)

	readSettings := data.FindPermissions("/api/settings", "GET")
	assert.Contains(t, readSettings.Permissions, "receptionist")

	searchEmployees := data.FindPermissions("/api/employees/search", "GET")
	assert.ElementsMatch(t, []string{"admin", "manager"}, searchEmployees.Permissions)

	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/api/unknown", "GET"))
}
