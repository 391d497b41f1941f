package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// RolePermissions is the capability bundle returned to the console after login.
type RolePermissions struct {
	CanManageUsers    bool `json:"canManageUsers"`
	CanManageRooms    bool `json:"canManageRooms"`
	CanManageBookings bool `json:"canManageBookings"`
	CanManageBills    bool `json:"canManageBills"`
	CanViewReports    bool `json:"canViewReports"`
}

type PermissionData struct {
	Endpoints []Permission               `json:"endpoints"`
	Roles     map[string]RolePermissions `json:"roles"`
	Skip      bool                       `json:"skip"`
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// ForRole returns the bundle of role. Unknown roles get nothing.
func (r *PermissionData) ForRole(role string) RolePermissions {
	if r == nil {
		return RolePermissions{}
	}

	return r.Roles[role]
}

var load = sync.OnceValue(func() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().
		Int("endpoints", len(permissions.Endpoints)).
		Int("roles", len(permissions.Roles)).
		Msg("Successfully loaded embedded permissions")

	return &permissions
})

func Get() *PermissionData {
	return load()
}
