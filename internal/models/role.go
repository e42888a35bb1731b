package models

import "strings"

// Role replaces the staff/superuser flag pair with an explicit axis.
type Role string

const (
	RoleCollaborator Role = "COLLABORATOR"
	RoleStaff        Role = "STAFF"
	RoleSuperuser    Role = "SUPERUSER"
)

// Capability is "<module>:<action>".
type Capability string

const (
	CapCatalogRead  Capability = "catalog:read"
	CapCatalogWrite Capability = "catalog:write"
	CapUsersManage  Capability = "users:manage"
)

var roleCapabilities = map[Role][]Capability{
	RoleCollaborator: {CapCatalogRead},
	RoleStaff:        {CapCatalogRead, CapCatalogWrite},
	RoleSuperuser:    {CapCatalogRead, CapCatalogWrite, CapUsersManage},
}

func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

func (r Role) Can(c Capability) bool {
	for _, have := range roleCapabilities[r] {
		if have == c {
			return true
		}
	}
	return false
}

// CanAccessModule reports whether the role holds any capability in module.
func (r Role) CanAccessModule(module string) bool {
	prefix := module + ":"
	for _, have := range roleCapabilities[r] {
		if strings.HasPrefix(string(have), prefix) {
			return true
		}
	}
	return false
}

// AccountView is a filtered view over users: the staff list or the
// collaborator list. Each view pins the role of the records it saves.
type AccountView string

const (
	ViewStaff        AccountView = "staff"
	ViewCollaborator AccountView = "collaborator"
)

func (v AccountView) Valid() bool {
	return v == ViewStaff || v == ViewCollaborator
}

// Roles lists the roles visible through the view.
func (v AccountView) Roles() []Role {
	if v == ViewCollaborator {
		return []Role{RoleCollaborator}
	}
	return []Role{RoleStaff, RoleSuperuser}
}

// Pin returns the role a record saved through the view ends up with.
// Superusers keep their role when edited through the staff view.
func (v AccountView) Pin(current Role) Role {
	if v == ViewCollaborator {
		return RoleCollaborator
	}
	if current == RoleSuperuser {
		return RoleSuperuser
	}
	return RoleStaff
}
