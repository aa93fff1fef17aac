// AngelaMos | 2026
// role.go

package user

import (
	"strings"
)

// Permission is a single grantable capability, referenced by authorization
// checks as an opaque string tag.
type Permission string

const (
	PermAdminRead   Permission = "ADMIN_READ"
	PermAdminCreate Permission = "ADMIN_CREATE"
	PermAdminUpdate Permission = "ADMIN_UPDATE"
	PermAdminDelete Permission = "ADMIN_DELETE"
	PermUserRead    Permission = "USER_READ"
	PermUserCreate  Permission = "USER_CREATE"
	PermUserUpdate  Permission = "USER_UPDATE"
	PermUserDelete  Permission = "USER_DELETE"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// rolePermissions fixes each role's permission set for the process lifetime.
// Admin enumerates the user permissions explicitly instead of composing
// RoleUser's set; the two lists are maintained independently.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermAdminRead,
		PermAdminCreate,
		PermAdminUpdate,
		PermAdminDelete,
		PermUserRead,
		PermUserCreate,
		PermUserUpdate,
		PermUserDelete,
	},
	RoleUser: {
		PermUserRead,
		PermUserCreate,
		PermUserUpdate,
		PermUserDelete,
	},
}

func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}

// Permissions returns the role's fixed permission set.
func (r Role) Permissions() []Permission {
	perms := rolePermissions[r]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// Authorities derives the full set of authority strings for the role: one
// entry per held permission plus a single "ROLE_<NAME>" tag.
func (r Role) Authorities() []string {
	perms := rolePermissions[r]
	authorities := make([]string, 0, len(perms)+1)
	for _, p := range perms {
		authorities = append(authorities, string(p))
	}
	authorities = append(authorities, "ROLE_"+strings.ToUpper(string(r)))
	return authorities
}

// HasPermission reports whether the role grants the given permission.
func (r Role) HasPermission(p Permission) bool {
	for _, held := range rolePermissions[r] {
		if held == p {
			return true
		}
	}
	return false
}
