// AngelaMos | 2026
// role_test.go

package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/petal-commerce/internal/user"
)

func TestRoleAuthorities(t *testing.T) {
	tests := []struct {
		name     string
		role     user.Role
		expected []string
	}{
		{
			name: "user role",
			role: user.RoleUser,
			expected: []string{
				"USER_READ",
				"USER_CREATE",
				"USER_UPDATE",
				"USER_DELETE",
				"ROLE_USER",
			},
		},
		{
			name: "admin role",
			role: user.RoleAdmin,
			expected: []string{
				"ADMIN_READ",
				"ADMIN_CREATE",
				"ADMIN_UPDATE",
				"ADMIN_DELETE",
				"USER_READ",
				"USER_CREATE",
				"USER_UPDATE",
				"USER_DELETE",
				"ROLE_ADMIN",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authorities := tt.role.Authorities()

			assert.ElementsMatch(t, tt.expected, authorities)

			seen := make(map[string]struct{}, len(authorities))
			for _, a := range authorities {
				_, dup := seen[a]
				assert.False(t, dup, "duplicate authority %q", a)
				seen[a] = struct{}{}
			}
		})
	}
}

func TestRoleAuthoritiesSingleRoleTag(t *testing.T) {
	for _, role := range []user.Role{user.RoleUser, user.RoleAdmin} {
		roleTags := 0
		for _, a := range role.Authorities() {
			if len(a) >= 5 && a[:5] == "ROLE_" {
				roleTags++
			}
		}
		assert.Equal(t, 1, roleTags, "role %s", role)
	}
}

func TestRolePermissionsReturnsCopy(t *testing.T) {
	perms := user.RoleUser.Permissions()
	require.NotEmpty(t, perms)

	perms[0] = user.Permission("TAMPERED")

	assert.NotContains(t, user.RoleUser.Permissions(), user.Permission("TAMPERED"))
}

func TestRoleHasPermission(t *testing.T) {
	assert.True(t, user.RoleAdmin.HasPermission(user.PermAdminDelete))
	assert.True(t, user.RoleAdmin.HasPermission(user.PermUserRead))
	assert.True(t, user.RoleUser.HasPermission(user.PermUserUpdate))
	assert.False(t, user.RoleUser.HasPermission(user.PermAdminRead))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, user.RoleUser.Valid())
	assert.True(t, user.RoleAdmin.Valid())
	assert.False(t, user.Role("superuser").Valid())
	assert.False(t, user.Role("").Valid())
}
