package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleHasPermission(t *testing.T) {
	assert.True(t, RoleHasPermission(RoleViewer, PermPersonView))
	assert.False(t, RoleHasPermission(RoleViewer, PermPersonEdit))

	assert.True(t, RoleHasPermission(RoleEditor, PermPersonEdit))
	assert.False(t, RoleHasPermission(RoleEditor, PermPersonDelete))
	assert.False(t, RoleHasPermission(RoleEditor, PermAccountManage))

	for _, key := range GetAllPermissionKeys() {
		assert.True(t, RoleHasPermission(RoleAdmin, key), key)
	}

	assert.False(t, RoleHasPermission("intern", PermPersonView))
}

func TestRoleDefinitionsOnlyUseDefinedKeys(t *testing.T) {
	for role, keys := range rolePermissions {
		for _, key := range keys {
			assert.True(t, IsValidPermissionKey(key), "%s grants undefined permission %s", role, key)
		}
	}
	assert.True(t, IsValidRole(RoleAdmin))
	assert.False(t, IsValidRole("root"))
	assert.Equal(t, len(GetAllPermissionKeys()), len(PermissionsForRole(RoleAdmin)))
}
