package handlers

import (
	"net/http"

	"github.com/camden-git/hrmbackend/permissions"
)

type PermissionsHandler struct{}

func NewPermissionsHandler() *PermissionsHandler {
	return &PermissionsHandler{}
}

// ListDefinedPermissions serves the statically defined permission groups and their permissions.
func (h *PermissionsHandler) ListDefinedPermissions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, permissions.DefinedPermissionGroups)
}

type rolePermissionsResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// ListMyPermissions serves the permission keys granted to the signed-in account's role.
func (h *PermissionsHandler) ListMyPermissions(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "Authentication required")
		return
	}
	writeJSON(w, http.StatusOK, rolePermissionsResponse{
		Role:        account.Role,
		Permissions: permissions.PermissionsForRole(account.Role),
	})
}
