package handlers

import (
	"net/http"

	"github.com/camden-git/hrmbackend/resources"
	"github.com/camden-git/hrmbackend/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// Login exchanges credentials for a bearer token. Bad credentials answer 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload resources.LoginResource
	if !decodeAndValidate(w, r, &payload) {
		return
	}

	res := h.Auth.Login(r.Context(), payload)
	if !res.Success && res.Kind == services.FailureInvalid {
		WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, res.Message)
		return
	}
	writeResult(w, r, res, http.StatusOK)
}

// Me returns the signed-in account
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		WriteAPIError(w, http.StatusUnauthorized, CodeUnauthorized, "Authentication required")
		return
	}
	writeJSON(w, http.StatusOK, resources.FromAccount(account))
}
