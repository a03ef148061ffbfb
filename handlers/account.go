package handlers

import (
	"net/http"

	"github.com/camden-git/hrmbackend/resources"
	"github.com/camden-git/hrmbackend/services"
)

type AccountHandler struct {
	Service *services.AccountService
}

func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	q, ok := pageQuery(w, r)
	if !ok {
		return
	}
	writeResult(w, r, h.Service.List(r.Context(), q), http.StatusOK)
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "account_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Service.FindByID(r.Context(), id), http.StatusOK)
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req resources.CreateAccountResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Service.Create(r.Context(), req), http.StatusCreated)
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "account_id")
	if !ok {
		return
	}
	var req resources.UpdateAccountResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Service.Update(r.Context(), id, req), http.StatusOK)
}

// DeleteAccount removes an account. Accounts cannot delete themselves.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "account_id")
	if !ok {
		return
	}
	if current, ok := AccountFromContext(r.Context()); ok && current.ID == id {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "You cannot delete your own account.")
		return
	}
	writeResult(w, r, h.Service.Delete(r.Context(), id), http.StatusOK)
}
