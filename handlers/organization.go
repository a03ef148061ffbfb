package handlers

import (
	"net/http"
	"strings"

	"github.com/camden-git/hrmbackend/resources"
	"github.com/camden-git/hrmbackend/services"
)

type GroupHandler struct {
	Service *services.GroupService
}

func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.Service.List(r.Context()), http.StatusOK)
}

// SearchGroups matches ?name= against group names ignoring case and whitespace
func (h *GroupHandler) SearchGroups(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "Missing required query parameter: name")
		return
	}
	writeResult(w, r, h.Service.Search(r.Context(), name), http.StatusOK)
}

func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "group_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Service.FindByID(r.Context(), id), http.StatusOK)
}

func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req resources.SaveGroupResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Service.Create(r.Context(), req), http.StatusCreated)
}

func (h *GroupHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "group_id")
	if !ok {
		return
	}
	var req resources.SaveGroupResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Service.Update(r.Context(), id, req), http.StatusOK)
}

func (h *GroupHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "group_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Service.Delete(r.Context(), id), http.StatusOK)
}

type LocationHandler struct {
	Service *services.LocationService
}

func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.Service.List(r.Context()), http.StatusOK)
}

func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "location_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Service.FindByID(r.Context(), id), http.StatusOK)
}

func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req resources.SaveLocationResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Service.Create(r.Context(), req), http.StatusCreated)
}

func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "location_id")
	if !ok {
		return
	}
	var req resources.SaveLocationResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Service.Update(r.Context(), id, req), http.StatusOK)
}

func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "location_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Service.Delete(r.Context(), id), http.StatusOK)
}
