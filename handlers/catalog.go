package handlers

import (
	"net/http"

	"github.com/camden-git/hrmbackend/resources"
	"github.com/camden-git/hrmbackend/services"
)

type TechnologyHandler struct {
	Service *services.TechnologyService
}

func (h *TechnologyHandler) ListTechnologies(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.Service.List(r.Context()), http.StatusOK)
}

func (h *TechnologyHandler) ListTechnologiesByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := idParam(w, r, "category_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Service.ListByCategory(r.Context(), categoryID), http.StatusOK)
}

func (h *TechnologyHandler) GetTechnology(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "technology_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Service.FindByID(r.Context(), id), http.StatusOK)
}

func (h *TechnologyHandler) CreateTechnology(w http.ResponseWriter, r *http.Request) {
	var req resources.SaveTechnologyResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Service.Create(r.Context(), req), http.StatusCreated)
}

func (h *TechnologyHandler) UpdateTechnology(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "technology_id")
	if !ok {
		return
	}
	var req resources.SaveTechnologyResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Service.Update(r.Context(), id, req), http.StatusOK)
}

func (h *TechnologyHandler) DeleteTechnology(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "technology_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Service.Delete(r.Context(), id), http.StatusOK)
}

type CategoryHandler struct {
	Service *services.CategoryService
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeResult(w, r, h.Service.List(r.Context()), http.StatusOK)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "category_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Service.FindByID(r.Context(), id), http.StatusOK)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req resources.SaveCategoryResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Service.Create(r.Context(), req), http.StatusCreated)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "category_id")
	if !ok {
		return
	}
	var req resources.SaveCategoryResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Service.Update(r.Context(), id, req), http.StatusOK)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "category_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Service.Delete(r.Context(), id), http.StatusOK)
}
