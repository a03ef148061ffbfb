package handlers

import (
	"net/http"

	"github.com/camden-git/hrmbackend/resources"
	"github.com/camden-git/hrmbackend/services"
)

// PersonDetailsHandler serves the records owned by a person: projects, skill entries and educations
type PersonDetailsHandler struct {
	Projects        *services.ProjectService
	CategoryPersons *services.CategoryPersonService
	Educations      *services.EducationService
}

func (h *PersonDetailsHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	personID, ok := idParam(w, r, "person_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Projects.ListByPerson(r.Context(), personID), http.StatusOK)
}

func (h *PersonDetailsHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	personID, ok := idParam(w, r, "person_id")
	if !ok {
		return
	}
	var req resources.SaveProjectResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Projects.Create(r.Context(), personID, req), http.StatusCreated)
}

func (h *PersonDetailsHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "project_id")
	if !ok {
		return
	}
	var req resources.SaveProjectResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Projects.Update(r.Context(), id, req), http.StatusOK)
}

func (h *PersonDetailsHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "project_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Projects.Delete(r.Context(), id), http.StatusOK)
}

func (h *PersonDetailsHandler) ListCategoryPersons(w http.ResponseWriter, r *http.Request) {
	personID, ok := idParam(w, r, "person_id")
	if !ok {
		return
	}
	writeResult(w, r, h.CategoryPersons.ListByPerson(r.Context(), personID), http.StatusOK)
}

func (h *PersonDetailsHandler) CreateCategoryPerson(w http.ResponseWriter, r *http.Request) {
	personID, ok := idParam(w, r, "person_id")
	if !ok {
		return
	}
	var req resources.SaveCategoryPersonResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.CategoryPersons.Create(r.Context(), personID, req), http.StatusCreated)
}

func (h *PersonDetailsHandler) UpdateCategoryPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "category_person_id")
	if !ok {
		return
	}
	var req resources.SaveCategoryPersonResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.CategoryPersons.Update(r.Context(), id, req), http.StatusOK)
}

func (h *PersonDetailsHandler) DeleteCategoryPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "category_person_id")
	if !ok {
		return
	}
	writeResult(w, r, h.CategoryPersons.Delete(r.Context(), id), http.StatusOK)
}

func (h *PersonDetailsHandler) ListEducations(w http.ResponseWriter, r *http.Request) {
	personID, ok := idParam(w, r, "person_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Educations.ListByPerson(r.Context(), personID), http.StatusOK)
}

func (h *PersonDetailsHandler) CreateEducation(w http.ResponseWriter, r *http.Request) {
	personID, ok := idParam(w, r, "person_id")
	if !ok {
		return
	}
	var req resources.SaveEducationResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Educations.Create(r.Context(), personID, req), http.StatusCreated)
}

func (h *PersonDetailsHandler) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "education_id")
	if !ok {
		return
	}
	var req resources.SaveEducationResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, h.Educations.Update(r.Context(), id, req), http.StatusOK)
}

func (h *PersonDetailsHandler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "education_id")
	if !ok {
		return
	}
	writeResult(w, r, h.Educations.Delete(r.Context(), id), http.StatusOK)
}
