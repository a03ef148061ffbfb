package handlers

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/export"
	"github.com/camden-git/hrmbackend/media"
	"github.com/camden-git/hrmbackend/resources"
	"github.com/camden-git/hrmbackend/services"
	"github.com/camden-git/hrmbackend/utils"
)

const (
	maxAvatarUploadBytes = 10 << 20
	assetURLPrefix       = "/api/"
	xlsxContentType      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type PersonHandler struct {
	Service    *services.PersonService
	Store      media.Store
	AvatarSize int
	Logger     *zap.Logger
}

func (ph *PersonHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	q, ok := pageQuery(w, r)
	if !ok {
		return
	}
	writeResult(w, r, ph.Service.List(r.Context(), q), http.StatusOK)
}

func (ph *PersonHandler) ListPersonsByLocation(w http.ResponseWriter, r *http.Request) {
	locationID, ok := idParam(w, r, "location_id")
	if !ok {
		return
	}
	q, ok := pageQuery(w, r)
	if !ok {
		return
	}
	writeResult(w, r, ph.Service.ListWithLocation(r.Context(), q, locationID), http.StatusOK)
}

// CountPersons reports how many active persons exist
func (ph *PersonHandler) CountPersons(w http.ResponseWriter, r *http.Request) {
	total, err := ph.Service.TotalRecords(r.Context())
	if err != nil {
		ph.Logger.Error("failed to count persons", zap.Error(err))
		WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Failed to count persons")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"total_records": total})
}

func (ph *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	personID, ok := idParam(w, r, "person_id")
	if !ok {
		return
	}
	writeResult(w, r, ph.Service.FindByID(r.Context(), personID), http.StatusOK)
}

func (ph *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req resources.CreatePersonResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, ph.Service.Create(r.Context(), req), http.StatusCreated)
}

func (ph *PersonHandler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	personID, ok := idParam(w, r, "person_id")
	if !ok {
		return
	}
	var req resources.UpdatePersonResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, ph.Service.Update(r.Context(), personID, req), http.StatusOK)
}

func (ph *PersonHandler) AssignComponent(w http.ResponseWriter, r *http.Request) {
	personID, ok := idParam(w, r, "person_id")
	if !ok {
		return
	}
	var req resources.ComponentResource
	if !decodeAndValidate(w, r, &req) {
		return
	}
	writeResult(w, r, ph.Service.AssignComponent(r.Context(), personID, req), http.StatusOK)
}

func (ph *PersonHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	personID, ok := idParam(w, r, "person_id")
	if !ok {
		return
	}
	writeResult(w, r, ph.Service.Delete(r.Context(), personID), http.StatusOK)
}

// UploadAvatar stores a square JPEG of the "avatar" form file and links it to the person.
// The avatar file uploaded before, if any, is removed once the new one is recorded.
func (ph *PersonHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	personID, ok := idParam(w, r, "person_id")
	if !ok {
		return
	}

	current := ph.Service.FindByID(r.Context(), personID)
	if !current.Success {
		writeResult(w, r, current, http.StatusOK)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarUploadBytes)
	if err := r.ParseMultipartForm(maxAvatarUploadBytes); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "Failed to parse multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "Missing 'avatar' file in form")
		return
	}
	defer file.Close()

	rel, err := utils.ProcessAndSaveAvatar(file, ph.Store, media.ImageProcessingOptions{Size: ph.AvatarSize})
	if err != nil {
		ph.Logger.Warn("failed to process avatar upload",
			zap.Uint("person_id", personID), zap.String("filename", header.Filename), zap.Error(err))
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "Failed to process avatar image")
		return
	}

	res, replaced := ph.Service.SetAvatar(r.Context(), personID, assetURLPrefix+rel, rel)
	if !res.Success {
		if delErr := ph.Store.Delete(rel); delErr != nil {
			ph.Logger.Warn("failed to remove orphaned avatar", zap.String("path", rel), zap.Error(delErr))
		}
		writeResult(w, r, res, http.StatusOK)
		return
	}

	if replaced != "" {
		if err := ph.Store.Delete(replaced); err != nil {
			ph.Logger.Warn("failed to remove previous avatar", zap.String("path", replaced), zap.Error(err))
		}
	}
	writeResult(w, r, res, http.StatusOK)
}

// ExportPersons downloads the active persons as an xlsx workbook
func (ph *PersonHandler) ExportPersons(w http.ResponseWriter, r *http.Request) {
	res := ph.Service.ExportActive(r.Context())
	if !res.Success {
		writeResult(w, r, res, http.StatusOK)
		return
	}

	data, err := export.PersonsWorkbook(*res.Resource)
	if err != nil {
		ph.Logger.Error("failed to build person export", zap.Error(err))
		WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Failed to build export")
		return
	}

	filename := fmt.Sprintf("persons_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		ph.Logger.Warn("failed to write person export", zap.Error(err))
	}
}
