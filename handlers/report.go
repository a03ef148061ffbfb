package handlers

import (
	"database/sql"
	"net/http"

	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/database"
)

type ReportHandler struct {
	DB     *sql.DB
	Logger *zap.Logger
}

func (h *ReportHandler) HeadcountByLocation(w http.ResponseWriter, r *http.Request) {
	rows, err := database.HeadcountByLocation(r.Context(), h.DB)
	if err != nil {
		h.Logger.Error("failed to build headcount report", zap.Error(err))
		WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Failed to build headcount report")
		return
	}
	if rows == nil {
		rows = []database.LocationHeadcount{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) UsageByCategory(w http.ResponseWriter, r *http.Request) {
	rows, err := database.UsageByCategory(r.Context(), h.DB)
	if err != nil {
		h.Logger.Error("failed to build category usage report", zap.Error(err))
		WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Failed to build category usage report")
		return
	}
	if rows == nil {
		rows = []database.CategoryUsage{}
	}
	writeJSON(w, http.StatusOK, rows)
}
