package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/camden-git/hrmbackend/database"
	"github.com/camden-git/hrmbackend/services"
)

const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// On failure it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeValidationErrors(w, err)
		return false
	}
	return true
}

func writeValidationErrors(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		WriteAPIError(w, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	details := make([]APIErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, APIErrorDetail{
			Code:   CodeValidation,
			Detail: validationMessage(fe),
		})
	}
	writeAPIErrors(w, http.StatusBadRequest, details)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the '%s' check", fe.Field(), fe.Tag())
	}
}

// idParam parses a positive numeric route parameter. On failure it writes a 400 and returns false.
func idParam(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, fmt.Sprintf("Invalid %s '%s'", name, raw))
		return 0, false
	}
	return uint(id), true
}

// pageQuery reads page, page_size and sort from the query string. Unknown sort orders are rejected.
func pageQuery(w http.ResponseWriter, r *http.Request) (services.Query, bool) {
	q := r.URL.Query()
	var out services.Query

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "Invalid page parameter")
			return out, false
		}
		out.Page = page
	}
	if v := q.Get("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "Invalid page_size parameter")
			return out, false
		}
		out.PageSize = size
	}
	if v := q.Get("sort"); v != "" {
		if !database.IsValidSortOrder(v) {
			WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, fmt.Sprintf("Invalid sort order '%s'", v))
			return out, false
		}
		out.Sort = v
	}
	return out, true
}
