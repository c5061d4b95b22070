// Package httputil writes JSON responses and translates business errors into
// HTTP status codes.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "parcours/pkg/domain-errors"
)

// ErrorBody is one entry of an error response.
type ErrorBody struct {
	StatusCode string `json:"status_code"`
	Message    string `json:"message"`
}

// ErrorResponse lists every business error raised by a request.
type ErrorResponse struct {
	Errors []ErrorBody `json:"errors"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind dErrors.Kind) int {
	switch kind {
	case dErrors.KindNotFound:
		return http.StatusNotFound
	case dErrors.KindConflict:
		return http.StatusConflict
	case dErrors.KindPrecondition, dErrors.KindIncompleteData, dErrors.KindInvalidValue, dErrors.KindExternalNotFound:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusOf picks the status of a list: any internal error wins, then a
// uniform kind keeps its own status, anything mixed is a bad request.
func statusOf(errs []*dErrors.Error) int {
	status := 0
	for _, e := range errs {
		s := StatusFor(e.Kind)
		if s == http.StatusInternalServerError {
			return s
		}
		if status != 0 && status != s {
			status = http.StatusBadRequest
			continue
		}
		status = s
	}
	if status == 0 {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError renders err in language. Internal errors never expose their
// detail.
func WriteError(w http.ResponseWriter, err error, language string) {
	multiple := dErrors.AsMultiple(err)
	if multiple == nil {
		multiple = &dErrors.Multiple{Errors: []*dErrors.Error{dErrors.ErrInternal}}
	}
	body := ErrorResponse{Errors: make([]ErrorBody, 0, len(multiple.Errors))}
	for _, e := range multiple.Errors {
		body.Errors = append(body.Errors, ErrorBody{
			StatusCode: string(e.Code),
			Message:    e.Localized(language),
		})
	}
	WriteJSON(w, statusOf(multiple.Errors), body)
}
