package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cookiecravings/api/internal/common"
)

// errorResponse is the uniform error body: a list of field-attributed
// messages, matching what the registration/login validators produce.
type errorResponse struct {
	Errors []common.FieldError `json:"errors"`
}

func fieldErrors(field, message string) errorResponse {
	return errorResponse{Errors: []common.FieldError{{Field: field, Message: message}}}
}

func (s *HTTPServer) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(ctx, "response encoding error", "error", err)
	}
}

func (s *HTTPServer) renderBadBody(w http.ResponseWriter) {
	s.writeJSON(context.Background(), w, http.StatusBadRequest, fieldErrors("body", "Invalid request body"))
}

func (s *HTTPServer) renderUnauthorized(w http.ResponseWriter, message string) {
	s.writeJSON(context.Background(), w, http.StatusUnauthorized, fieldErrors("token", message))
}

// renderError maps workflow errors onto the HTTP error taxonomy. Anything
// unrecognized is a server error: logged in full, reported generically.
func (s *HTTPServer) renderError(ctx context.Context, w http.ResponseWriter, err error) {

	var ve *common.ValidationError
	if errors.As(err, &ve) {
		s.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Errors: ve.Fields})
		return
	}

	var ce *common.ConflictError
	if errors.As(err, &ce) {
		s.writeJSON(ctx, w, http.StatusBadRequest, fieldErrors(ce.Field, ce.Message()))
		return
	}

	var ae *common.AuthError
	if errors.As(err, &ae) {
		s.writeJSON(ctx, w, http.StatusBadRequest, fieldErrors(ae.Field, ae.Message))
		return
	}

	var le *common.LockedError
	if errors.As(err, &le) {
		s.writeJSON(ctx, w, http.StatusForbidden, fieldErrors("email", le.Message))
		return
	}

	if errors.Is(err, common.ErrNotFound) {
		s.writeJSON(ctx, w, http.StatusNotFound, fieldErrors("items", "Item not found"))
		return
	}

	s.logger.Error(ctx, "server error", "error", err)
	s.writeJSON(ctx, w, http.StatusInternalServerError, fieldErrors("server", "Server error"))
}
