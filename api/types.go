package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/openblogger/blog-backend/errs"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	userHandler userHandler
	postHandler postHandler
	tagHandler  tagHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}

const (
	defaultPageSkip  = 0
	defaultPageLimit = 10
)

// paginationParams reads skip/limit query parameters, falling back to the
// defaults and clamping negative values.
func paginationParams(r *http.Request) (skip, limit int) {
	skip, limit = defaultPageSkip, defaultPageLimit

	if s := r.URL.Query().Get("skip"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 0 {
			skip = parsed
		}
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 0 {
			limit = parsed
		}
	}
	return skip, limit
}

// parseIDParam reads a numeric path parameter.
func parseIDParam(r *http.Request, name string) (uint, *errs.ApiErr) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}
