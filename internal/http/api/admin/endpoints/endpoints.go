package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aircast-fm/aircast/internal/db"
	"github.com/aircast-fm/aircast/internal/http/api"
)

// pathID parses the :id route parameter.
func pathID(ctx *gin.Context) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	return id, nil
}

// mapStoreError translates the store taxonomy to an HTTP failure. Unknown
// errors surface as a generic 500; the store already logged the cause.
func mapStoreError(err error, resource string) *api.APIError {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return &api.APIError{Code: http.StatusNotFound, Message: resource + " not found"}
	case errors.Is(err, db.ErrConflict):
		return &api.APIError{Code: http.StatusConflict, Message: "duplicate value for a unique " + resource + " field"}
	case errors.Is(err, db.ErrInvalidReference):
		return &api.APIError{Code: http.StatusBadRequest, Message: "referenced resource does not exist"}
	default:
		return &api.APIError{Code: http.StatusInternalServerError, Message: "could not access " + resource}
	}
}

// optionalString maps the empty string to nil so it stores as NULL.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// defaultStatus applies the "active" default when the caller omits status.
func defaultStatus(s string) string {
	if s == "" {
		return "active"
	}
	return s
}
