package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"real-estate-listings/internal/dto"
)

// requestID returns the trace id the RequestID middleware stored on the
// context, or an empty string outside that middleware (tests).
func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func validationError(c *gin.Context, errs map[string][]string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Title:   "Validation Error",
		Status:  http.StatusBadRequest,
		Detail:  "One or more validation errors occurred",
		TraceID: requestID(c),
		Errors:  errs,
	}
}

func badRequest(c *gin.Context, title, detail string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Title:   title,
		Status:  http.StatusBadRequest,
		Detail:  detail,
		TraceID: requestID(c),
	}
}

func notFound(c *gin.Context, detail string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Title:   "Resource Not Found",
		Status:  http.StatusNotFound,
		Detail:  detail,
		TraceID: requestID(c),
	}
}

func internalError(c *gin.Context, detail string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Title:   "Internal Server Error",
		Status:  http.StatusInternalServerError,
		Detail:  detail,
		TraceID: requestID(c),
	}
}
