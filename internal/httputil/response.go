// Package httputil writes JSON error responses for the gin handlers.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/cardtoken/internal/errors"
)

// ErrorResponse is the JSON body of every error answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorMapping binds a sentinel error to the answer written when the sentinel
// is found in an error chain. With Detail set the message is err.Error().
type ErrorMapping struct {
	Target  error
	Status  int
	Code    string
	Message string
	Detail  bool
}

var baseMappings = []ErrorMapping{
	{
		Target:  apperrors.ErrNotFound,
		Status:  http.StatusNotFound,
		Code:    "not_found",
		Message: "The requested resource was not found",
	},
	{
		Target:  apperrors.ErrConflict,
		Status:  http.StatusConflict,
		Code:    "conflict",
		Message: "A conflict occurred with existing data",
	},
	{
		Target: apperrors.ErrInvalidInput,
		Status: http.StatusUnprocessableEntity,
		Code:   "invalid_input",
		Detail: true,
	},
}

var internalMapping = ErrorMapping{
	Status:  http.StatusInternalServerError,
	Code:    "internal_error",
	Message: "An internal error occurred",
}

// HandleErrorGin answers err using the base mappings only.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	HandleMappedErrorGin(c, err, logger)
}

// HandleMappedErrorGin answers with the first of mappings whose target is in
// err's chain, then tries the base mappings. Anything unmatched becomes a 500
// whose cause is only logged.
func HandleMappedErrorGin(c *gin.Context, err error, logger *slog.Logger, mappings ...ErrorMapping) {
	if err == nil {
		return
	}

	m := findMapping(err, mappings)
	if m == nil {
		m = findMapping(err, baseMappings)
	}
	if m == nil {
		m = &internalMapping
	}

	message := m.Message
	if m.Detail {
		message = err.Error()
	}

	if logger != nil {
		level := slog.LevelWarn
		if m.Status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c, level, "request failed",
			slog.Int("status_code", m.Status),
			slog.String("error_code", m.Code),
			slog.Any("error", err),
		)
	}

	writeError(c, m.Status, m.Code, message)
}

func findMapping(err error, mappings []ErrorMapping) *ErrorMapping {
	for i := range mappings {
		if apperrors.Is(err, mappings[i].Target) {
			return &mappings[i]
		}
	}
	return nil
}

// HandleBadRequestGin answers 400 for bodies that cannot be decoded.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}
	writeError(c, http.StatusBadRequest, "bad_request", err.Error())
}

// HandleValidationErrorGin answers 422 for requests failing DTO validation.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}
	writeError(c, http.StatusUnprocessableEntity, "validation_error", err.Error())
}

func writeError(c *gin.Context, status int, code, message string) {
	response := ErrorResponse{Error: code, Message: message}
	if c.Request != nil {
		response.RequestID = requestid.Get(c)
	}
	c.JSON(status, response)
}
