package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/cardtoken/internal/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestHandleErrorGin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedError   string
		expectedMessage string
	}{
		{
			name:           "not found",
			err:            apperrors.Wrap(apperrors.ErrNotFound, "token not found"),
			expectedStatus: http.StatusNotFound,
			expectedError:  "not_found",
		},
		{
			name:           "conflict",
			err:            apperrors.ErrConflict,
			expectedStatus: http.StatusConflict,
			expectedError:  "conflict",
		},
		{
			name:            "invalid input",
			err:             apperrors.Wrap(apperrors.ErrInvalidInput, "unique: must be 0 or 1"),
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedError:   "invalid_input",
			expectedMessage: "unique: must be 0 or 1: invalid input",
		},
		{
			name:            "internal",
			err:             errors.New("pq: connection refused"),
			expectedStatus:  http.StatusInternalServerError,
			expectedError:   "internal_error",
			expectedMessage: "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedError, response.Error)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, response.Message)
			}
		})
	}
}

func TestHandleErrorGin_NilError(t *testing.T) {
	c, w := newTestContext()

	HandleErrorGin(c, nil, nil)

	assert.Empty(t, w.Body.String())
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext()

	HandleBadRequestGin(c, errors.New("unexpected EOF"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"bad_request","message":"unexpected EOF"}`, w.Body.String())
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext()

	HandleValidationErrorGin(c, errors.New("unique: must be 0 or 1."), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"validation_error","message":"unique: must be 0 or 1."}`, w.Body.String())
}

var errPaymentDeclined = errors.New("payment declined")

func TestHandleMappedErrorGin(t *testing.T) {
	mappings := []ErrorMapping{
		{
			Target:  errPaymentDeclined,
			Status:  http.StatusPaymentRequired,
			Code:    "declined",
			Message: "Payment declined",
		},
		{
			Target:  apperrors.ErrNotFound,
			Status:  http.StatusGone,
			Code:    "gone",
			Message: "Resource is gone",
		},
	}

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success_CustomMapping",
			err:            apperrors.Wrap(errPaymentDeclined, "issuer answer"),
			expectedStatus: http.StatusPaymentRequired,
			expectedError:  "declined",
		},
		{
			name:           "Success_CustomMappingOverridesBase",
			err:            apperrors.ErrNotFound,
			expectedStatus: http.StatusGone,
			expectedError:  "gone",
		},
		{
			name:           "Success_FallsBackToBase",
			err:            apperrors.ErrConflict,
			expectedStatus: http.StatusConflict,
			expectedError:  "conflict",
		},
		{
			name:           "Success_FallsBackToInternal",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			HandleMappedErrorGin(c, tt.err, slog.New(slog.NewTextHandler(io.Discard, nil)), mappings...)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedError, response.Error)
			assert.NotContains(t, response.Message, "boom")
		})
	}
}

func TestHandleErrorGin_IncludesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return "req-123"
	})))
	router.GET("/fail", func(c *gin.Context) {
		HandleErrorGin(c, apperrors.ErrNotFound, nil)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "req-123", response.RequestID)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-Id"))
}

func TestHandleErrorGin_WithoutRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	assert.NotPanics(t, func() {
		HandleErrorGin(c, apperrors.ErrNotFound, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not_found","message":"The requested resource was not found"}`, w.Body.String())
}
