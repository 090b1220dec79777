package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	customError "github.com/segyhp/easy-service/pkg/errors"
	"github.com/segyhp/easy-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "validation", err: customError.NewValidationError("cpf", "CPF inválido."), expected: http.StatusBadRequest},
		{name: "invalid proposal", err: customError.WrapInvalidProposal("bad"), expected: http.StatusBadRequest},
		{name: "division by zero", err: customError.WrapDivisionByZero(), expected: http.StatusBadRequest},
		{name: "installments", err: customError.WrapInstallmentsAboveProduct("Epcfi", 18, 20), expected: http.StatusBadRequest},
		{name: "agreement not found", err: customError.WrapAgreementNotFound(1), expected: http.StatusNotFound},
		{name: "exception proposal not found", err: customError.WrapExceptionProposalNotFound(1), expected: http.StatusNotFound},
		{name: "database", err: customError.WrapDatabaseError(errors.New("down")), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFor(tt.err))
		})
	}
}

func TestFromErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()

	FromError(rec, customError.NewValidationError("cpf", "CPF inválido."))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, customError.ErrCodeValidation, body.Code)
	assert.Equal(t, "cpf", body.Field)
	assert.Equal(t, "CPF inválido.", body.Error)
}

func TestFromErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	FromError(rec, customError.WrapDatabaseError(errors.New("password authentication failed")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware(logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	called := false
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/agreements", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
