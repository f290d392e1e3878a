package httputil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
)

type lockedError struct {
	minutes int
}

func (e *lockedError) Error() string {
	return fmt.Sprintf("too many attempts, retry in %d minutes", e.minutes)
}

func (e *lockedError) Unwrap() error { return apperrors.ErrLocked }

func (e *lockedError) RetryAfterMinutes() int { return e.minutes }

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"conflict", apperrors.ErrConflict, http.StatusConflict},
		{"invalid input", apperrors.ErrInvalidInput, http.StatusUnprocessableEntity},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"locked", apperrors.ErrLocked, http.StatusTooManyRequests},
		{"wrapped unauthorized", apperrors.Wrap(apperrors.ErrUnauthorized, "invalid credentials"), http.StatusUnauthorized},
		{"unknown", apperrors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			HandleErrorGin(c, tt.err, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleErrorGin_RetryAfterHeader(t *testing.T) {
	c, rec := newTestContext()

	HandleErrorGin(c, &lockedError{minutes: 15}, nil)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "900", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate_limited")
}

func TestHandleErrorGin_InternalErrorHidesDetails(t *testing.T) {
	c, rec := newTestContext()

	HandleErrorGin(c, apperrors.New("sensitive database detail"), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "sensitive")
}

func TestHandleBadRequestGin(t *testing.T) {
	c, rec := newTestContext()

	HandleBadRequestGin(c, apperrors.New("malformed json"), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad_request")
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, rec := newTestContext()

	HandleValidationErrorGin(c, apperrors.New("CPF is required"), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")
}
