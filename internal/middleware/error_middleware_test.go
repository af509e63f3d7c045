package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tolgahan/campusstock/internal/pkg/apperrors"
)

func handleErr(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("name cannot be empty"), http.StatusBadRequest},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"product not found", apperrors.ErrProductNotFound, http.StatusNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"duplicate student id", apperrors.ErrStudentIDAlreadyExists, http.StatusConflict},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"duplicate course", apperrors.ErrCourseAlreadyExists, http.StatusConflict},
		{"duplicate sub-admin", apperrors.ErrSubAdminAlreadyExists, http.StatusConflict},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"unknown", errors.New("broken pipe"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := handleErr(tt.err)
			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := apperrors.NewCustomError(apperrors.ErrStudentNotFound, "no such student in b.tech")
	w := handleErr(wrapped)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleAPIErrorValidationMessagePassedThrough(t *testing.T) {
	w := handleErr(apperrors.NewValidationError("year must be a positive number"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "year must be a positive number")
}
