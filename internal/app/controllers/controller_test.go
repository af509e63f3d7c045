package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolgahan/campusstock/internal/app/models/dto"
)

func bindFailure(t *testing.T, handler gin.HandlerFunc, body string) (*httptest.ResponseRecorder, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	handler(ctx)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return rec, &resp
}

func TestLoginBindFailureListsFields(t *testing.T) {
	// The bind error path never reaches the service.
	ctrl := NewSubAdminController(nil)

	rec, resp := bindFailure(t, ctrl.Login, `{"name":"root"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)

	details, ok := resp.Error.Details.([]interface{})
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Contains(t, details[0], "Password")
}

func TestRegisterBindFailureListsFields(t *testing.T) {
	ctrl := NewStudentController(nil)

	rec, resp := bindFailure(t, ctrl.Register, `{"name":"Asha Rao"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Details)
}
