package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleValidationError(t *testing.T) {
	validate := validator.New()

	type form struct {
		Name string `validate:"required"`
		Year int    `validate:"gte=1"`
	}

	err := validate.Struct(form{})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)

	fields, ok := detail.Details.([]string)
	require.True(t, ok)
	assert.Len(t, fields, 2)
	assert.Contains(t, fields[0], "Name")
}

func TestHandleValidationErrorPlainError(t *testing.T) {
	detail := HandleValidationError(assert.AnError)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, assert.AnError.Error(), detail.Message)
}
