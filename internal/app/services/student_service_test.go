package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolgahan/campusstock/internal/app/models"
	"github.com/tolgahan/campusstock/internal/app/models/dto"
	"github.com/tolgahan/campusstock/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestBuildStudentSetMapPartial(t *testing.T) {
	setMap, err := buildStudentSetMap(&dto.UpdateStudentRequest{
		Paid: boolPtr(true),
		Name: strPtr("  Asha Rao "),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"paid": true,
		"name": "Asha Rao",
	}, setMap)
}

func TestBuildStudentSetMapItemsReplaceWholeMap(t *testing.T) {
	// An items entry carries the full replacement map. Keys the client
	// did not send are gone after the write, so clients must
	// read-modify-write to toggle a single item.
	setMap, err := buildStudentSetMap(&dto.UpdateStudentRequest{
		Items: &models.ItemMap{"lab_coat": true},
	})
	require.NoError(t, err)

	require.Contains(t, setMap, "items")
	assert.Equal(t, models.ItemMap{"lab_coat": true}, setMap["items"])
	assert.Len(t, setMap, 1)
}

func TestBuildStudentSetMapRejectsBlankFields(t *testing.T) {
	_, err := buildStudentSetMap(&dto.UpdateStudentRequest{Name: strPtr("   ")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = buildStudentSetMap(&dto.UpdateStudentRequest{StudentID: strPtr("")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = buildStudentSetMap(&dto.UpdateStudentRequest{Year: intPtr(0)})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateStudentRequestIsEmpty(t *testing.T) {
	assert.True(t, dto.UpdateStudentRequest{}.IsEmpty())
	assert.False(t, dto.UpdateStudentRequest{Paid: boolPtr(false)}.IsEmpty())
}
