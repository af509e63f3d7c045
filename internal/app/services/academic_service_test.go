package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolgahan/campusstock/internal/app/models/dto"
	"github.com/tolgahan/campusstock/internal/pkg/apperrors"
)

func TestNormalizeCourseCode(t *testing.T) {
	assert.Equal(t, "b.tech", normalizeCourseCode("  B.Tech "))
	assert.Equal(t, "", normalizeCourseCode("   "))
}

func TestNormalizeCourseSpec(t *testing.T) {
	course, err := normalizeCourseSpec(dto.CourseSpec{
		Name:     " B.Tech ",
		Years:    []int{4, 1, 3, 1, 2, 4},
		Branches: []string{"CSE", " ", "ECE", "CSE"},
	})
	require.NoError(t, err)

	assert.Equal(t, "b.tech", course.Code)
	assert.Equal(t, "B.Tech", course.DisplayName)
	assert.Equal(t, []int{1, 2, 3, 4}, course.Years)
	assert.Equal(t, []string{"CSE", "ECE"}, course.Branches)
}

func TestNormalizeCourseSpecCodeWins(t *testing.T) {
	course, err := normalizeCourseSpec(dto.CourseSpec{
		Name:        "Bachelor of Technology",
		Code:        "B.TECH",
		DisplayName: " Engineering ",
	})
	require.NoError(t, err)

	assert.Equal(t, "b.tech", course.Code)
	assert.Equal(t, "Engineering", course.DisplayName)
	assert.Empty(t, course.Years)
	assert.Empty(t, course.Branches)
}

func TestNormalizeCourseSpecEmptyCode(t *testing.T) {
	_, err := normalizeCourseSpec(dto.CourseSpec{Name: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
