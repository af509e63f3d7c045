package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolgahan/campusstock/internal/app/models"
)

func TestItemKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Notebook", "notebook"},
		{"spaces", "Lab Coat", "lab_coat"},
		{"run of whitespace", "Lab   Coat", "lab_coat"},
		{"tabs and newlines", "Lab\t Coat\n", "lab_coat"},
		{"leading and trailing", "  Drawing Kit  ", "drawing_kit"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ItemKey(tt.in))
		})
	}
}

func TestItemKeyEquivalence(t *testing.T) {
	// Names differing only in case or whitespace run length collapse
	// to the same key.
	assert.Equal(t, ItemKey("LAB COAT"), ItemKey("lab coat"))
	assert.Equal(t, ItemKey("Lab  Coat"), ItemKey("Lab Coat"))
	assert.NotEqual(t, ItemKey("Lab Coat"), ItemKey("LabCoat"))

	// Edge whitespace is dropped outright, never kept as an
	// underscore, so padded names share the stored key.
	assert.Equal(t, ItemKey("Lab Coat"), ItemKey(" Lab Coat "))
	assert.Equal(t, "lab_coat", ItemKey("\tLab Coat\n"))
}

func TestApplicable(t *testing.T) {
	products := []*models.Product{
		{ID: 1, Name: "Notebook", ForCourse: "", Year: 0},
		{ID: 2, Name: "Lab Coat", ForCourse: "b.tech", Year: 2},
		{ID: 3, Name: "Drafter", ForCourse: "b.tech", Year: 0},
		{ID: 4, Name: "Stethoscope", ForCourse: "mbbs", Year: 0},
		{ID: 5, Name: "Second Year Kit", ForCourse: "", Year: 2},
	}

	t.Run("matching course and year", func(t *testing.T) {
		s := &models.Student{Course: "b.tech", Year: 2}
		got := Applicable(s, products)
		require.Len(t, got, 4)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
		assert.Equal(t, int64(3), got[2].ID)
		assert.Equal(t, int64(5), got[3].ID)
	})

	t.Run("different year excludes year-scoped products", func(t *testing.T) {
		s := &models.Student{Course: "b.tech", Year: 1}
		got := Applicable(s, products)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})

	t.Run("different course excludes course-scoped products", func(t *testing.T) {
		s := &models.Student{Course: "mbbs", Year: 2}
		got := Applicable(s, products)
		require.Len(t, got, 3)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(4), got[1].ID)
		assert.Equal(t, int64(5), got[2].ID)
	})

	t.Run("branch never participates", func(t *testing.T) {
		branchScoped := []*models.Product{{ID: 9, Name: "CS Kit", ForCourse: "b.tech", Branch: "cse", Year: 0}}
		s := &models.Student{Course: "b.tech", Branch: "mech", Year: 3}
		got := Applicable(s, branchScoped)
		require.Len(t, got, 1)
	})

	t.Run("empty catalog yields empty, not nil semantics", func(t *testing.T) {
		s := &models.Student{Course: "b.tech", Year: 1}
		got := Applicable(s, nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}
