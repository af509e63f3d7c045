// Package catalog holds the pure rules that join the product catalog to
// the student roster: which products apply to a student, and how a
// product name becomes the key of a student's item map. Both sides of
// the API import these from here; there is no second implementation.
package catalog

import (
	"strings"

	"github.com/tolgahan/campusstock/internal/app/models"
)

// ItemKey derives the canonical item-map key for a product name:
// lowercase, with every run of whitespace collapsed to a single "_".
// The dashboard derives checkbox keys the same way, so any change here
// orphans existing student item entries.
func ItemKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// Applies reports whether a single product is relevant to the student:
// the product is course-agnostic or matches the student's course, and
// year-agnostic (0) or matches the student's year. Branch is not part
// of the predicate.
func Applies(p *models.Product, student *models.Student) bool {
	if p.ForCourse != "" && p.ForCourse != student.Course {
		return false
	}
	if p.Year != 0 && p.Year != student.Year {
		return false
	}
	return true
}

// Applicable filters products down to the subset relevant to the
// student. Pure and deterministic; order of the input is preserved.
func Applicable(student *models.Student, products []*models.Product) []*models.Product {
	applicable := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if Applies(p, student) {
			applicable = append(applicable, p)
		}
	}
	return applicable
}
