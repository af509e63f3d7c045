package dto

import "github.com/tolgahan/campusstock/internal/app/models"

// RegisterStudentRequest represents student registration data
type RegisterStudentRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	StudentID string `json:"studentId" binding:"required"`
	Course    string `json:"course" binding:"required"`
	Year      int    `json:"year" binding:"required,gte=1"`
	Branch    string `json:"branch"`
}

// UpdateStudentRequest represents a partial student update. Nil fields
// are left untouched; Items, when present, replaces the whole map.
type UpdateStudentRequest struct {
	Items     *models.ItemMap `json:"items"`
	Paid      *bool           `json:"paid"`
	Name      *string         `json:"name"`
	StudentID *string         `json:"studentId"`
	Year      *int            `json:"year"`
	Branch    *string         `json:"branch"`
}

// IsEmpty reports whether the request carries no field at all.
func (r UpdateStudentRequest) IsEmpty() bool {
	return r.Items == nil && r.Paid == nil && r.Name == nil &&
		r.StudentID == nil && r.Year == nil && r.Branch == nil
}

// ImportResultResponse represents the outcome of a roster import
type ImportResultResponse struct {
	Imported []*models.Student `json:"imported"`
}

// StudentDetailResponse couples a student with the catalog subset that
// applies to them, so server and dashboard render from identical data.
type StudentDetailResponse struct {
	Student            *models.Student   `json:"student"`
	ApplicableProducts []*models.Product `json:"applicableProducts"`
}
