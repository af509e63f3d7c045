package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tolgahan/campusstock/internal/app/catalog"
	"github.com/tolgahan/campusstock/internal/app/models"
	"github.com/tolgahan/campusstock/internal/app/models/dto"
	"github.com/tolgahan/campusstock/internal/app/repositories"
	"github.com/tolgahan/campusstock/internal/pkg/apperrors"
	"github.com/tolgahan/campusstock/internal/pkg/auth"
	"github.com/tolgahan/campusstock/internal/pkg/logger"
)

// StudentService handles roster and fulfillment operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
	productRepo *repositories.ProductRepository
	orderRepo   *repositories.OrderRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	productRepo *repositories.ProductRepository,
	orderRepo *repositories.OrderRepository,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// Register creates a new student record. The password, when present,
// is stored hashed; the returned record never carries it.
func (s *StudentService) Register(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	name := strings.TrimSpace(req.Name)
	studentID := strings.TrimSpace(req.StudentID)
	course := normalizeCourseCode(req.Course)

	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if studentID == "" {
		return nil, apperrors.NewValidationError("studentId cannot be empty")
	}
	if course == "" {
		return nil, apperrors.NewValidationError("course cannot be empty")
	}
	if req.Year < 1 {
		return nil, apperrors.NewValidationError("year must be a positive number")
	}

	student := &models.Student{
		StudentID: studentID,
		Name:      name,
		Course:    course,
		Year:      req.Year,
		Branch:    strings.TrimSpace(req.Branch),
		Items:     models.ItemMap{},
	}

	if email := strings.TrimSpace(req.Email); email != "" {
		student.Email = &email
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		student.Password = &hash
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	student.Password = nil
	return student, nil
}

// StudentListFilter narrows List results.
type StudentListFilter struct {
	Course        string
	Year          int
	IncludeOrders bool
}

// List retrieves students, optionally filtered by course and year and
// optionally joined with their legacy orders.
func (s *StudentService) List(ctx context.Context, filter StudentListFilter) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx, repositories.StudentFilter{
		Course: normalizeCourseCode(filter.Course),
		Year:   filter.Year,
	})
	if err != nil {
		return nil, err
	}

	if filter.IncludeOrders && len(students) > 0 {
		ids := make([]int64, len(students))
		for i, student := range students {
			ids[i] = student.ID
		}
		ordersByStudent, err := s.orderRepo.ListByStudentIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("error loading orders: %w", err)
		}
		for _, student := range students {
			student.Orders = ordersByStudent[student.ID]
		}
	}

	return students, nil
}

// GetByID retrieves one student of a course together with the catalog
// subset that applies to them.
func (s *StudentService) GetByID(ctx context.Context, course string, id int64) (*dto.StudentDetailResponse, error) {
	student, err := s.getCourseStudent(ctx, course, id)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List(ctx, repositories.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}

	return &dto.StudentDetailResponse{
		Student:            student,
		ApplicableProducts: catalog.Applicable(student, products),
	}, nil
}

// Update applies a partial update to a student. Fields absent from the
// request are retained; items, when present, replaces the whole map.
func (s *StudentService) Update(ctx context.Context, course string, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewValidationError("update request carries no fields")
	}

	if _, err := s.getCourseStudent(ctx, course, id); err != nil {
		return nil, err
	}

	setMap, err := buildStudentSetMap(req)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.Update(ctx, id, setMap)
	if err != nil {
		return nil, err
	}

	student.Password = nil
	return student, nil
}

// buildStudentSetMap translates an update request into column writes.
// Absent fields produce no entry; items maps to one entry holding the
// whole replacement map, so previously stored keys do not survive.
func buildStudentSetMap(req *dto.UpdateStudentRequest) (map[string]interface{}, error) {
	setMap := map[string]interface{}{}
	if req.Items != nil {
		setMap["items"] = *req.Items
	}
	if req.Paid != nil {
		setMap["paid"] = *req.Paid
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		setMap["name"] = name
	}
	if req.StudentID != nil {
		studentID := strings.TrimSpace(*req.StudentID)
		if studentID == "" {
			return nil, apperrors.NewValidationError("studentId cannot be empty")
		}
		setMap["student_id"] = studentID
	}
	if req.Year != nil {
		if *req.Year < 1 {
			return nil, apperrors.NewValidationError("year must be a positive number")
		}
		setMap["year"] = *req.Year
	}
	if req.Branch != nil {
		setMap["branch"] = strings.TrimSpace(*req.Branch)
	}
	return setMap, nil
}

// Delete removes a student of a course.
func (s *StudentService) Delete(ctx context.Context, course string, id int64) error {
	if _, err := s.getCourseStudent(ctx, course, id); err != nil {
		return err
	}
	return s.studentRepo.Delete(ctx, id)
}

// ImportBatch persists parsed roster rows into one course. Rows with a
// known studentId update the existing record, the rest are created.
// Failures are logged per row and skipped; there is no rollback.
func (s *StudentService) ImportBatch(ctx context.Context, course string, rows []RosterRow) (*dto.ImportResultResponse, error) {
	course = normalizeCourseCode(course)
	if course == "" {
		return nil, apperrors.NewValidationError("course cannot be empty")
	}

	imported := []*models.Student{}
	for _, row := range rows {
		student, err := s.importRow(ctx, course, row)
		if err != nil {
			logger.Warn().Err(err).
				Str("studentId", row.StudentID).
				Str("course", course).
				Msg("Skipping roster row")
			continue
		}
		student.Password = nil
		imported = append(imported, student)
	}

	return &dto.ImportResultResponse{Imported: imported}, nil
}

func (s *StudentService) importRow(ctx context.Context, course string, row RosterRow) (*models.Student, error) {
	existing, err := s.studentRepo.GetByCourseAndStudentID(ctx, course, row.StudentID)
	if err != nil && !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	if existing != nil {
		setMap := map[string]interface{}{}
		if row.Name != "" {
			setMap["name"] = row.Name
		}
		if row.Year > 0 {
			setMap["year"] = row.Year
		}
		if row.Branch != "" {
			setMap["branch"] = row.Branch
		}
		return s.studentRepo.Update(ctx, existing.ID, setMap)
	}

	year := row.Year
	if year < 1 {
		year = 1
	}

	// New records get a placeholder credential derived from the roster
	// row. No email is synthesized: a fabricated address could collide
	// with a real one under the unique index.
	hash, err := auth.HashPassword(row.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error hashing placeholder password: %w", err)
	}

	student := &models.Student{
		StudentID: row.StudentID,
		Name:      row.Name,
		Course:    course,
		Year:      year,
		Branch:    row.Branch,
		Paid:      false,
		Items:     models.ItemMap{},
		Password:  &hash,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// getCourseStudent fetches a student by ID and checks it belongs to
// the course segment of the URL. A mismatch reads as not found.
func (s *StudentService) getCourseStudent(ctx context.Context, course string, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course != "" && student.Course != normalizeCourseCode(course) {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}
