package services

import (
	"context"
	"sort"
	"strings"

	"github.com/tolgahan/campusstock/internal/app/models"
	"github.com/tolgahan/campusstock/internal/app/models/dto"
	"github.com/tolgahan/campusstock/internal/app/repositories"
	"github.com/tolgahan/campusstock/internal/pkg/apperrors"
)

// AcademicService manages the academic configuration: the ordered
// course list with allowed years and branches.
type AcademicService struct {
	courseRepo *repositories.CourseRepository
}

// NewAcademicService creates a new academic service instance
func NewAcademicService(courseRepo *repositories.CourseRepository) *AcademicService {
	return &AcademicService{
		courseRepo: courseRepo,
	}
}

// normalizeCourseCode derives the canonical course identifier that
// student and product records reference.
func normalizeCourseCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// normalizeCourseSpec turns a submitted course entry into its stored
// form: code from code or name, display name from displayName or the
// raw name, years deduplicated and sorted, branches deduplicated.
func normalizeCourseSpec(spec dto.CourseSpec) (*models.Course, error) {
	code := normalizeCourseCode(spec.Code)
	if code == "" {
		code = normalizeCourseCode(spec.Name)
	}
	if code == "" {
		return nil, apperrors.NewValidationError("course code cannot be empty")
	}

	displayName := strings.TrimSpace(spec.DisplayName)
	if displayName == "" {
		displayName = strings.TrimSpace(spec.Name)
	}
	if displayName == "" {
		return nil, apperrors.NewValidationError("course display name cannot be empty")
	}

	years := []int{}
	seenYears := map[int]bool{}
	for _, year := range spec.Years {
		if seenYears[year] {
			continue
		}
		seenYears[year] = true
		years = append(years, year)
	}
	sort.Ints(years)

	branches := []string{}
	seenBranches := map[string]bool{}
	for _, branch := range spec.Branches {
		branch = strings.TrimSpace(branch)
		if branch == "" || seenBranches[branch] {
			continue
		}
		seenBranches[branch] = true
		branches = append(branches, branch)
	}

	return &models.Course{
		Code:        code,
		DisplayName: displayName,
		Years:       years,
		Branches:    branches,
	}, nil
}

// Get retrieves the academic configuration. An empty course table
// reads as a valid empty configuration.
func (s *AcademicService) Get(ctx context.Context) (*models.AcademicConfig, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &models.AcademicConfig{Courses: courses}, nil
}

// Replace swaps the whole course list for the submitted one and
// returns the saved configuration.
func (s *AcademicService) Replace(ctx context.Context, req *dto.ReplaceConfigRequest) (*models.AcademicConfig, error) {
	courses := make([]*models.Course, 0, len(req.Courses))
	seen := map[string]bool{}
	for _, spec := range req.Courses {
		course, err := normalizeCourseSpec(spec)
		if err != nil {
			return nil, err
		}
		if seen[course.Code] {
			return nil, apperrors.ErrCourseAlreadyExists
		}
		seen[course.Code] = true
		courses = append(courses, course)
	}

	if err := s.courseRepo.ReplaceAll(ctx, courses); err != nil {
		return nil, err
	}

	return &models.AcademicConfig{Courses: courses}, nil
}

// AddCourse appends one course to the configuration.
func (s *AcademicService) AddCourse(ctx context.Context, spec dto.CourseSpec) (*models.Course, error) {
	course, err := normalizeCourseSpec(spec)
	if err != nil {
		return nil, err
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// ListCourses retrieves the configured courses in order.
func (s *AcademicService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.List(ctx)
}

// DeleteCourse removes one course from the configuration. Existing
// student and product records keep their course value; they reference
// the code by name, not by row.
func (s *AcademicService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}
