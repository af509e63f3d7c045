package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tolgahan/campusstock/internal/app/models"
	"github.com/tolgahan/campusstock/internal/db"
	"github.com/tolgahan/campusstock/internal/pkg/apperrors"
	"github.com/tolgahan/campusstock/internal/pkg/dberrors"
)

// CourseRepository handles database operations for the academic configuration
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = `id, code, display_name, years, branches, position`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Code,
		&course.DisplayName,
		&course.Years,
		&course.Branches,
		&course.Position,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// List retrieves all courses in their configured order.
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses ORDER BY position, id`, courseColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if courses == nil {
		courses = []*models.Course{}
	}

	return courses, nil
}

// Create appends a course to the end of the configured order.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, display_name, years, branches, position)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position), 0) + 1 FROM courses))
		RETURNING id, position
	`

	err := r.db.QueryRow(ctx, query,
		course.Code, course.DisplayName, course.Years, course.Branches,
	).Scan(&course.ID, &course.Position)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByCode retrieves a course by its normalized code.
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE code = $1`, courseColumns)

	course, err := scanCourse(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// Delete removes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// ReplaceAll swaps out the whole course list in one transaction so a
// failed replacement never leaves a half-written configuration behind.
func (r *CourseRepository) ReplaceAll(ctx context.Context, courses []*models.Course) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM courses`); err != nil {
			return fmt.Errorf("error clearing courses: %w", err)
		}

		insert := `
			INSERT INTO courses (code, display_name, years, branches, position)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		for i, course := range courses {
			course.Position = i + 1
			err := tx.QueryRow(ctx, insert,
				course.Code, course.DisplayName, course.Years, course.Branches, course.Position,
			).Scan(&course.ID)
			if err != nil {
				if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
					return apperrors.ErrCourseAlreadyExists
				}
				return fmt.Errorf("error writing course %q: %w", course.Code, err)
			}
		}

		return nil
	})
}
