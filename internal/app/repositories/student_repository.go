package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tolgahan/campusstock/internal/app/models"
	"github.com/tolgahan/campusstock/internal/pkg/apperrors"
	"github.com/tolgahan/campusstock/internal/pkg/dberrors"
	"github.com/tolgahan/campusstock/internal/pkg/helpers"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, student_id, name, email, password, course, year, branch, paid, items, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.StudentID,
		&student.Name,
		&student.Email,
		&student.Password,
		&student.Course,
		&student.Year,
		&student.Branch,
		&student.Paid,
		&student.Items,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if student.Items == nil {
		student.Items = models.ItemMap{}
	}
	return &student, nil
}

// Create inserts a new student and fills in the generated fields.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, name, email, password, course, year, branch, paid, items)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	if student.Items == nil {
		student.Items = models.ItemMap{}
	}

	// Empty emails are stored as NULL so the unique index skips them.
	var email sql.NullString
	if student.Email != nil {
		email = helpers.GetContentNullString(*student.Email)
	}

	err := r.db.QueryRow(ctx, query,
		student.StudentID, student.Name, email, student.Password,
		student.Course, student.Year, student.Branch, student.Paid, student.Items,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_course_student_id_key") {
			return apperrors.ErrStudentIDAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by numeric ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByCourseAndStudentID retrieves a student by their course-scoped
// student identifier (the roster key used by imports).
func (r *StudentRepository) GetByCourseAndStudentID(ctx context.Context, course, studentID string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE course = $1 AND student_id = $2`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, course, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// StudentFilter narrows List results. Zero values mean "no filter".
type StudentFilter struct {
	Course string
	Year   int
}

// List retrieves students, optionally filtered by course and year.
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter) ([]*models.Student, error) {
	queryBuilder := squirrel.Select(
		"id", "student_id", "name", "email", "password", "course",
		"year", "branch", "paid", "items", "created_at", "updated_at",
	).
		From("students").
		OrderBy("course", "year", "student_id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Course != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"course": filter.Course})
	}
	if filter.Year != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"year": filter.Year})
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building student list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if students == nil {
		students = []*models.Student{}
	}

	return students, nil
}

// Update applies a partial update. Only the columns present in setMap
// are written; an items entry replaces the stored map wholesale.
func (r *StudentRepository) Update(ctx context.Context, id int64, setMap map[string]interface{}) (*models.Student, error) {
	if len(setMap) == 0 {
		return r.GetByID(ctx, id)
	}

	queryBuilder := squirrel.Update("students").
		SetMap(setMap).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + studentColumns).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building student update query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, "students_course_student_id_key") {
			return nil, apperrors.ErrStudentIDAlreadyExists
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}

// Delete removes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// RemoveItemKey strips an item key from every student that carries it,
// returning the number of students touched. Used by the product-delete
// cascade; students without the key are left alone.
func (r *StudentRepository) RemoveItemKey(ctx context.Context, key string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET items = items - $1, updated_at = now() WHERE items ? $1`, key)
	if err != nil {
		return 0, fmt.Errorf("error removing item key from students: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
