package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tolgahan/campusstock/internal/app/models"
	"github.com/tolgahan/campusstock/internal/pkg/apperrors"
	"github.com/tolgahan/campusstock/internal/pkg/dberrors"
)

// SubAdminRepository handles database operations for delegated admin accounts
type SubAdminRepository struct {
	db *pgxpool.Pool
}

// NewSubAdminRepository creates a new sub-admin repository
func NewSubAdminRepository(db *pgxpool.Pool) *SubAdminRepository {
	return &SubAdminRepository{
		db: db,
	}
}

const subAdminColumns = `id, name, password, role, created_at, updated_at`

func scanSubAdmin(row pgx.Row) (*models.SubAdmin, error) {
	var subAdmin models.SubAdmin
	err := row.Scan(
		&subAdmin.ID,
		&subAdmin.Name,
		&subAdmin.Password,
		&subAdmin.Role,
		&subAdmin.CreatedAt,
		&subAdmin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &subAdmin, nil
}

// Create inserts a new sub-admin account. Password must already be hashed.
func (r *SubAdminRepository) Create(ctx context.Context, subAdmin *models.SubAdmin) error {
	query := `
		INSERT INTO subadmins (name, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		subAdmin.Name, subAdmin.Password, subAdmin.Role,
	).Scan(&subAdmin.ID, &subAdmin.CreatedAt, &subAdmin.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subadmins_name_key") {
			return apperrors.ErrSubAdminAlreadyExists
		}
		return fmt.Errorf("error creating sub-admin: %w", err)
	}

	return nil
}

// GetByID retrieves a sub-admin by ID
func (r *SubAdminRepository) GetByID(ctx context.Context, id int64) (*models.SubAdmin, error) {
	query := fmt.Sprintf(`SELECT %s FROM subadmins WHERE id = $1`, subAdminColumns)

	subAdmin, err := scanSubAdmin(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving sub-admin: %w", err)
	}

	return subAdmin, nil
}

// GetByName retrieves a sub-admin by login name, hash included.
func (r *SubAdminRepository) GetByName(ctx context.Context, name string) (*models.SubAdmin, error) {
	query := fmt.Sprintf(`SELECT %s FROM subadmins WHERE name = $1`, subAdminColumns)

	subAdmin, err := scanSubAdmin(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving sub-admin: %w", err)
	}

	return subAdmin, nil
}

// List retrieves all sub-admin accounts
func (r *SubAdminRepository) List(ctx context.Context) ([]*models.SubAdmin, error) {
	query := fmt.Sprintf(`SELECT %s FROM subadmins ORDER BY id`, subAdminColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subAdmins []*models.SubAdmin
	for rows.Next() {
		subAdmin, err := scanSubAdmin(rows)
		if err != nil {
			return nil, err
		}
		subAdmins = append(subAdmins, subAdmin)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if subAdmins == nil {
		subAdmins = []*models.SubAdmin{}
	}

	return subAdmins, nil
}

// Update applies a partial update; only columns in setMap are written.
func (r *SubAdminRepository) Update(ctx context.Context, id int64, setMap map[string]interface{}) (*models.SubAdmin, error) {
	if len(setMap) == 0 {
		return r.GetByID(ctx, id)
	}

	queryBuilder := squirrel.Update("subadmins").
		SetMap(setMap).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + subAdminColumns).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sub-admin update query: %w", err)
	}

	subAdmin, err := scanSubAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubAdminNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, "subadmins_name_key") {
			return nil, apperrors.ErrSubAdminAlreadyExists
		}
		return nil, fmt.Errorf("error updating sub-admin: %w", err)
	}

	return subAdmin, nil
}

// Delete removes a sub-admin by ID
func (r *SubAdminRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subadmins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting sub-admin: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubAdminNotFound
	}

	return nil
}
