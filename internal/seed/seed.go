package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/tolgahan/campusstock/internal/app/models"
	appRepos "github.com/tolgahan/campusstock/internal/app/repositories"
	"github.com/tolgahan/campusstock/internal/config"
	"github.com/tolgahan/campusstock/internal/pkg/apperrors"
	"github.com/tolgahan/campusstock/internal/pkg/auth"
)

// CreateDefaultData seeds the Super admin account and a starter course
// list so a fresh install is usable immediately. Everything here is
// idempotent: existing records are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	subAdminRepo := appRepos.NewSubAdminRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Super admin account --- //
	// Credentials come from configuration; the account replaces the
	// credential pair the dashboard used to hardcode.
	_, err := subAdminRepo.GetByName(ctx, cfg.Admin.Name)
	switch {
	case err == nil:
		lgr.Info().Str("name", cfg.Admin.Name).Msg("Super admin already exists, skipping creation")
	case errors.Is(err, apperrors.ErrSubAdminNotFound):
		hash, hashErr := auth.HashPassword(cfg.Admin.Password)
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, hashErr)
			break
		}
		admin := &appModels.SubAdmin{
			Name:     cfg.Admin.Name,
			Password: hash,
			Role:     appModels.RoleSuper,
		}
		if createErr := subAdminRepo.Create(ctx, admin); createErr != nil && !errors.Is(createErr, apperrors.ErrSubAdminAlreadyExists) {
			lgr.Error().Err(createErr).Msg("Error creating super admin")
			finalErr = errors.Join(finalErr, createErr)
		} else {
			lgr.Info().Str("name", admin.Name).Msg("Super admin created successfully")
		}
	default:
		lgr.Error().Err(err).Msg("Error checking for super admin")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Starter courses --- //
	// Only on a completely empty configuration; an admin-managed list
	// is never touched.
	courses, err := courseRepo.List(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking course configuration")
		return errors.Join(finalErr, err)
	}
	if len(courses) > 0 {
		lgr.Info().Msg("Default data check/creation finished.")
		return finalErr
	}

	defaults := []*appModels.Course{
		{Code: "b.tech", DisplayName: "B.Tech", Years: []int{1, 2, 3, 4}, Branches: []string{"CSE", "ECE", "ME"}},
		{Code: "b.sc", DisplayName: "B.Sc", Years: []int{1, 2, 3}, Branches: []string{}},
	}
	for _, course := range defaults {
		if err := courseRepo.Create(ctx, course); err != nil && !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("course", course.Code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
