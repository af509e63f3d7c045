package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tolgahan/campusstock/internal/app/models"
	"github.com/tolgahan/campusstock/internal/app/models/dto"
	"github.com/tolgahan/campusstock/internal/app/repositories"
	"github.com/tolgahan/campusstock/internal/pkg/apperrors"
	"github.com/tolgahan/campusstock/internal/pkg/auth"
)

// SubAdminService handles delegated admin accounts and their login.
type SubAdminService struct {
	subAdminRepo *repositories.SubAdminRepository
	jwtService   *auth.JWTService
}

// NewSubAdminService creates a new sub-admin service instance
func NewSubAdminService(subAdminRepo *repositories.SubAdminRepository, jwtService *auth.JWTService) *SubAdminService {
	return &SubAdminService{
		subAdminRepo: subAdminRepo,
		jwtService:   jwtService,
	}
}

// Create registers a new sub-admin account with a hashed password.
func (s *SubAdminService) Create(ctx context.Context, req *dto.CreateSubAdminRequest) (*models.SubAdmin, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if req.Password == "" {
		return nil, apperrors.NewValidationError("password cannot be empty")
	}

	role := models.RoleEditor
	if req.Role != "" {
		role = models.Role(req.Role)
		if !models.IsValidRole(role) {
			return nil, apperrors.NewValidationError("unknown role: " + req.Role)
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	subAdmin := &models.SubAdmin{
		Name:     name,
		Password: hash,
		Role:     role,
	}
	if err := s.subAdminRepo.Create(ctx, subAdmin); err != nil {
		return nil, err
	}

	subAdmin.Password = ""
	return subAdmin, nil
}

// List retrieves all sub-admin accounts without their hashes.
func (s *SubAdminService) List(ctx context.Context) ([]*models.SubAdmin, error) {
	subAdmins, err := s.subAdminRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, subAdmin := range subAdmins {
		subAdmin.Password = ""
	}
	return subAdmins, nil
}

// Update applies a partial update. The password is re-hashed only when
// the request carries one.
func (s *SubAdminService) Update(ctx context.Context, id int64, req *dto.UpdateSubAdminRequest) (*models.SubAdmin, error) {
	setMap := map[string]interface{}{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		setMap["name"] = name
	}
	if req.Password != nil {
		if *req.Password == "" {
			return nil, apperrors.NewValidationError("password cannot be empty")
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		setMap["password"] = hash
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !models.IsValidRole(role) {
			return nil, apperrors.NewValidationError("unknown role: " + *req.Role)
		}
		setMap["role"] = role
	}

	subAdmin, err := s.subAdminRepo.Update(ctx, id, setMap)
	if err != nil {
		return nil, err
	}

	subAdmin.Password = ""
	return subAdmin, nil
}

// Delete removes a sub-admin account.
func (s *SubAdminService) Delete(ctx context.Context, id int64) error {
	return s.subAdminRepo.Delete(ctx, id)
}

// Authenticate verifies login credentials and issues an access token.
// An unknown name and a wrong password read identically.
func (s *SubAdminService) Authenticate(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	subAdmin, err := s.subAdminRepo.GetByName(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		if errors.Is(err, apperrors.ErrSubAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(subAdmin.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(subAdmin)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.LoginResponse{
		ID:          subAdmin.ID,
		Name:        subAdmin.Name,
		Role:        string(subAdmin.Role),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
