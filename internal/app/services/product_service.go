package services

import (
	"context"
	"strings"

	"github.com/tolgahan/campusstock/internal/app/catalog"
	"github.com/tolgahan/campusstock/internal/app/models"
	"github.com/tolgahan/campusstock/internal/app/models/dto"
	"github.com/tolgahan/campusstock/internal/app/repositories"
	"github.com/tolgahan/campusstock/internal/pkg/apperrors"
	"github.com/tolgahan/campusstock/internal/pkg/logger"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo *repositories.ProductRepository
	studentRepo *repositories.StudentRepository
}

// NewProductService creates a new product service instance
func NewProductService(productRepo *repositories.ProductRepository, studentRepo *repositories.StudentRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		studentRepo: studentRepo,
	}
}

// clampYear coerces a year value into [0, 10]. Zero means "applies to
// all years", so out-of-range input degrades to the widest scope.
func clampYear(year float64) int {
	if year < 0 {
		return 0
	}
	if year > 10 {
		return 10
	}
	return int(year)
}

// Create validates and persists a new product.
func (s *ProductService) Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)

	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if description == "" {
		return nil, apperrors.NewValidationError("description cannot be empty")
	}
	if req.Price < 0 {
		return nil, apperrors.NewValidationError("price cannot be negative")
	}
	category := models.Category(strings.TrimSpace(req.Category))
	if !models.IsValidCategory(category) {
		return nil, apperrors.NewValidationError("unknown category: " + req.Category)
	}
	if req.Stock < 0 {
		return nil, apperrors.NewValidationError("stock cannot be negative")
	}

	product := &models.Product{
		Name:        name,
		Description: description,
		Price:       req.Price,
		Category:    category,
		Stock:       req.Stock,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		ForCourse:   normalizeCourseCode(req.ForCourse),
		Branch:      strings.TrimSpace(req.Branch),
		Year:        clampYear(req.Year),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// ProductListFilter narrows List results.
type ProductListFilter struct {
	Course *string
	Year   *int
}

// List retrieves products, optionally filtered by course scope and year.
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]*models.Product, error) {
	repoFilter := repositories.ProductFilter{Year: filter.Year}
	if filter.Course != nil {
		course := normalizeCourseCode(*filter.Course)
		repoFilter.ForCourse = &course
	}
	return s.productRepo.List(ctx, repoFilter)
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// Update applies a partial update; unspecified fields are retained.
func (s *ProductService) Update(ctx context.Context, id int64, req *dto.UpdateProductRequest) (*models.Product, error) {
	setMap := map[string]interface{}{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		setMap["name"] = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, apperrors.NewValidationError("description cannot be empty")
		}
		setMap["description"] = description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperrors.NewValidationError("price cannot be negative")
		}
		setMap["price"] = *req.Price
	}
	if req.Category != nil {
		category := models.Category(strings.TrimSpace(*req.Category))
		if !models.IsValidCategory(category) {
			return nil, apperrors.NewValidationError("unknown category: " + *req.Category)
		}
		setMap["category"] = category
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, apperrors.NewValidationError("stock cannot be negative")
		}
		setMap["stock"] = *req.Stock
	}
	if req.ImageURL != nil {
		setMap["image_url"] = strings.TrimSpace(*req.ImageURL)
	}
	if req.ForCourse != nil {
		setMap["for_course"] = normalizeCourseCode(*req.ForCourse)
	}
	if req.Branch != nil {
		setMap["branch"] = strings.TrimSpace(*req.Branch)
	}
	if req.Year != nil {
		setMap["year"] = clampYear(*req.Year)
	}

	return s.productRepo.Update(ctx, id, setMap)
}

// Delete removes a product and strips its item key from every
// student's fulfillment map. The cascade is best effort: the product
// row is already gone, so a cascade failure is logged, not returned.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	key := catalog.ItemKey(product.Name)
	affected, err := s.studentRepo.RemoveItemKey(ctx, key)
	if err != nil {
		logger.Error().Err(err).
			Int64("productId", id).
			Str("itemKey", key).
			Msg("Failed to strip item key from student records")
		return nil
	}
	if affected > 0 {
		logger.Info().
			Int64("productId", id).
			Str("itemKey", key).
			Int64("students", affected).
			Msg("Stripped item key from student records")
	}

	return nil
}
