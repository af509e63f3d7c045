package dto

// CreateProductRequest represents product creation data. Year accepts
// any number and is clamped into [0,10] by the service.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" binding:"required"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl"`
	ForCourse   string  `json:"forCourse"`
	Branch      string  `json:"branch"`
	Year        float64 `json:"year"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
	ImageURL    *string  `json:"imageUrl"`
	ForCourse   *string  `json:"forCourse"`
	Branch      *string  `json:"branch"`
	Year        *float64 `json:"year"`
}
