package dto

// CreateSubAdminRequest represents sub-admin creation data
type CreateSubAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// UpdateSubAdminRequest represents a partial sub-admin update.
// Password, when present, is re-hashed before storage.
type UpdateSubAdminRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// LoginRequest represents sub-admin login credentials
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the authenticated identity and access token.
type LoginResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}
