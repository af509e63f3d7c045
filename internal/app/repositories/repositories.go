package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository  *StudentRepository
	ProductRepository  *ProductRepository
	CourseRepository   *CourseRepository
	SubAdminRepository *SubAdminRepository
	OrderRepository    *OrderRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:  NewStudentRepository(db),
		ProductRepository:  NewProductRepository(db),
		CourseRepository:   NewCourseRepository(db),
		SubAdminRepository: NewSubAdminRepository(db),
		OrderRepository:    NewOrderRepository(db),
	}
}
