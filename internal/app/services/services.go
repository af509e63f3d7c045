package services

// Services defined in this package:
// - StudentService: roster registration, listing, updates, import
// - ProductService: catalog CRUD and the delete cascade
// - AcademicService: course configuration
// - SubAdminService: delegated admin accounts and login
