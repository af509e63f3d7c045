package models

// Category defines the product category enum
type Category string

const (
	CategoryNotebooks   Category = "Notebooks"
	CategoryPens        Category = "Pens"
	CategoryArtSupplies Category = "Art Supplies"
	CategoryElectronics Category = "Electronics"
	CategoryOther       Category = "Other"
)

// Categories lists every valid product category.
var Categories = []Category{
	CategoryNotebooks,
	CategoryPens,
	CategoryArtSupplies,
	CategoryElectronics,
	CategoryOther,
}

// IsValidCategory reports whether c is a known product category.
func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Role defines the sub-admin role type
type Role string

const (
	RoleEditor     Role = "Editor"
	RoleViewer     Role = "Viewer"
	RoleAccountant Role = "Accountant"
	// RoleSuper is the seeded privileged account that replaces the
	// fixed credential pair the dashboard used to ship with.
	RoleSuper Role = "Super"
)

// IsValidRole reports whether r is an assignable sub-admin role.
// RoleSuper is excluded: it exists only as the seeded record.
func IsValidRole(r Role) bool {
	return r == RoleEditor || r == RoleViewer || r == RoleAccountant
}
