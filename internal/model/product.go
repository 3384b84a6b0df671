package model

// Product categories are a small fixed tag set seeded with the catalog.
const (
	CategoryIndustrial = "industrial"
	CategoryMachinery  = "machinery"
	CategoryTools      = "tools"
)

// Product is a catalog row. Products are seeded once and never mutated or
// deleted through the API.
type Product struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`
	Weight      string `db:"weight" json:"weight"`
	ImageURL    string `db:"image_url" json:"imageUrl"`
}

type CreateProductParams struct {
	Name        string
	Description string
	Category    string
	Weight      string
	ImageURL    string
}
