package models

// Category is an external-taxonomy reference; CRUD for it lives outside this
// service, we only read and validate against it.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Subject belongs to exactly one category.
type Subject struct {
	ID         int64  `json:"id" db:"id"`
	CategoryID int64  `json:"categoryId" db:"category_id"`
	Name       string `json:"name" db:"name"`
}
