package model

// MasterAttribute is the master list entry product attributes reference.
// Names are unique among active rows (case-insensitive); an inactive row
// with the same name does not block a new one.
type MasterAttribute struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	IsActive bool   `db:"is_active" json:"is_active"`
}
