package dto

import "github.com/posuniversal/pos-admin-service/internal/model"

// ProductFilters mirrors the list screen inputs. String fields are
// case-insensitive substring matches; IsActive takes "", "true" or "false".
// LowStock restricts to products at or below their reorder level.
type ProductFilters struct {
	Code     string
	SKU      string
	Barcode  string
	Name     string
	IsActive string
	LowStock bool
	Page     int
	PageSize int
}

type ProductPage struct {
	Items      []model.Product `json:"items"`
	TotalCount int             `json:"total_count"`
}
