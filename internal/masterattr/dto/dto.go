package dto

import "github.com/posuniversal/pos-admin-service/internal/model"

// AttributeFilters drives the master attribute list screen: SearchTerm is a
// case-insensitive name prefix, ActiveFilter takes "", "true" or "false".
type AttributeFilters struct {
	SearchTerm   string
	ActiveFilter string
	Page         int
	PageSize     int
}

type AttributePage struct {
	Items      []model.MasterAttribute `json:"items"`
	TotalCount int                     `json:"total_count"`
}

type AddAttributeInput struct {
	Name     string
	IsActive *bool
}

type UpdateAttributeInput struct {
	ID       int64
	Name     string
	IsActive bool
}
