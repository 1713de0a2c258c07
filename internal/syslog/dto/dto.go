package dto

import "github.com/posuniversal/pos-admin-service/internal/model"

// LogFilters drives the system log screen: Type is an exact match against
// the log level name, PageName a case-insensitive prefix.
type LogFilters struct {
	Type     string
	PageName string
	Page     int
	PageSize int
}

type LogPage struct {
	Items      []model.SystemLog `json:"items"`
	TotalCount int               `json:"total_count"`
}

type AddLogInput struct {
	Type         string
	PageName     string
	FunctionName string
	Data         string
	Message      string
	StackTrace   string
}
