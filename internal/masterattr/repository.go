package masterattr

import (
	"context"

	"github.com/posuniversal/pos-admin-service/internal/masterattr/dto"
	"github.com/posuniversal/pos-admin-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, m *model.MasterAttribute) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.MasterAttribute, error)
	FindAll(ctx context.Context) ([]model.MasterAttribute, error)
	FindAllActive(ctx context.Context) ([]model.MasterAttribute, error)
	FindFiltered(ctx context.Context, f *dto.AttributeFilters) ([]model.MasterAttribute, int, error)
	// ExistsActiveName reports a case-insensitive name match among active
	// rows only; inactive rows never block a new attribute.
	ExistsActiveName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, m *model.MasterAttribute) (int64, error)
	Delete(ctx context.Context, id int64) error
}
