package masterattr

import (
	"context"

	"github.com/posuniversal/pos-admin-service/internal/masterattr/dto"
	"github.com/posuniversal/pos-admin-service/internal/model"
)

type UseCase interface {
	AddAttribute(ctx context.Context, input *dto.AddAttributeInput) (*model.MasterAttribute, error)
	GetAttribute(ctx context.Context, id int64) (*model.MasterAttribute, error)
	GetAll(ctx context.Context) ([]model.MasterAttribute, error)
	GetAllActive(ctx context.Context) ([]model.MasterAttribute, error)
	GetFiltered(ctx context.Context, f *dto.AttributeFilters) ([]model.MasterAttribute, int, error)
	UpdateAttribute(ctx context.Context, input *dto.UpdateAttributeInput) (*model.MasterAttribute, error)
	DeleteAttribute(ctx context.Context, id int64) error
}
