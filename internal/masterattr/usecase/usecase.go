package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/posuniversal/pos-admin-service/internal/apperr"
	"github.com/posuniversal/pos-admin-service/internal/masterattr"
	"github.com/posuniversal/pos-admin-service/internal/masterattr/dto"
	"github.com/posuniversal/pos-admin-service/internal/model"
	"go.uber.org/zap"
)

type attributeUseCase struct {
	repo   masterattr.Repository
	logger *zap.Logger

	// mu serializes the name check against the insert.
	mu sync.Mutex
}

func NewAttributeUseCase(repo masterattr.Repository, log *zap.Logger) masterattr.UseCase {
	return &attributeUseCase{repo: repo, logger: log}
}

func (uc *attributeUseCase) AddAttribute(ctx context.Context, input *dto.AddAttributeInput) (*model.MasterAttribute, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.Invalid("name is required")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	exists, err := uc.repo.ExistsActiveName(ctx, name)
	if err != nil {
		return nil, apperr.Store("failed to check attribute name", err)
	}
	if exists {
		return nil, apperr.Conflict("attribute with this name already exists")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	m := &model.MasterAttribute{Name: name, IsActive: isActive}
	id, err := uc.repo.Create(ctx, m)
	if err != nil {
		return nil, apperr.Store("failed to add attribute", err)
	}
	m.ID = id

	uc.logger.Info("master attribute created", zap.Int64("id", id), zap.String("name", name))
	return m, nil
}

func (uc *attributeUseCase) GetAttribute(ctx context.Context, id int64) (*model.MasterAttribute, error) {
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store("failed to load attribute", err)
	}
	if m == nil {
		return nil, apperr.NotFound("attribute not found")
	}
	return m, nil
}

func (uc *attributeUseCase) GetAll(ctx context.Context) ([]model.MasterAttribute, error) {
	rows, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Store("failed to load attributes", err)
	}
	return rows, nil
}

func (uc *attributeUseCase) GetAllActive(ctx context.Context) ([]model.MasterAttribute, error) {
	rows, err := uc.repo.FindAllActive(ctx)
	if err != nil {
		return nil, apperr.Store("failed to load attributes", err)
	}
	return rows, nil
}

func (uc *attributeUseCase) GetFiltered(ctx context.Context, f *dto.AttributeFilters) ([]model.MasterAttribute, int, error) {
	items, count, err := uc.repo.FindFiltered(ctx, f)
	if err != nil {
		return nil, 0, apperr.Store("failed to search attributes", err)
	}
	return items, count, nil
}

func (uc *attributeUseCase) UpdateAttribute(ctx context.Context, input *dto.UpdateAttributeInput) (*model.MasterAttribute, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.Invalid("name is required")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	m := &model.MasterAttribute{ID: input.ID, Name: name, IsActive: input.IsActive}
	affected, err := uc.repo.Update(ctx, m)
	if err != nil {
		return nil, apperr.Store("failed to update attribute", err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("attribute not found")
	}
	return m, nil
}

func (uc *attributeUseCase) DeleteAttribute(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Store("failed to delete attribute", err)
	}
	return nil
}
