package handler

import (
	"context"

	"github.com/posuniversal/pos-admin-service/internal/masterattr"
	"github.com/posuniversal/pos-admin-service/internal/masterattr/dto"
	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/response"
	"go.uber.org/zap"
)

type AttributeHandler struct {
	uc     masterattr.UseCase
	logger *zap.Logger
}

func NewAttributeHandler(uc masterattr.UseCase, log *zap.Logger) *AttributeHandler {
	return &AttributeHandler{uc: uc, logger: log}
}

func (h *AttributeHandler) Get(ctx context.Context, id int64) response.Envelope[*model.MasterAttribute] {
	m, err := h.uc.GetAttribute(ctx, id)
	if err != nil {
		return response.Fail[*model.MasterAttribute](err)
	}
	return response.OK(m, "Attribute retrieved successfully")
}

func (h *AttributeHandler) GetAll(ctx context.Context) response.Envelope[[]model.MasterAttribute] {
	rows, err := h.uc.GetAll(ctx)
	if err != nil {
		return response.Fail[[]model.MasterAttribute](err)
	}
	return response.OK(rows, "Items retrieved successfully")
}

func (h *AttributeHandler) GetAllActive(ctx context.Context) response.Envelope[[]model.MasterAttribute] {
	rows, err := h.uc.GetAllActive(ctx)
	if err != nil {
		return response.Fail[[]model.MasterAttribute](err)
	}
	return response.OK(rows, "Items retrieved successfully")
}

func (h *AttributeHandler) GetFiltered(ctx context.Context, f *dto.AttributeFilters) response.Envelope[dto.AttributePage] {
	items, count, err := h.uc.GetFiltered(ctx, f)
	if err != nil {
		h.logger.Error("attribute search failed", zap.Error(err))
		return response.Fail[dto.AttributePage](err)
	}
	return response.OK(dto.AttributePage{Items: items, TotalCount: count}, "Retrieved successfully")
}

func (h *AttributeHandler) Add(ctx context.Context, input *dto.AddAttributeInput) response.Envelope[*model.MasterAttribute] {
	m, err := h.uc.AddAttribute(ctx, input)
	if err != nil {
		h.logger.Error("failed to add attribute", zap.Error(err))
		return response.Fail[*model.MasterAttribute](err)
	}
	return response.Created(m, "Attribute added successfully")
}

func (h *AttributeHandler) Update(ctx context.Context, input *dto.UpdateAttributeInput) response.Envelope[*model.MasterAttribute] {
	m, err := h.uc.UpdateAttribute(ctx, input)
	if err != nil {
		return response.Fail[*model.MasterAttribute](err)
	}
	return response.OK(m, "Attribute updated successfully")
}

func (h *AttributeHandler) Delete(ctx context.Context, id int64) response.Envelope[bool] {
	if err := h.uc.DeleteAttribute(ctx, id); err != nil {
		return response.Fail[bool](err)
	}
	return response.OK(true, "Deleted successfully")
}
