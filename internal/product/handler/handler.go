// Package handler wraps the product usecase into the uniform response
// envelope consumed by the admin surface. Errors never escape raw.
package handler

import (
	"context"

	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/product"
	"github.com/posuniversal/pos-admin-service/internal/product/dto"
	"github.com/posuniversal/pos-admin-service/internal/response"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: log}
}

func (h *ProductHandler) Get(ctx context.Context, id int64) response.Envelope[*model.Product] {
	p, err := h.uc.GetProduct(ctx, id)
	if err != nil {
		return response.Fail[*model.Product](err)
	}
	return response.OK(p, "Product retrieved successfully")
}

func (h *ProductHandler) List(ctx context.Context, filters *dto.ProductFilters) response.Envelope[dto.ProductPage] {
	items, count, err := h.uc.ListProducts(ctx, filters)
	if err != nil {
		h.logger.Error("product search failed", zap.Error(err))
		return response.Fail[dto.ProductPage](err)
	}
	return response.OK(dto.ProductPage{Items: items, TotalCount: count}, "Search completed successfully")
}

func (h *ProductHandler) Create(ctx context.Context, input *dto.CreateProductInput) response.Envelope[*model.Product] {
	p, err := h.uc.CreateProduct(ctx, input)
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		return response.Fail[*model.Product](err)
	}
	return response.Created(p, "Product added successfully")
}

func (h *ProductHandler) Update(ctx context.Context, input *dto.UpdateProductInput) response.Envelope[*model.Product] {
	p, err := h.uc.UpdateProduct(ctx, input)
	if err != nil {
		h.logger.Error("failed to update product", zap.Error(err), zap.Int64("id", input.ID))
		return response.Fail[*model.Product](err)
	}
	return response.OK(p, "Product updated successfully")
}

func (h *ProductHandler) Delete(ctx context.Context, id int64) response.Envelope[bool] {
	warnings, err := h.uc.DeleteProduct(ctx, id)
	if err != nil {
		h.logger.Error("failed to delete product", zap.Error(err), zap.Int64("id", id))
		return response.Fail[bool](err)
	}
	env := response.OK(true, "Product deleted successfully")
	env.Warnings = warnings
	return env
}

func (h *ProductHandler) SaveAttributes(ctx context.Context, productID int64, rows []dto.AttributeRow) response.Envelope[[]model.ProductAttribute] {
	saved, err := h.uc.SaveAttributes(ctx, productID, rows)
	if err != nil {
		return response.Fail[[]model.ProductAttribute](err)
	}
	return response.OK(saved, "Attributes saved successfully")
}

func (h *ProductHandler) SaveImages(ctx context.Context, productID int64, rows []dto.ImageRow) response.Envelope[[]model.ProductImage] {
	saved, err := h.uc.SaveImages(ctx, productID, rows)
	if err != nil {
		return response.Fail[[]model.ProductImage](err)
	}
	return response.OK(saved, "Images saved successfully")
}

func (h *ProductHandler) SaveDescriptions(ctx context.Context, productID int64, texts []string) response.Envelope[[]model.ProductDescription] {
	saved, err := h.uc.SaveDescriptions(ctx, productID, texts)
	if err != nil {
		return response.Fail[[]model.ProductDescription](err)
	}
	return response.OK(saved, "Descriptions saved successfully")
}

func (h *ProductHandler) SaveKeywords(ctx context.Context, productID int64, words []string) response.Envelope[[]model.ProductKeyword] {
	saved, err := h.uc.SaveKeywords(ctx, productID, words)
	if err != nil {
		return response.Fail[[]model.ProductKeyword](err)
	}
	return response.OK(saved, "Keywords saved successfully")
}

func (h *ProductHandler) ListAttributes(ctx context.Context, productID int64) response.Envelope[[]model.ProductAttribute] {
	rows, err := h.uc.ListAttributes(ctx, productID)
	if err != nil {
		return response.Fail[[]model.ProductAttribute](err)
	}
	return response.OK(rows, "Attributes retrieved")
}

func (h *ProductHandler) ListImages(ctx context.Context, productID int64) response.Envelope[[]model.ProductImage] {
	rows, err := h.uc.ListImages(ctx, productID)
	if err != nil {
		return response.Fail[[]model.ProductImage](err)
	}
	return response.OK(rows, "Images retrieved")
}

func (h *ProductHandler) ListDescriptions(ctx context.Context, productID int64) response.Envelope[[]model.ProductDescription] {
	rows, err := h.uc.ListDescriptions(ctx, productID)
	if err != nil {
		return response.Fail[[]model.ProductDescription](err)
	}
	return response.OK(rows, "Descriptions retrieved")
}

func (h *ProductHandler) ListKeywords(ctx context.Context, productID int64) response.Envelope[[]model.ProductKeyword] {
	rows, err := h.uc.ListKeywords(ctx, productID)
	if err != nil {
		return response.Fail[[]model.ProductKeyword](err)
	}
	return response.OK(rows, "Keywords retrieved")
}
