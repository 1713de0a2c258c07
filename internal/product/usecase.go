package product

import (
	"context"

	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	// DeleteProduct soft-deletes the product and cascades hard deletes of
	// its child rows, returning per-step warnings for any child collection
	// that could not be cleared.
	DeleteProduct(ctx context.Context, id int64) ([]string, error)

	GenerateUniqueCode(ctx context.Context, name, sku string) (string, error)

	// Replace-all saves, matching the form's edit behavior: existing child
	// rows for the product are dropped before the new rows are written.
	SaveAttributes(ctx context.Context, productID int64, rows []dto.AttributeRow) ([]model.ProductAttribute, error)
	SaveImages(ctx context.Context, productID int64, rows []dto.ImageRow) ([]model.ProductImage, error)
	SaveDescriptions(ctx context.Context, productID int64, texts []string) ([]model.ProductDescription, error)
	SaveKeywords(ctx context.Context, productID int64, words []string) ([]model.ProductKeyword, error)

	ListAttributes(ctx context.Context, productID int64) ([]model.ProductAttribute, error)
	ListImages(ctx context.Context, productID int64) ([]model.ProductImage, error)
	ListDescriptions(ctx context.Context, productID int64) ([]model.ProductDescription, error)
	ListKeywords(ctx context.Context, productID int64) ([]model.ProductKeyword, error)
}
