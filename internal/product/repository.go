package product

import (
	"context"

	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, p *model.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, p *model.Product) (int64, error)
	SoftDelete(ctx context.Context, id int64) (int64, error)

	// Code generation support. All comparisons are case-insensitive.
	CountCodePrefix(ctx context.Context, base string) (int, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	// ExistsCodeSKU is the composite duplicate guard; excludeID of 0 means
	// no record is excluded.
	ExistsCodeSKU(ctx context.Context, code, sku string, excludeID int64) (bool, error)
}

// ChildRepository is the shared contract for the product-owned collections
// (attributes, images, descriptions, keywords). The store does not enforce
// the foreign key; the usecase orchestrates cascades through these.
type ChildRepository[T any] interface {
	Add(ctx context.Context, row *T) (int64, error)
	ListByProduct(ctx context.Context, productID int64) ([]T, error)
	DeleteByProduct(ctx context.Context, productID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type AttributeRepository = ChildRepository[model.ProductAttribute]
type ImageRepository = ChildRepository[model.ProductImage]
type DescriptionRepository = ChildRepository[model.ProductDescription]
type KeywordRepository = ChildRepository[model.ProductKeyword]
