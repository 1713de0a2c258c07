package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/posuniversal/pos-admin-service/internal/apperr"
	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/product"
	"github.com/posuniversal/pos-admin-service/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo         product.Repository
	attributes   product.AttributeRepository
	images       product.ImageRepository
	descriptions product.DescriptionRepository
	keywords     product.KeywordRepository
	logger       *zap.Logger

	// mu serializes every generate/check/write sequence. The store has no
	// multi-record transactions, so without this a second Add racing the
	// duplicate check could persist a duplicate (code, sku) pair.
	mu sync.Mutex
}

func NewProductUseCase(
	repo product.Repository,
	attributes product.AttributeRepository,
	images product.ImageRepository,
	descriptions product.DescriptionRepository,
	keywords product.KeywordRepository,
	log *zap.Logger,
) product.UseCase {
	return &productUseCase{
		repo:         repo,
		attributes:   attributes,
		images:       images,
		descriptions: descriptions,
		keywords:     keywords,
		logger:       log,
	}
}

func (uc *productUseCase) GenerateUniqueCode(ctx context.Context, name, sku string) (string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.generateUniqueCode(ctx, name, sku)
}

func (uc *productUseCase) generateUniqueCode(ctx context.Context, name, sku string) (string, error) {
	base := codeBase(name, sku)

	n, err := uc.repo.CountCodePrefix(ctx, base)
	if err != nil {
		return "", apperr.Store("failed to count existing product codes", err)
	}

	for seq := n + 1; seq <= maxCodeSequence; seq++ {
		code := base + codeSuffix(seq)
		exists, err := uc.repo.CodeExists(ctx, code)
		if err != nil {
			return "", apperr.Store("failed to probe product code", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", apperr.Store("product code space exhausted for base "+base, nil)
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	name := strings.TrimSpace(input.Name)
	sku := strings.TrimSpace(input.SKU)
	if name == "" || sku == "" {
		return nil, apperr.Invalid("name and sku are required")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	code, err := uc.generateUniqueCode(ctx, name, sku)
	if err != nil {
		return nil, err
	}

	dup, err := uc.repo.ExistsCodeSKU(ctx, code, sku, 0)
	if err != nil {
		return nil, apperr.Store("failed to check for duplicate product", err)
	}
	if dup {
		return nil, apperr.Conflict("product with this code and sku already exists")
	}

	p := &model.Product{
		Code:         code,
		SKU:          sku,
		Barcode:      input.Barcode,
		Name:         name,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
		TaxRate:      input.TaxRate,
		Stock:        input.Stock,
		ReorderLevel: input.ReorderLevel,
		Unit:         input.Unit,
		IsActive:     true,
	}

	id, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, apperr.Store("failed to add product", err)
	}
	p.ID = id

	uc.logger.Info("product created", zap.Int64("id", id), zap.String("code", code))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store("failed to load product", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	items, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Store("failed to search products", err)
	}
	return items, count, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperr.Store("failed to load product", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}

	// Nil fields keep the stored value; validation runs on the merge result.
	name := p.Name
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	sku := p.SKU
	if input.SKU != nil {
		sku = strings.TrimSpace(*input.SKU)
	}
	if name == "" || sku == "" {
		return nil, apperr.Invalid("name and sku are required")
	}

	// The stored code is locked; the guard runs against it, never against
	// anything the caller sent.
	dup, err := uc.repo.ExistsCodeSKU(ctx, p.Code, sku, p.ID)
	if err != nil {
		return nil, apperr.Store("failed to check for duplicate product", err)
	}
	if dup {
		return nil, apperr.Conflict("another product already uses this code and sku")
	}

	p.Name = name
	p.SKU = sku
	if input.Barcode != nil {
		p.Barcode = *input.Barcode
	}
	if input.CostPrice != nil {
		p.CostPrice = *input.CostPrice
	}
	if input.SellingPrice != nil {
		p.SellingPrice = *input.SellingPrice
	}
	if input.TaxRate != nil {
		p.TaxRate = *input.TaxRate
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	if input.ReorderLevel != nil {
		p.ReorderLevel = *input.ReorderLevel
	}
	if input.Unit != nil {
		p.Unit = *input.Unit
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}

	affected, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, apperr.Store("failed to update product", err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("product not found")
	}

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) ([]string, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store("failed to load product", err)
	}
	if p == nil {
		return nil, apperr.NotFound("product not found")
	}

	affected, err := uc.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, apperr.Store("failed to delete product", err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("product not found")
	}

	// Best-effort cascade: each child collection is cleared independently
	// and a failure is reported as a warning, not as a failed delete.
	var warnings []string
	cascade := []struct {
		label  string
		remove func(context.Context, int64) (int64, error)
	}{
		{"attributes", uc.attributes.DeleteByProduct},
		{"images", uc.images.DeleteByProduct},
		{"descriptions", uc.descriptions.DeleteByProduct},
		{"keywords", uc.keywords.DeleteByProduct},
	}
	for _, step := range cascade {
		if _, err := step.remove(ctx, id); err != nil {
			uc.logger.Warn("cascade delete step failed",
				zap.Int64("product_id", id),
				zap.String("collection", step.label),
				zap.Error(err))
			warnings = append(warnings, "failed to delete product "+step.label+": "+err.Error())
		}
	}

	uc.logger.Info("product deleted", zap.Int64("id", id), zap.Int("warnings", len(warnings)))
	return warnings, nil
}

func (uc *productUseCase) SaveAttributes(ctx context.Context, productID int64, rows []dto.AttributeRow) ([]model.ProductAttribute, error) {
	if _, err := uc.attributes.DeleteByProduct(ctx, productID); err != nil {
		return nil, apperr.Store("failed to clear product attributes", err)
	}
	for _, row := range rows {
		if row.AttributeID == 0 || row.Value == "" {
			continue
		}
		a := &model.ProductAttribute{ProductID: productID, AttributeID: row.AttributeID, Value: row.Value}
		if _, err := uc.attributes.Add(ctx, a); err != nil {
			return nil, apperr.Store("failed to add product attribute", err)
		}
	}
	saved, err := uc.attributes.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Store("failed to reload product attributes", err)
	}
	return saved, nil
}

func (uc *productUseCase) SaveImages(ctx context.Context, productID int64, rows []dto.ImageRow) ([]model.ProductImage, error) {
	if _, err := uc.images.DeleteByProduct(ctx, productID); err != nil {
		return nil, apperr.Store("failed to clear product images", err)
	}
	for _, row := range rows {
		// Only the URL is required; title and description are optional.
		if strings.TrimSpace(row.URL) == "" {
			continue
		}
		img := &model.ProductImage{
			ProductID:   productID,
			Title:       strings.TrimSpace(row.Title),
			Description: strings.TrimSpace(row.Description),
			URL:         strings.TrimSpace(row.URL),
		}
		if _, err := uc.images.Add(ctx, img); err != nil {
			return nil, apperr.Store("failed to add product image", err)
		}
	}
	saved, err := uc.images.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Store("failed to reload product images", err)
	}
	return saved, nil
}

func (uc *productUseCase) SaveDescriptions(ctx context.Context, productID int64, texts []string) ([]model.ProductDescription, error) {
	if _, err := uc.descriptions.DeleteByProduct(ctx, productID); err != nil {
		return nil, apperr.Store("failed to clear product descriptions", err)
	}
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		d := &model.ProductDescription{ProductID: productID, Description: text}
		if _, err := uc.descriptions.Add(ctx, d); err != nil {
			return nil, apperr.Store("failed to add product description", err)
		}
	}
	saved, err := uc.descriptions.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Store("failed to reload product descriptions", err)
	}
	return saved, nil
}

func (uc *productUseCase) SaveKeywords(ctx context.Context, productID int64, words []string) ([]model.ProductKeyword, error) {
	if _, err := uc.keywords.DeleteByProduct(ctx, productID); err != nil {
		return nil, apperr.Store("failed to clear product keywords", err)
	}
	for _, word := range words {
		if strings.TrimSpace(word) == "" {
			continue
		}
		k := &model.ProductKeyword{ProductID: productID, Keyword: strings.TrimSpace(word)}
		if _, err := uc.keywords.Add(ctx, k); err != nil {
			return nil, apperr.Store("failed to add product keyword", err)
		}
	}
	saved, err := uc.keywords.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Store("failed to reload product keywords", err)
	}
	return saved, nil
}

func (uc *productUseCase) ListAttributes(ctx context.Context, productID int64) ([]model.ProductAttribute, error) {
	rows, err := uc.attributes.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Store("failed to load product attributes", err)
	}
	return rows, nil
}

func (uc *productUseCase) ListImages(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	rows, err := uc.images.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Store("failed to load product images", err)
	}
	return rows, nil
}

func (uc *productUseCase) ListDescriptions(ctx context.Context, productID int64) ([]model.ProductDescription, error) {
	rows, err := uc.descriptions.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Store("failed to load product descriptions", err)
	}
	return rows, nil
}

func (uc *productUseCase) ListKeywords(ctx context.Context, productID int64) ([]model.ProductKeyword, error) {
	rows, err := uc.keywords.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Store("failed to load product keywords", err)
	}
	return rows, nil
}
