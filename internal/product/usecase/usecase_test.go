package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/posuniversal/pos-admin-service/internal/apperr"
	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/product"
	"github.com/posuniversal/pos-admin-service/internal/product/dto"
	"github.com/posuniversal/pos-admin-service/internal/product/repository"
	"github.com/posuniversal/pos-admin-service/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

func newTestUseCase(t *testing.T) (product.UseCase, *sqlx.DB) {
	t.Helper()
	db, err := store.Open(&store.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.Migrate(db))

	uc := NewProductUseCase(
		repository.NewSQLiteRepository(db),
		repository.NewAttributeSQLiteRepository(db),
		repository.NewImageSQLiteRepository(db),
		repository.NewDescriptionSQLiteRepository(db),
		repository.NewKeywordSQLiteRepository(db),
		zap.NewNop(),
	)
	return uc, db
}

func TestCreateProductGeneratesSequentialCodes(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	p1, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Mighty Mouse", SKU: "MX3"})
	require.NoError(t, err)
	require.Equal(t, "MMM001", p1.Code)
	require.True(t, p1.IsActive)
	require.NotZero(t, p1.ID)

	p2, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Mighty Mouse", SKU: "MX9"})
	require.NoError(t, err)
	require.Equal(t, "MMM002", p2.Code)
	require.NotEqual(t, p1.ID, p2.ID)
}

func TestCreateProductValidation(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	for _, input := range []*dto.CreateProductInput{
		{Name: "", SKU: "MX3"},
		{Name: "Mouse", SKU: ""},
		{Name: "   ", SKU: "   "},
	} {
		_, err := uc.CreateProduct(ctx, input)
		require.Error(t, err)
		require.Equal(t, 400, apperr.StatusOf(err))
	}
}

func TestCreateProductKeepsCallerStock(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Mouse", SKU: "S1"})
	require.NoError(t, err)
	require.Zero(t, p.Stock)

	// Negative stock is a real state (oversold); it is stored as given.
	p, err = uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Mouse", SKU: "S2", Stock: -5})
	require.NoError(t, err)
	require.Equal(t, int64(-5), p.Stock)
}

func TestGetProductNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)
	_, err := uc.GetProduct(context.Background(), 42)
	require.Equal(t, 404, apperr.StatusOf(err))
}

func TestUpdateProductLocksCode(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Mighty Mouse", SKU: "MX3"})
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		ID: p.ID, Name: ptr("Renamed Mouse"), SellingPrice: ptr(12.5),
	})
	require.NoError(t, err)
	require.Equal(t, p.Code, updated.Code)
	require.Equal(t, "Renamed Mouse", updated.Name)

	got, err := uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.Code, got.Code)
	require.Equal(t, 12.5, got.SellingPrice)
}

func TestUpdateProductIsPartial(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name: "Mighty Mouse", SKU: "MX3", Barcode: "4006381333931",
		CostPrice: 20, SellingPrice: 39.9, TaxRate: 0.1,
		Stock: 7, ReorderLevel: 3, Unit: "pcs",
	})
	require.NoError(t, err)

	// Touching only the name leaves every other field alone.
	got, err := uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: p.ID, Name: ptr("Renamed")})
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)
	require.Equal(t, "MX3", got.SKU)
	require.Equal(t, "4006381333931", got.Barcode)
	require.Equal(t, 20.0, got.CostPrice)
	require.Equal(t, 39.9, got.SellingPrice)
	require.Equal(t, 0.1, got.TaxRate)
	require.Equal(t, int64(7), got.Stock)
	require.Equal(t, int64(3), got.ReorderLevel)
	require.Equal(t, "pcs", got.Unit)
	require.True(t, got.IsActive)

	got, err = uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: p.ID, IsActive: ptr(false)})
	require.NoError(t, err)
	require.False(t, got.IsActive)
	require.Equal(t, "Renamed", got.Name)
}

func TestUpdateProductBlankNameRejected(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Mighty Mouse", SKU: "MX3"})
	require.NoError(t, err)

	_, err = uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: p.ID, Name: ptr("   ")})
	require.Equal(t, 400, apperr.StatusOf(err))
}

func TestUpdateProductNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: 99, Name: ptr("X"), SKU: ptr("Y")})
	require.Equal(t, 404, apperr.StatusOf(err))

	// The missing record wins over bad input: still 404, not 400.
	_, err = uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: 99, Name: ptr(""), SKU: ptr("Y")})
	require.Equal(t, 404, apperr.StatusOf(err))
}

func TestUpdateProductDuplicateGuard(t *testing.T) {
	uc, db := newTestUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Mighty Mouse", SKU: "MX3"})
	require.NoError(t, err)

	// Another record holding p's code with a different sku, inserted
	// directly: updating p to that sku must collide on (code, sku).
	_, err = db.Exec(
		`INSERT INTO products (code, sku, name, is_active) VALUES (?, ?, ?, 0)`,
		p.Code, "OTHER", "Shadow")
	require.NoError(t, err)

	_, err = uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: p.ID, SKU: ptr("other")})
	require.Equal(t, 409, apperr.StatusOf(err))

	// Updating to its own current pair stays fine.
	_, err = uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: p.ID, SKU: ptr("MX3")})
	require.NoError(t, err)
}

func TestDuplicateGuardIsCaseInsensitive(t *testing.T) {
	uc, db := newTestUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Mighty Mouse", SKU: "MX3"})
	require.NoError(t, err)

	repo := repository.NewSQLiteRepository(db)
	dup, err := repo.ExistsCodeSKU(ctx, "mmm001", "mx3", 0)
	require.NoError(t, err)
	require.True(t, dup)

	dup, err = repo.ExistsCodeSKU(ctx, "mmm001", "mx3", p.ID)
	require.NoError(t, err)
	require.False(t, dup)
}

func TestDeleteProductCascades(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Mighty Mouse", SKU: "MX3"})
	require.NoError(t, err)

	_, err = uc.SaveAttributes(ctx, p.ID, []dto.AttributeRow{
		{AttributeID: 1, Value: "Black"},
		{AttributeID: 2, Value: "Wireless"},
		{AttributeID: 3, Value: "USB-C"},
	})
	require.NoError(t, err)
	_, err = uc.SaveImages(ctx, p.ID, []dto.ImageRow{
		{Title: "front", URL: "file:///front.png"},
		{Title: "back", URL: "file:///back.png"},
	})
	require.NoError(t, err)
	_, err = uc.SaveDescriptions(ctx, p.ID, []string{"A very mighty mouse."})
	require.NoError(t, err)

	warnings, err := uc.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, warnings)

	// Soft delete: the record remains, inactive.
	got, err := uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	for _, list := range []func(context.Context, int64) (int, error){
		func(ctx context.Context, id int64) (int, error) {
			rows, err := uc.ListAttributes(ctx, id)
			return len(rows), err
		},
		func(ctx context.Context, id int64) (int, error) {
			rows, err := uc.ListImages(ctx, id)
			return len(rows), err
		},
		func(ctx context.Context, id int64) (int, error) {
			rows, err := uc.ListDescriptions(ctx, id)
			return len(rows), err
		},
		func(ctx context.Context, id int64) (int, error) {
			rows, err := uc.ListKeywords(ctx, id)
			return len(rows), err
		},
	} {
		n, err := list(ctx, p.ID)
		require.NoError(t, err)
		require.Zero(t, n)
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)
	_, err := uc.DeleteProduct(context.Background(), 12345)
	require.Equal(t, 404, apperr.StatusOf(err))
}

func TestSaveAttributesReplacesExistingRows(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Mighty Mouse", SKU: "MX3"})
	require.NoError(t, err)

	first, err := uc.SaveAttributes(ctx, p.ID, []dto.AttributeRow{{AttributeID: 1, Value: "Black"}})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := uc.SaveAttributes(ctx, p.ID, []dto.AttributeRow{
		{AttributeID: 2, Value: "White"},
		{AttributeID: 0, Value: "skipped"},
		{AttributeID: 3, Value: ""},
	})
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, int64(2), second[0].AttributeID)
}

func TestConcurrentCreatesNeverDuplicateCodes(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	const n = 8
	codes := make([]string, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Mighty Mouse", SKU: "MX3"})
			if err != nil {
				errs[i] = err
				return
			}
			codes[i] = p.Code
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for i, code := range codes {
		require.NoError(t, errs[i])
		require.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestGenerateUniqueCodeSkipsTakenSuffix(t *testing.T) {
	uc, db := newTestUseCase(t)
	ctx := context.Background()

	// Two rows share the base but hold sequence numbers 1 and 3; counting
	// gives n=2, so the first probe (3) collides and the loop lands on 4.
	for _, code := range []string{"MMM001", "MMM003"} {
		_, err := db.Exec(
			`INSERT INTO products (code, sku, name, is_active) VALUES (?, ?, ?, 1)`,
			code, "S-"+code, "seed")
		require.NoError(t, err)
	}

	code, err := uc.GenerateUniqueCode(ctx, "Mighty Mouse", "MX3")
	require.NoError(t, err)
	require.Equal(t, "MMM004", code)

	var existing []model.Product
	require.NoError(t, db.Select(&existing, `SELECT * FROM products`))
	for _, p := range existing {
		require.NotEqual(t, p.Code, code)
	}
}

func TestGenerateUniqueCodeBaseMatchesLiterally(t *testing.T) {
	uc, db := newTestUseCase(t)
	ctx := context.Background()

	// The base derived from "_ Items"/"X" is "_IX". A code like "ZIX001"
	// shares no literal prefix with it, so it must not shift the sequence.
	_, err := db.Exec(
		`INSERT INTO products (code, sku, name, is_active) VALUES ('ZIX001', 'Z1', 'seed', 1)`)
	require.NoError(t, err)

	code, err := uc.GenerateUniqueCode(ctx, "_ Items", "X")
	require.NoError(t, err)
	require.Equal(t, "_IX001", code)
}

func TestListProductsLowStock(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name: "Mighty Mouse", SKU: "MX3", Stock: 2, ReorderLevel: 5,
	})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name: "Sturdy Keyboard", SKU: "KB1", Stock: 50, ReorderLevel: 5,
	})
	require.NoError(t, err)
	low, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name: "Bright Monitor", SKU: "MN7", Stock: 5, ReorderLevel: 5,
	})
	require.NoError(t, err)

	items, count, err := uc.ListProducts(ctx, &dto.ProductFilters{LowStock: true, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Len(t, items, 2)
	// Newest first: the monitor at its exact reorder level leads.
	require.Equal(t, low.Code, items[0].Code)
}
