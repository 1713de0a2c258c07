package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/product/dto"
	"github.com/posuniversal/pos-admin-service/internal/query"
)

var productTable = query.Table{
	Name: "products",
	Columns: map[string]string{
		"code":      "code",
		"sku":       "sku",
		"barcode":   "barcode",
		"name":      "name",
		"is_active": "is_active",
	},
}

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO products (
            code, sku, barcode, name, cost_price, selling_price, tax_rate,
            stock, reorder_level, unit, is_active
        )
        VALUES (
            :code, :sku, :barcode, :name, :cost_price, :selling_price, :tax_rate,
            :stock, :reorder_level, :unit, :is_active
        )
    `, p)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	filters := []query.Filter{
		{Field: "code", Op: query.OpContainsFold, Value: f.Code},
		{Field: "sku", Op: query.OpContainsFold, Value: f.SKU},
		{Field: "barcode", Op: query.OpContainsFold, Value: f.Barcode},
		{Field: "name", Op: query.OpContainsFold, Value: f.Name},
		{Field: "is_active", Op: query.OpBool, Value: f.IsActive},
	}
	if f.LowStock {
		filters = append(filters, query.Filter{Field: "stock <= reorder_level", Op: query.OpExpr})
	}

	res, err := query.List[model.Product](ctx, r.DB, productTable, filters, f.Page, f.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return res.Items, res.TotalCount, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *model.Product) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
        UPDATE products
        SET code = :code,
            sku = :sku,
            barcode = :barcode,
            name = :name,
            cost_price = :cost_price,
            selling_price = :selling_price,
            tax_rate = :tax_rate,
            stock = :stock,
            reorder_level = :reorder_level,
            unit = :unit,
            is_active = :is_active
        WHERE id = :id
    `, p)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQLiteRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE products SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQLiteRepository) CountCodePrefix(ctx context.Context, base string) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM products WHERE LOWER(code) LIKE ? ESCAPE '\'`,
		query.EscapeLike(strings.ToLower(base))+"%")
	return count, err
}

func (r *SQLiteRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM products WHERE LOWER(code) = ?`,
		strings.ToLower(code))
	return count > 0, err
}

func (r *SQLiteRepository) ExistsCodeSKU(ctx context.Context, code, sku string, excludeID int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM products WHERE LOWER(code) = ? AND LOWER(sku) = ? AND id != ?`,
		strings.ToLower(code), strings.ToLower(sku), excludeID)
	return count > 0, err
}
