package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/posuniversal/pos-admin-service/internal/masterattr/dto"
	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/query"
)

var attributeTable = query.Table{
	Name: "master_product_attributes",
	Columns: map[string]string{
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

func (r *SQLiteRepository) Create(ctx context.Context, m *model.MasterAttribute) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO master_product_attributes (name, is_active)
        VALUES (:name, :is_active)
    `, m)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.MasterAttribute, error) {
	var m model.MasterAttribute
	err := r.DB.GetContext(ctx, &m, `SELECT * FROM master_product_attributes WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.MasterAttribute, error) {
	rows := []model.MasterAttribute{}
	err := r.DB.SelectContext(ctx, &rows, `SELECT * FROM master_product_attributes ORDER BY id`)
	return rows, err
}

func (r *SQLiteRepository) FindAllActive(ctx context.Context) ([]model.MasterAttribute, error) {
	rows := []model.MasterAttribute{}
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT * FROM master_product_attributes WHERE is_active = 1 ORDER BY id`)
	return rows, err
}

func (r *SQLiteRepository) FindFiltered(ctx context.Context, f *dto.AttributeFilters) ([]model.MasterAttribute, int, error) {
	filters := []query.Filter{
		{Field: "name", Op: query.OpPrefixFold, Value: strings.TrimSpace(f.SearchTerm)},
		{Field: "is_active", Op: query.OpBool, Value: f.ActiveFilter},
	}

	res, err := query.List[model.MasterAttribute](ctx, r.DB, attributeTable, filters, f.Page, f.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return res.Items, res.TotalCount, nil
}

func (r *SQLiteRepository) ExistsActiveName(ctx context.Context, name string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM master_product_attributes WHERE LOWER(name) = ? AND is_active = 1`,
		strings.ToLower(name))
	return count > 0, err
}

func (r *SQLiteRepository) Update(ctx context.Context, m *model.MasterAttribute) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
        UPDATE master_product_attributes
        SET name = :name, is_active = :is_active
        WHERE id = :id
    `, m)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM master_product_attributes WHERE id = ?`, id)
	return err
}
