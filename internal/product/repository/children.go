package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/posuniversal/pos-admin-service/internal/model"
)

// The four product-owned collections share the same CRUD surface; only the
// table and payload columns differ.

type AttributeSQLiteRepository struct {
	DB *sqlx.DB
}

func NewAttributeSQLiteRepository(db *sqlx.DB) *AttributeSQLiteRepository {
	return &AttributeSQLiteRepository{DB: db}
}

func (r *AttributeSQLiteRepository) Add(ctx context.Context, row *model.ProductAttribute) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO product_attributes (product_id, attribute_id, value)
        VALUES (:product_id, :attribute_id, :value)
    `, row)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *AttributeSQLiteRepository) ListByProduct(ctx context.Context, productID int64) ([]model.ProductAttribute, error) {
	rows := []model.ProductAttribute{}
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT * FROM product_attributes WHERE product_id = ? ORDER BY id`, productID)
	return rows, err
}

func (r *AttributeSQLiteRepository) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM product_attributes WHERE product_id = ?`, productID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *AttributeSQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM product_attributes WHERE id = ?`, id)
	return err
}

type ImageSQLiteRepository struct {
	DB *sqlx.DB
}

func NewImageSQLiteRepository(db *sqlx.DB) *ImageSQLiteRepository {
	return &ImageSQLiteRepository{DB: db}
}

func (r *ImageSQLiteRepository) Add(ctx context.Context, row *model.ProductImage) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO product_images (product_id, title, description, url)
        VALUES (:product_id, :title, :description, :url)
    `, row)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ImageSQLiteRepository) ListByProduct(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	rows := []model.ProductImage{}
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT * FROM product_images WHERE product_id = ? ORDER BY id`, productID)
	return rows, err
}

func (r *ImageSQLiteRepository) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = ?`, productID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ImageSQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM product_images WHERE id = ?`, id)
	return err
}

type DescriptionSQLiteRepository struct {
	DB *sqlx.DB
}

func NewDescriptionSQLiteRepository(db *sqlx.DB) *DescriptionSQLiteRepository {
	return &DescriptionSQLiteRepository{DB: db}
}

func (r *DescriptionSQLiteRepository) Add(ctx context.Context, row *model.ProductDescription) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO product_descriptions (product_id, description)
        VALUES (:product_id, :description)
    `, row)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *DescriptionSQLiteRepository) ListByProduct(ctx context.Context, productID int64) ([]model.ProductDescription, error) {
	rows := []model.ProductDescription{}
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT * FROM product_descriptions WHERE product_id = ? ORDER BY id`, productID)
	return rows, err
}

func (r *DescriptionSQLiteRepository) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM product_descriptions WHERE product_id = ?`, productID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *DescriptionSQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM product_descriptions WHERE id = ?`, id)
	return err
}

type KeywordSQLiteRepository struct {
	DB *sqlx.DB
}

func NewKeywordSQLiteRepository(db *sqlx.DB) *KeywordSQLiteRepository {
	return &KeywordSQLiteRepository{DB: db}
}

func (r *KeywordSQLiteRepository) Add(ctx context.Context, row *model.ProductKeyword) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO product_keywords (product_id, keyword)
        VALUES (:product_id, :keyword)
    `, row)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *KeywordSQLiteRepository) ListByProduct(ctx context.Context, productID int64) ([]model.ProductKeyword, error) {
	rows := []model.ProductKeyword{}
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT * FROM product_keywords WHERE product_id = ? ORDER BY id`, productID)
	return rows, err
}

func (r *KeywordSQLiteRepository) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM product_keywords WHERE product_id = ?`, productID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *KeywordSQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM product_keywords WHERE id = ?`, id)
	return err
}
