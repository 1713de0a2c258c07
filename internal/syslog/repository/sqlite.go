package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/query"
	"github.com/posuniversal/pos-admin-service/internal/syslog/dto"
)

var logTable = query.Table{
	Name: "system_logs",
	Columns: map[string]string{
		"type":      "type",
		"page_name": "page_name",
	},
}

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, entry *model.SystemLog) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO system_logs (
            type, page_name, function_name, data, timestamp, message, stack_trace
        )
        VALUES (
            :type, :page_name, :function_name, :data, :timestamp, :message, :stack_trace
        )
    `, entry)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.SystemLog, error) {
	var entry model.SystemLog
	err := r.DB.GetContext(ctx, &entry, `SELECT * FROM system_logs WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *SQLiteRepository) FindFiltered(ctx context.Context, f *dto.LogFilters) ([]model.SystemLog, int, error) {
	filters := []query.Filter{
		{Field: "type", Op: query.OpEq, Value: f.Type},
		{Field: "page_name", Op: query.OpPrefixFold, Value: f.PageName},
	}

	res, err := query.List[model.SystemLog](ctx, r.DB, logTable, filters, f.Page, f.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return res.Items, res.TotalCount, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM system_logs WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepository) Clear(ctx context.Context) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM system_logs`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
