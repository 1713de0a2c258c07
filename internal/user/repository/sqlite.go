package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/posuniversal/pos-admin-service/internal/model"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, u *model.User) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO users (
            guid, name, email, username, password, is_active,
            created_date, created_by, updated_date, updated_by
        )
        VALUES (
            :guid, :name, :email, :username, :password, :is_active,
            :created_date, :created_by, :updated_date, :updated_by
        )
    `, u)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *SQLiteRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u,
		`SELECT * FROM users WHERE LOWER(username) = ? AND is_active = 1 LIMIT 1`,
		strings.ToLower(username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *SQLiteRepository) CreateToken(ctx context.Context, t *model.RefreshToken) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO refresh_tokens (user_id, token, valid_till, created_date)
        VALUES (:user_id, :token, :valid_till, :created_date)
    `, t)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) FindToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	var t model.RefreshToken
	err := r.DB.GetContext(ctx, &t, `SELECT * FROM refresh_tokens WHERE token = ? LIMIT 1`, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteRepository) DeleteToken(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = ?`, token)
	return err
}

func (r *SQLiteRepository) DeleteTokensForUser(ctx context.Context, userID int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = ?`, userID)
	return err
}
