package user

import (
	"context"

	"github.com/posuniversal/pos-admin-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, u *model.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// FindByUsername matches active users case-insensitively; absent
	// usernames return nil, nil.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	CreateToken(ctx context.Context, t *model.RefreshToken) (int64, error)
	FindToken(ctx context.Context, token string) (*model.RefreshToken, error)
	DeleteToken(ctx context.Context, token string) error
	DeleteTokensForUser(ctx context.Context, userID int64) error
}
