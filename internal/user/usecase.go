package user

import (
	"context"

	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/user/dto"
)

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error)
	Login(ctx context.Context, username, password string) (*dto.Session, error)
	// ValidateToken resolves a stored session token to its user; expired
	// tokens are removed and reported as not found.
	ValidateToken(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) error
}
