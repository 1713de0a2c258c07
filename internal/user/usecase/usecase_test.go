package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/posuniversal/pos-admin-service/internal/apperr"
	"github.com/posuniversal/pos-admin-service/internal/store"
	"github.com/posuniversal/pos-admin-service/internal/user"
	"github.com/posuniversal/pos-admin-service/internal/user/dto"
	"github.com/posuniversal/pos-admin-service/internal/user/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestUseCase(t *testing.T, ttl time.Duration) user.UseCase {
	t.Helper()
	db, err := store.Open(&store.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.Migrate(db))
	return NewUserUseCase(repository.NewSQLiteRepository(db), ttl, bcrypt.MinCost, zap.NewNop())
}

func TestRegisterValidation(t *testing.T) {
	uc := newTestUseCase(t, time.Hour)
	_, err := uc.Register(context.Background(), &dto.RegisterInput{Username: "", Password: "pw"})
	require.Equal(t, 400, apperr.StatusOf(err))
	_, err = uc.Register(context.Background(), &dto.RegisterInput{Username: "admin", Password: ""})
	require.Equal(t, 400, apperr.StatusOf(err))
}

func TestRegisterDefaultsAndHashing(t *testing.T) {
	uc := newTestUseCase(t, time.Hour)
	u, err := uc.Register(context.Background(), &dto.RegisterInput{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "admin", u.Name)
	require.Equal(t, "admin", u.Email)
	require.NotEmpty(t, u.GUID)
	require.NotEqual(t, "secret", u.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	uc := newTestUseCase(t, time.Hour)
	ctx := context.Background()
	_, err := uc.Register(ctx, &dto.RegisterInput{Username: "admin", Password: "pw"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, &dto.RegisterInput{Username: "ADMIN", Password: "pw"})
	require.Equal(t, 409, apperr.StatusOf(err))
}

func TestLoginAndValidate(t *testing.T) {
	uc := newTestUseCase(t, time.Hour)
	ctx := context.Background()
	_, err := uc.Register(ctx, &dto.RegisterInput{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	s, err := uc.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, s.Token)

	u, err := uc.ValidateToken(ctx, s.Token)
	require.NoError(t, err)
	require.Equal(t, "admin", u.Username)
}

func TestLoginBadCredentials(t *testing.T) {
	uc := newTestUseCase(t, time.Hour)
	ctx := context.Background()
	_, err := uc.Register(ctx, &dto.RegisterInput{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, "admin", "wrong")
	require.Equal(t, 404, apperr.StatusOf(err))
	_, err = uc.Login(ctx, "nobody", "secret")
	require.Equal(t, 404, apperr.StatusOf(err))
}

func TestValidateExpiredTokenIsDropped(t *testing.T) {
	uc := newTestUseCase(t, -time.Minute)
	ctx := context.Background()
	_, err := uc.Register(ctx, &dto.RegisterInput{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	s, err := uc.Login(ctx, "admin", "secret")
	require.NoError(t, err)

	_, err = uc.ValidateToken(ctx, s.Token)
	require.Equal(t, 404, apperr.StatusOf(err))

	// Still gone on the second look.
	_, err = uc.ValidateToken(ctx, s.Token)
	require.Equal(t, 404, apperr.StatusOf(err))
}

func TestLogoutInvalidatesToken(t *testing.T) {
	uc := newTestUseCase(t, time.Hour)
	ctx := context.Background()
	_, err := uc.Register(ctx, &dto.RegisterInput{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	s, err := uc.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	require.NoError(t, uc.Logout(ctx, s.Token))

	_, err = uc.ValidateToken(ctx, s.Token)
	require.Equal(t, 404, apperr.StatusOf(err))
}
