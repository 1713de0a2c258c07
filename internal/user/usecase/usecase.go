package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/posuniversal/pos-admin-service/internal/apperr"
	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/user"
	"github.com/posuniversal/pos-admin-service/internal/user/dto"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type userUseCase struct {
	repo       user.Repository
	sessionTTL time.Duration
	bcryptCost int
	logger     *zap.Logger

	mu sync.Mutex
}

func NewUserUseCase(repo user.Repository, sessionTTL time.Duration, bcryptCost int, log *zap.Logger) user.UseCase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userUseCase{
		repo:       repo,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
		logger:     log,
	}
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (uc *userUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, apperr.Invalid("username and password are required")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Store("failed to check username", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		return nil, apperr.Store("failed to hash password", err)
	}

	// Name and email fall back to the username, as the register screen does.
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = username
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		email = username
	}

	u := &model.User{
		GUID:        uuid.NewString(),
		Name:        name,
		Email:       email,
		Username:    username,
		Password:    string(hash),
		IsActive:    true,
		CreatedDate: nowUTC(),
	}

	id, err := uc.repo.Create(ctx, u)
	if err != nil {
		return nil, apperr.Store("failed to register user", err)
	}
	u.ID = id

	uc.logger.Info("user registered", zap.Int64("id", id), zap.String("username", username))
	return u, nil
}

func (uc *userUseCase) Login(ctx context.Context, username, password string) (*dto.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperr.Invalid("username and password are required")
	}

	u, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Store("failed to load user", err)
	}
	if u == nil {
		return nil, apperr.NotFound("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperr.NotFound("invalid username or password")
	}

	t := &model.RefreshToken{
		UserID:      u.ID,
		Token:       uuid.NewString(),
		ValidTill:   time.Now().UTC().Add(uc.sessionTTL).Format(time.RFC3339),
		CreatedDate: nowUTC(),
	}
	if _, err := uc.repo.CreateToken(ctx, t); err != nil {
		return nil, apperr.Store("failed to create session token", err)
	}

	return &dto.Session{Token: t.Token, ValidTill: t.ValidTill, User: u}, nil
}

func (uc *userUseCase) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apperr.Invalid("token is required")
	}

	t, err := uc.repo.FindToken(ctx, token)
	if err != nil {
		return nil, apperr.Store("failed to load session token", err)
	}
	if t == nil {
		return nil, apperr.NotFound("session not found")
	}

	validTill, err := time.Parse(time.RFC3339, t.ValidTill)
	if err != nil || time.Now().UTC().After(validTill) {
		// Expired or unreadable tokens are dropped on sight.
		if delErr := uc.repo.DeleteToken(ctx, token); delErr != nil {
			uc.logger.Warn("failed to remove stale token", zap.Error(delErr))
		}
		return nil, apperr.NotFound("session expired")
	}

	u, err := uc.repo.FindByID(ctx, t.UserID)
	if err != nil {
		return nil, apperr.Store("failed to load user", err)
	}
	if u == nil || !u.IsActive {
		// A deactivated user keeps no sessions.
		if delErr := uc.repo.DeleteTokensForUser(ctx, t.UserID); delErr != nil {
			uc.logger.Warn("failed to purge tokens for inactive user", zap.Error(delErr))
		}
		return nil, apperr.NotFound("session not found")
	}
	return u, nil
}

func (uc *userUseCase) Logout(ctx context.Context, token string) error {
	if err := uc.repo.DeleteToken(ctx, token); err != nil {
		return apperr.Store("failed to remove session token", err)
	}
	return nil
}
