package handler

import (
	"context"

	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/response"
	"github.com/posuniversal/pos-admin-service/internal/user"
	"github.com/posuniversal/pos-admin-service/internal/user/dto"
	"go.uber.org/zap"
)

type UserHandler struct {
	uc     user.UseCase
	logger *zap.Logger
}

func NewUserHandler(uc user.UseCase, log *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: log}
}

func (h *UserHandler) Register(ctx context.Context, input *dto.RegisterInput) response.Envelope[*model.User] {
	u, err := h.uc.Register(ctx, input)
	if err != nil {
		h.logger.Error("failed to register user", zap.Error(err))
		return response.Fail[*model.User](err)
	}
	return response.Created(u, "User registered successfully")
}

func (h *UserHandler) Login(ctx context.Context, username, password string) response.Envelope[*dto.Session] {
	s, err := h.uc.Login(ctx, username, password)
	if err != nil {
		return response.Fail[*dto.Session](err)
	}
	return response.OK(s, "Login successful")
}

func (h *UserHandler) Validate(ctx context.Context, token string) response.Envelope[*model.User] {
	u, err := h.uc.ValidateToken(ctx, token)
	if err != nil {
		return response.Fail[*model.User](err)
	}
	return response.OK(u, "Session valid")
}

func (h *UserHandler) Logout(ctx context.Context, token string) response.Envelope[bool] {
	if err := h.uc.Logout(ctx, token); err != nil {
		return response.Fail[bool](err)
	}
	return response.OK(true, "Logged out")
}
