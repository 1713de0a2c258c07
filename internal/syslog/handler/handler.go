package handler

import (
	"context"

	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/response"
	"github.com/posuniversal/pos-admin-service/internal/syslog"
	"github.com/posuniversal/pos-admin-service/internal/syslog/dto"
	"go.uber.org/zap"
)

type LogHandler struct {
	uc     syslog.UseCase
	logger *zap.Logger
}

func NewLogHandler(uc syslog.UseCase, log *zap.Logger) *LogHandler {
	return &LogHandler{uc: uc, logger: log}
}

func (h *LogHandler) Add(ctx context.Context, input *dto.AddLogInput) response.Envelope[*model.SystemLog] {
	entry, err := h.uc.AddLog(ctx, input)
	if err != nil {
		return response.Fail[*model.SystemLog](err)
	}
	return response.Created(entry, "Log entry added")
}

func (h *LogHandler) Get(ctx context.Context, id int64) response.Envelope[*model.SystemLog] {
	entry, err := h.uc.GetLog(ctx, id)
	if err != nil {
		return response.Fail[*model.SystemLog](err)
	}
	return response.OK(entry, "Log entry retrieved")
}

func (h *LogHandler) GetFiltered(ctx context.Context, f *dto.LogFilters) response.Envelope[dto.LogPage] {
	items, count, err := h.uc.GetFiltered(ctx, f)
	if err != nil {
		h.logger.Error("log search failed", zap.Error(err))
		return response.Fail[dto.LogPage](err)
	}
	return response.OK(dto.LogPage{Items: items, TotalCount: count}, "Retrieved successfully")
}

func (h *LogHandler) Delete(ctx context.Context, id int64) response.Envelope[bool] {
	if err := h.uc.DeleteLog(ctx, id); err != nil {
		return response.Fail[bool](err)
	}
	return response.OK(true, "Deleted successfully")
}

func (h *LogHandler) Clear(ctx context.Context) response.Envelope[int64] {
	count, err := h.uc.ClearLogs(ctx)
	if err != nil {
		return response.Fail[int64](err)
	}
	return response.OK(count, "Logs cleared")
}
