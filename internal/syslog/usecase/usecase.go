package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/posuniversal/pos-admin-service/internal/apperr"
	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/syslog"
	"github.com/posuniversal/pos-admin-service/internal/syslog/dto"
	"go.uber.org/zap"
)

type logUseCase struct {
	repo   syslog.Repository
	logger *zap.Logger
}

func NewLogUseCase(repo syslog.Repository, log *zap.Logger) syslog.UseCase {
	return &logUseCase{repo: repo, logger: log}
}

func (uc *logUseCase) AddLog(ctx context.Context, input *dto.AddLogInput) (*model.SystemLog, error) {
	logType := strings.TrimSpace(input.Type)
	if logType == "" {
		logType = model.LogTypeInfo
	}

	entry := &model.SystemLog{
		Type:         logType,
		PageName:     strings.TrimSpace(input.PageName),
		FunctionName: strings.TrimSpace(input.FunctionName),
		Data:         strings.TrimSpace(input.Data),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Message:      strings.TrimSpace(input.Message),
		StackTrace:   strings.TrimSpace(input.StackTrace),
	}

	id, err := uc.repo.Add(ctx, entry)
	if err != nil {
		return nil, apperr.Store("failed to add log entry", err)
	}
	entry.ID = id
	return entry, nil
}

func (uc *logUseCase) GetLog(ctx context.Context, id int64) (*model.SystemLog, error) {
	entry, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store("failed to load log entry", err)
	}
	if entry == nil {
		return nil, apperr.NotFound("log entry not found")
	}
	return entry, nil
}

func (uc *logUseCase) GetFiltered(ctx context.Context, f *dto.LogFilters) ([]model.SystemLog, int, error) {
	items, count, err := uc.repo.FindFiltered(ctx, f)
	if err != nil {
		return nil, 0, apperr.Store("failed to search logs", err)
	}
	return items, count, nil
}

func (uc *logUseCase) DeleteLog(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperr.Store("failed to delete log entry", err)
	}
	return nil
}

func (uc *logUseCase) ClearLogs(ctx context.Context) (int64, error) {
	count, err := uc.repo.Clear(ctx)
	if err != nil {
		return 0, apperr.Store("failed to clear logs", err)
	}
	uc.logger.Info("system logs cleared", zap.Int64("removed", count))
	return count, nil
}
