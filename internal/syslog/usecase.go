package syslog

import (
	"context"

	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/syslog/dto"
)

type UseCase interface {
	AddLog(ctx context.Context, input *dto.AddLogInput) (*model.SystemLog, error)
	GetLog(ctx context.Context, id int64) (*model.SystemLog, error)
	GetFiltered(ctx context.Context, f *dto.LogFilters) ([]model.SystemLog, int, error)
	DeleteLog(ctx context.Context, id int64) error
	ClearLogs(ctx context.Context) (int64, error)
}
