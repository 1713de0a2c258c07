package syslog

import (
	"context"

	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/syslog/dto"
)

type Repository interface {
	Add(ctx context.Context, entry *model.SystemLog) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.SystemLog, error)
	FindFiltered(ctx context.Context, f *dto.LogFilters) ([]model.SystemLog, int, error)
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) (int64, error)
}
