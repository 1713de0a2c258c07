package usecase

import (
	"context"
	"testing"

	"github.com/posuniversal/pos-admin-service/internal/apperr"
	"github.com/posuniversal/pos-admin-service/internal/model"
	"github.com/posuniversal/pos-admin-service/internal/store"
	"github.com/posuniversal/pos-admin-service/internal/syslog"
	"github.com/posuniversal/pos-admin-service/internal/syslog/dto"
	"github.com/posuniversal/pos-admin-service/internal/syslog/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUseCase(t *testing.T) syslog.UseCase {
	t.Helper()
	db, err := store.Open(&store.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.Migrate(db))
	return NewLogUseCase(repository.NewSQLiteRepository(db), zap.NewNop())
}

func TestAddLogAssignsTimestampAndDefaultType(t *testing.T) {
	uc := newTestUseCase(t)
	entry, err := uc.AddLog(context.Background(), &dto.AddLogInput{
		PageName: "ProductList", FunctionName: "load", Message: "boom",
	})
	require.NoError(t, err)
	require.NotZero(t, entry.ID)
	require.NotEmpty(t, entry.Timestamp)
	require.Equal(t, model.LogTypeInfo, entry.Type)
}

func TestGetFilteredByTypeAndPage(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.AddLog(ctx, &dto.AddLogInput{Type: model.LogTypeError, PageName: "ProductList"})
		require.NoError(t, err)
	}
	_, err := uc.AddLog(ctx, &dto.AddLogInput{Type: model.LogTypeDebug, PageName: "Login"})
	require.NoError(t, err)

	items, count, err := uc.GetFiltered(ctx, &dto.LogFilters{
		Type: model.LogTypeError, PageName: "product", Page: 1, PageSize: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 3, count)
	require.Len(t, items, 2)
}

func TestGetLogNotFound(t *testing.T) {
	uc := newTestUseCase(t)
	_, err := uc.GetLog(context.Background(), 5)
	require.Equal(t, 404, apperr.StatusOf(err))
}

func TestClearLogs(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := uc.AddLog(ctx, &dto.AddLogInput{Type: model.LogTypeWarning})
		require.NoError(t, err)
	}

	removed, err := uc.ClearLogs(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(4), removed)

	_, count, err := uc.GetFiltered(ctx, &dto.LogFilters{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Zero(t, count)
}
