package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/posuniversal/pos-admin-service/config"
	"github.com/posuniversal/pos-admin-service/internal/store"
	"github.com/posuniversal/pos-admin-service/pkg/logger"
	"go.uber.org/zap"

	attrH "github.com/posuniversal/pos-admin-service/internal/masterattr/handler"
	attrRepoPkg "github.com/posuniversal/pos-admin-service/internal/masterattr/repository"
	attrUCPkg "github.com/posuniversal/pos-admin-service/internal/masterattr/usecase"

	prodH "github.com/posuniversal/pos-admin-service/internal/product/handler"
	prodRepoPkg "github.com/posuniversal/pos-admin-service/internal/product/repository"
	prodUCPkg "github.com/posuniversal/pos-admin-service/internal/product/usecase"

	logH "github.com/posuniversal/pos-admin-service/internal/syslog/handler"
	logRepoPkg "github.com/posuniversal/pos-admin-service/internal/syslog/repository"
	logUCPkg "github.com/posuniversal/pos-admin-service/internal/syslog/usecase"

	userH "github.com/posuniversal/pos-admin-service/internal/user/handler"
	userRepoPkg "github.com/posuniversal/pos-admin-service/internal/user/repository"
	userUCPkg "github.com/posuniversal/pos-admin-service/internal/user/usecase"
)

// app holds the wired application: one store handle, one logger, and the
// handler for each admin screen. Construction order follows config →
// logger → store → repositories → usecases → handlers.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *sqlx.DB

	products   *prodH.ProductHandler
	attributes *attrH.AttributeHandler
	users      *userH.UserHandler
	logs       *logH.LogHandler
}

func newApp() (*app, error) {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	logConfig := &logger.ZapLoggerConfig{
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger, err := logger.NewZapLogger(logConfig)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	db, err := store.Open(&store.Config{
		Path:          cfg.SQLite.Path,
		BusyTimeoutMS: cfg.SQLite.BusyTimeoutMS,
		ForeignKeys:   cfg.SQLite.ForeignKeys,
	})
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	appLogger.Debug("database ready", zap.String("path", cfg.SQLite.Path))

	prodRepo := prodRepoPkg.NewSQLiteRepository(db)
	attrRowRepo := prodRepoPkg.NewAttributeSQLiteRepository(db)
	imageRepo := prodRepoPkg.NewImageSQLiteRepository(db)
	descRepo := prodRepoPkg.NewDescriptionSQLiteRepository(db)
	keywordRepo := prodRepoPkg.NewKeywordSQLiteRepository(db)
	attrRepo := attrRepoPkg.NewSQLiteRepository(db)
	userRepo := userRepoPkg.NewSQLiteRepository(db)
	logRepo := logRepoPkg.NewSQLiteRepository(db)

	prodUC := prodUCPkg.NewProductUseCase(prodRepo, attrRowRepo, imageRepo, descRepo, keywordRepo, appLogger)
	attrUC := attrUCPkg.NewAttributeUseCase(attrRepo, appLogger)
	userUC := userUCPkg.NewUserUseCase(userRepo,
		time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute,
		cfg.Auth.BcryptCost, appLogger)
	logUC := logUCPkg.NewLogUseCase(logRepo, appLogger)

	return &app{
		cfg:        cfg,
		logger:     appLogger,
		db:         db,
		products:   prodH.NewProductHandler(prodUC, appLogger),
		attributes: attrH.NewAttributeHandler(attrUC, appLogger),
		users:      userH.NewUserHandler(userUC, appLogger),
		logs:       logH.NewLogHandler(logUC, appLogger),
	}, nil
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// printJSON writes a response envelope to stdout for the operator.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
