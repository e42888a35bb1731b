package bootstrap

import (
	"context"
	"log/slog"

	"firebase.google.com/go/v4/auth"
	"gorm.io/gorm"

	"github.com/GregMSThompson/gatabank/internal/config"
	"github.com/GregMSThompson/gatabank/pkg/logger"
)

type Bootstrap struct {
	Log      *slog.Logger
	DB       *gorm.DB
	Firebase *auth.Client // nil unless AUTH_ENABLED
}

// Run builds the process-wide dependencies. Log is always set, even when
// an error is returned, so callers can report the failure.
func Run(ctx context.Context, cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)
	bs.Log = logger.New(cfg.LogLevel, logger.ForFormat(cfg.LogFormat))

	if cfg.DB.PasswordSecret != "" {
		cfg.DB.Password, err = ReadSecret(ctx, cfg.ProjectID, cfg.DB.PasswordSecret)
		if err != nil {
			return bs, err
		}
		bs.Log.Debug("database password loaded from secret manager")
	}

	bs.DB, err = OpenDatabase(cfg.DB)
	if err != nil {
		return bs, err
	}
	bs.Log.Info("database connected", "driver", cfg.DB.Driver)

	if cfg.AuthEnabled {
		bs.Firebase, err = InitFirebase(ctx, cfg.ProjectID)
		if err != nil {
			return bs, err
		}
	}
	return bs, nil
}

func (b *Bootstrap) Close() {
	if b.DB == nil {
		return
	}
	if sqlDB, err := b.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			b.Log.Error("failed to close database", "error", err)
		}
	}
}
