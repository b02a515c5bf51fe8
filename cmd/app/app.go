package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/muhu-travel/backoffice-api/internal/api"
	"github.com/muhu-travel/backoffice-api/internal/config"
	"github.com/muhu-travel/backoffice-api/internal/db"
	"github.com/muhu-travel/backoffice-api/internal/logger"
	"github.com/muhu-travel/backoffice-api/internal/repository/dao"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.Log.Level); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer zap.L().Sync()

	err = config.Watch(configPath, func(reloaded *config.AppConfig) {
		if err := logger.SetLevel(reloaded.Log.Level); err != nil {
			zap.L().Warn("ignoring log level", zap.String("level", reloaded.Log.Level), zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to watch config -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate database -> %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if conf.Seed {
		if err = api.NewSeeder(postgresDB).Run(ctx); err != nil {
			return fmt.Errorf("failed to seed database -> %w", err)
		}
	}

	s := api.NewServer(conf, postgresDB)
	go s.Feed.Run(ctx)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
