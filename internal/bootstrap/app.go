package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"usermgmt-api/internal/config"
	"usermgmt-api/internal/logger"
	"usermgmt-api/internal/platform/database"
	rabbitmqClient "usermgmt-api/internal/platform/rabbitmq"
	"usermgmt-api/internal/repository"
)

// App carries the process-wide handles built once at startup.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	// Events is nil when RABBITMQ_URL is not configured.
	Events *rabbitmqClient.UserEventPublisher
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	db, err := database.Open(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := repository.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
		if err != nil {
			_ = app.Close()
			return nil, err
		}
		app.Events = rabbitmqClient.NewUserEventPublisher(conn, cfg.RabbitMQ.Exchange)
		log.Info().Str("exchange", cfg.RabbitMQ.Exchange).Msg("user events enabled")
	}

	return app, nil
}

func (a *App) Close() error {
	var errs []error
	if a.Events != nil {
		if err := a.Events.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close rabbitmq failed: %w", err))
		}
	}
	if a.DB != nil {
		if err := database.Close(a.DB); err != nil {
			errs = append(errs, fmt.Errorf("close database failed: %w", err))
		}
	}
	return errors.Join(errs...)
}
