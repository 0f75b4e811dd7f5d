package cmd

import (
	"context"
	"fmt"

	"locale-manager/core/config"
	"locale-manager/core/database"
	"locale-manager/core/localefile"
	"locale-manager/core/logger"
	"locale-manager/core/source"
	"locale-manager/core/storage"
	"locale-manager/core/usage"
	"locale-manager/feature/locales"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// application bundles the collaborators shared by the commands.
type application struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	client  storage.Client
	service *locales.Service
}

// bootstrap loads the configuration and wires the locales service. The database is only
// connected for the database source and the storage client only for the bucket backend.
func bootstrap(ctx context.Context) (*application, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	app := &application{cfg: cfg, logger: l}
	osFs := afero.NewOsFs()

	if cfg.Source.Kind == source.KindDatabase {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.db = db
		l = l.With(zap.String("database", cfg.Database.Name))
		l.Info("Connected to translations database")
	}

	if cfg.Locales.Backend == localefile.BackendBucket {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return nil, err
		}
		app.client = client
	}

	store, err := localefile.NewStore(cfg.Locales, osFs, app.client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}

	current, err := source.New(ctx, cfg.Source, source.Deps{Fs: osFs, DB: app.db})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s source: %w", cfg.Source.Kind, err)
	}

	scanner := usage.NewScanner(osFs, cfg.Usage)
	app.logger = l
	app.service = locales.NewService(store, cfg.Locales, current, scanner, l)
	return app, nil
}
