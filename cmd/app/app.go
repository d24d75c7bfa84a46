package app

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"blogsphere/internal/config"
	"blogsphere/internal/database"
	handlers "blogsphere/internal/handler"
	"blogsphere/internal/middleware"
	"blogsphere/internal/repository"
	"blogsphere/internal/service"
	"blogsphere/internal/storage"
)

// App opens the database pool, connects image storage when enabled, and
// wires repositories, services and handlers. The caller owns the returned
// pool and must close it.
func App(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*database.DB, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(ctx, cfg, log)
	if err != nil {
		return nil, nil, errors.Wrap(err, "connect to database")
	}

	// connection MinIO
	var store storage.Storage
	if cfg.MinIO.Enabled {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO, log)
		if err != nil {
			db.CloseDB()
			return nil, nil, errors.Wrap(err, "connect to MinIO")
		}
		store = minioClient
	} else {
		log.Info("MINIO_ENABLED is false, image uploads are disabled")
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, db, cfg, store)

	return db, services, nil
}

// Handler builds the full HTTP handler: routes wrapped in the middleware
// chain.
func Handler(services *service.Service, cfg *config.Config, log *logrus.Logger) http.Handler {
	h := handlers.NewHandlers(services, cfg, log)

	return middleware.Chain(
		handlers.NewRouter(h),
		middleware.TimeoutMiddleware(cfg.RequestTimeout),
		middleware.RecoverMiddleware(log),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware(log),
		middleware.RequestIDMiddleware,
	)
}
