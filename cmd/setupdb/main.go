// Command setupdb creates the application database if it is missing and
// rebuilds every table from scratch. All existing data is lost, so it refuses
// to run without -confirm.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"blogsphere/internal/config"
	"blogsphere/internal/database"
	"blogsphere/internal/logger"
)

func main() {
	confirm := flag.Bool("confirm", false, "drop and recreate all tables")
	timeout := flag.Duration("timeout", time.Minute, "overall time limit")
	flag.Parse()

	cfg := config.LoadConfig()
	log := logger.New(cfg.Log)

	if !*confirm {
		log.Error("setupdb drops every table; rerun with -confirm to proceed")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("database setup failed")
	}

	log.WithField("database", cfg.DB.DbNAME).Info("database setup complete")
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	admin, err := database.Connect(ctx, cfg.DB, cfg.DB.DbADMINNAME, log)
	if err != nil {
		return err
	}

	created, err := database.EnsureDatabase(ctx, admin.DB, cfg.DB.DbNAME)
	admin.CloseDB()
	if err != nil {
		return err
	}
	if created {
		log.WithField("database", cfg.DB.DbNAME).Info("database created")
	} else {
		log.WithField("database", cfg.DB.DbNAME).Info("database already exists")
	}

	db, err := database.ConnectDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.CloseDB()

	log.Info("applying schema")
	return database.ResetSchema(ctx, db.DB)
}
