package database

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"blogsphere/internal/config"
)

type MethodsDB interface {
	CloseDB() error
	HealthCheck(ctx context.Context) error
	GetDB() *DB
}

type DB struct {
	*sqlx.DB
}

// ConnectDB opens the pool for the application database and verifies it with
// a ping. It never touches the schema; see ResetSchema for that.
func ConnectDB(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*DB, error) {
	return Connect(ctx, cfg.DB, cfg.DB.DbNAME, log)
}

// Connect opens a pool against dbName on the configured server.
func Connect(ctx context.Context, cfg config.DB, dbName string, log logrus.FieldLogger) (*DB, error) {
	log.WithFields(logrus.Fields{
		"host":   cfg.DbHOST,
		"dbname": dbName,
	}).Info("connecting to database")

	db, err := sqlx.Open("postgres", cfg.DSN(dbName))
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	dbStruct := &DB{db}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := dbStruct.HealthCheck(pingCtx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	log.WithField("dbname", dbName).Info("connected to PostgreSQL")
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return errors.New("database connection is not initialized")
	}

	return db.PingContext(ctx)
}

func (db *DB) GetDB() *DB {
	return db
}
