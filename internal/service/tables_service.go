package service

import (
	"context"

	"github.com/pkg/errors"

	"blogsphere/internal/repository"
)

type TablesService interface {
	CountTables(ctx context.Context) (int, error)
}

type tablesService struct {
	db         Pinger
	tablesRepo repository.TablesRepository
}

func NewTablesService(db Pinger, tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{db: db, tablesRepo: tablesRepo}
}

// CountTables pings the database and then counts the tables in the public
// schema.
func (s *tablesService) CountTables(ctx context.Context) (int, error) {
	if err := s.db.HealthCheck(ctx); err != nil {
		return 0, errors.Wrap(err, "ping database")
	}

	return s.tablesRepo.CountTablesDB(ctx)
}
