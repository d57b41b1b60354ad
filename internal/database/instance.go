package database

import (
	"context"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	birthdayRepo contract.BirthdayRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.birthdayRepo = newBirthdayRepo(i.db.conn)
}

// Birthday returns the birthday repository
func (i *instance) Birthday() contract.BirthdayRepo {
	return i.birthdayRepo
}

func (i *instance) Ping(ctx context.Context) error {
	if err := i.db.Ping(ctx); err != nil {
		return domain.StorageError("ping database", err)
	}
	return nil
}

func (i *instance) Close() error {
	return i.db.Close()
}
