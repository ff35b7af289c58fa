// Package pgtest starts a throwaway PostgreSQL container for repository suites.
package pgtest

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database is a running container with an open GORM connection.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and migrates models.
func Start(ctx context.Context, models ...any) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			_ = container.Terminate(ctx)
			return nil, err
		}
	}

	return &Database{Container: container, DB: db}, nil
}

// ConnectionString returns the DSN of the container.
func (d *Database) ConnectionString(ctx context.Context) (string, error) {
	return d.Container.ConnectionString(ctx, "sslmode=disable")
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
