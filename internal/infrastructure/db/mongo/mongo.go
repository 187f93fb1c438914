package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout          = 10 * time.Second
	indexTimeout            = 30 * time.Second
	defaultMaxPoolSize      = 10
	defaultSelectionTimeout = 5 * time.Second
	defaultSocketTimeout    = 45 * time.Second
)

// Config captures the settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration

	MaxPoolSize            uint64
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
}

func (c Config) clientOptions() *options.ClientOptions {
	pool := c.MaxPoolSize
	if pool == 0 {
		pool = defaultMaxPoolSize
	}
	selection := c.ServerSelectionTimeout
	if selection <= 0 {
		selection = defaultSelectionTimeout
	}
	socket := c.SocketTimeout
	if socket <= 0 {
		socket = defaultSocketTimeout
	}
	return options.Client().
		ApplyURI(c.URI).
		SetMaxPoolSize(pool).
		SetServerSelectionTimeout(selection).
		SetSocketTimeout(socket)
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, cfg.clientOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the indexes of every collection used by the service.
func EnsureIndexes(ctx context.Context, entries *EntryRepository, users *UserRepository) error {
	if err := entries.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("food entry indexes: %w", err)
	}
	if err := users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	return nil
}
