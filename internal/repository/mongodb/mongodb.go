package mongodb

import (
	"context"
	"embed"
	"errors"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratemongo "github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

//go:embed migrations/*.json
var migrationsFS embed.FS

const connectTimeout = 10 * time.Second

// DB is shared mongodb database handle
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

// New connects to mongodb and pings the server
func New(ctx context.Context, uri, database string) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return &DB{
		client:   client,
		database: client.Database(database),
	}, nil
}

// Collection returns named collection of the database
func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// Migrate applies embedded migrations (index definitions)
func (db *DB) Migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	driver, err := migratemongo.WithInstance(db.client, &migratemongo.Config{
		DatabaseName: db.database.Name(),
	})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, db.database.Name(), driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Ping checks the server is reachable
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the server
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
