package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpin "foodhub/internal/adapters/in/http"
	"foodhub/internal/adapters/out/orderrepo"
	"foodhub/internal/adapters/out/storage/memory"
	mongostorage "foodhub/internal/adapters/out/storage/mongo"
	pgstorage "foodhub/internal/adapters/out/storage/postgres"
	"foodhub/internal/core/application/usecases/commands"
	"foodhub/internal/core/application/usecases/queries"
	"foodhub/internal/core/domain/model/menu"
	"foodhub/internal/core/ports"
	"foodhub/internal/jobs"
	"foodhub/internal/pkg/keylock"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires the storage backend, application handlers, jobs and
// the HTTP server from configuration. It owns the backend connection and
// releases it in Close.
type CompositionRoot struct {
	repo    ports.OrderRepository
	locks   *keylock.KeyedMutex
	catalog *menu.Catalog
	clock   ports.Clock
	logger  *slog.Logger

	environment string
	mongoClient *mongo.Client
}

// NewCompositionRoot builds the object graph for the configured storage
// backend. An unknown backend name is an error rather than a silent
// fallback.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		locks:       keylock.NewKeyedMutex(),
		catalog:     menu.NewCatalog(),
		clock:       time.Now,
		logger:      logger,
		environment: config.Environment,
	}

	backend, err := root.buildBackend(config)
	if err != nil {
		return nil, err
	}
	root.repo = orderrepo.NewRepository(backend)
	return root, nil
}

func (c *CompositionRoot) buildBackend(config Config) (ports.Backend, error) {
	switch config.StorageBackend {
	case "", "memory":
		return memory.NewBackend(), nil

	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode,
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return pgstorage.NewBackend(db)

	case "mongo":
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(config.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		c.mongoClient = client
		return mongostorage.NewBackend(client.Database(config.MongoDatabase)), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.StorageBackend)
	}
}

// Close releases backend connections.
func (c *CompositionRoot) Close(ctx context.Context) error {
	if c.mongoClient != nil {
		return c.mongoClient.Disconnect(ctx)
	}
	return nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.repo, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.repo, c.locks, c.clock)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.repo, c.locks)
}

func (c *CompositionRoot) CreateReconcileOrdersCommandHandler() commands.ReconcileOrdersCommandHandler {
	return commands.NewReconcileOrdersCommandHandler(c.repo, c.locks, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.repo, c.locks, c.clock)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.repo, c.locks, c.clock)
}

func (c *CompositionRoot) CreateGetStatusUpdatesQueryHandler() queries.GetStatusUpdatesQueryHandler {
	return queries.NewGetStatusUpdatesQueryHandler(c.repo, c.locks, c.clock)
}

// CreateHTTPServer assembles the REST adapter with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetStatusUpdatesQueryHandler(),
		c.catalog,
		c.environment,
		c.clock,
	)
}

// CreateJobManager assembles the background job scheduler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileOrdersCommandHandler(), c.logger)
}
