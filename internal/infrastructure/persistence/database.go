package persistence

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/infrastructure/config"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	CollUsers             = "users"
	CollCategories        = "categories"
	CollSubcategories     = "subcategories"
	CollBrands            = "brands"
	CollSizes             = "sizes"
	CollColors            = "colors"
	CollProducts          = "products"
	CollReviews           = "reviews"
	CollCart              = "cart"
	CollOrders            = "orders"
	CollCoupons           = "coupons"
	CollPOSCart           = "posCart"
	CollPOSOrders         = "posOrders"
	CollExpenseCategories = "expenseCategories"
	CollExpenses          = "expenses"
)

// Database holds the MongoDB client and the application database handle
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewDatabase connects to MongoDB and verifies the connection with a ping.
// monitor may be nil.
func NewDatabase(ctx context.Context, cfg *config.DatabaseConfig, monitor *event.CommandMonitor) (*Database, error) {
	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	if monitor != nil {
		opts.SetMonitor(monitor)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	db := &Database{Client: client, DB: client.Database(cfg.Name)}
	if err := db.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return db, nil
}

// Ping checks that the primary is reachable
func (d *Database) Ping(ctx context.Context) error {
	return d.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (d *Database) Close(ctx context.Context) error {
	if d.Client == nil {
		return nil
	}
	return d.Client.Disconnect(ctx)
}
