// Package integration runs repository and API tests against a real MongoDB
// started with testcontainers.
package integration

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/migration"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/migrations"
)

const mongoImage = "mongo:7"

var (
	// One container per package run; every test gets its own database
	sharedContainer   testcontainers.Container
	sharedContainerMu sync.Mutex
	sharedURI         string
)

// TestDB is a freshly migrated database on the shared container
type TestDB struct {
	*persistence.Database
	Name string
	URI  string
	t    *testing.T
}

// NewTestDB creates an isolated, migrated database.
// The database is dropped when the test finishes.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	uri := startMongo(t)
	name := "store_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := persistence.NewDatabase(ctx, &config.DatabaseConfig{
		URI:                    uri,
		Name:                   name,
		MaxPoolSize:            10,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 10 * time.Second,
	}, nil)
	require.NoError(t, err, "Failed to connect to MongoDB")

	m, err := migration.New(db.Client, name, migrations.FS, zap.NewNop())
	require.NoError(t, err, "Failed to create migrator")
	require.NoError(t, m.Up(), "Failed to run migrations")
	require.NoError(t, m.Close())

	tdb := &TestDB{Database: db, Name: name, URI: uri, t: t}
	t.Cleanup(tdb.Close)
	return tdb
}

// Close drops the database and disconnects
func (tdb *TestDB) Close() {
	ctx := context.Background()
	if err := tdb.DB.Drop(ctx); err != nil {
		tdb.t.Logf("Warning: Failed to drop database %s: %v", tdb.Name, err)
	}
	if err := tdb.Database.Close(ctx); err != nil {
		tdb.t.Logf("Warning: Failed to disconnect: %v", err)
	}
}

// Repositories wires the MongoDB repositories over this database
func (tdb *TestDB) Repositories() *persistence.Repositories {
	return persistence.NewRepositories(tdb.DB)
}

// IndexNames lists the index names on a collection
func (tdb *TestDB) IndexNames(collection string) []string {
	tdb.t.Helper()

	ctx := context.Background()
	cur, err := tdb.DB.Collection(collection).Indexes().List(ctx)
	require.NoError(tdb.t, err)

	var specs []struct {
		Name string `bson:"name"`
	}
	require.NoError(tdb.t, cur.All(ctx, &specs))

	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name)
	}
	return names
}

func startMongo(t *testing.T) string {
	t.Helper()

	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer != nil {
		return sharedURI
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mongoImage,
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start MongoDB container")

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err)

	sharedContainer = container
	sharedURI = fmt.Sprintf("mongodb://%s:%s/?directConnection=true", host, port.Port())
	return sharedURI
}

// CleanupSharedContainer terminates the shared container; call from TestMain
func CleanupSharedContainer() {
	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer != nil {
		_ = sharedContainer.Terminate(context.Background())
		sharedContainer = nil
		sharedURI = ""
	}
}
