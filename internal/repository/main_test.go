//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Askwho/mounjaro-hub/internal/testutil"
)

// TestMain sets up a shared MongoDB container for all integration tests
// in this package. A single container serves every test, with per-test
// databases for isolation.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDBFromSharedContainer connects to the shared container using a
// database name derived from the test name.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	dbName := testutil.SanitizeDBName(t.Name())
	uri := testutil.GetSharedContainerURI()
	db, err := NewMongoDB(uri, dbName)
	require.NoError(t, err)
	return db
}
