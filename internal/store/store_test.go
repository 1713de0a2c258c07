package store_test

import (
	"testing"

	"github.com/posuniversal/pos-admin-service/internal/store"
	"github.com/stretchr/testify/require"
)

func TestOpenInMemory(t *testing.T) {
	db, err := store.Open(&store.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var one int
	require.NoError(t, db.Get(&one, "SELECT 1"))
	require.Equal(t, 1, one)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := store.Open(&store.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, store.Migrate(db))
	require.NoError(t, store.Migrate(db))

	// All collections exist after migration.
	tables := []string{
		"products", "product_attributes", "product_images",
		"product_descriptions", "product_keywords",
		"master_product_attributes", "users", "refresh_tokens", "system_logs",
	}
	for _, name := range tables {
		var count int
		err := db.Get(&count, "SELECT COUNT(*) FROM "+name)
		require.NoError(t, err, "table %s", name)
		require.Zero(t, count)
	}
}

func TestMigratePreservesExistingRows(t *testing.T) {
	db, err := store.Open(&store.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.Migrate(db))

	_, err = db.Exec(`INSERT INTO products (code, sku, name) VALUES ('MMM001', 'M3', 'Mighty Mouse')`)
	require.NoError(t, err)

	require.NoError(t, store.Migrate(db))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM products"))
	require.Equal(t, 1, count)
}
