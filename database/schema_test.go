package database

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"articles_api/config"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := Open(context.Background(), sqlite.Open(dsn), config.Database{
		ConnectAttempts: 1,
		MaxOpenConns:    1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestBootstrapper_EnsureSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, NewBootstrapper(db).EnsureSchema(ctx))
	first, err := db.Migrator().GetTables()
	require.NoError(t, err)

	// a second bootstrapper runs the migration again against existing tables
	require.NoError(t, NewBootstrapper(db).EnsureSchema(ctx))
	second, err := db.Migrator().GetTables()
	require.NoError(t, err)

	require.ElementsMatch(t, first, second)
	for _, table := range []string{"articles", "tags", "article_tags"} {
		require.True(t, db.Migrator().HasTable(table), table)
	}
	require.True(t, db.Migrator().HasColumn("articles", "updated_at"))
	require.True(t, db.Migrator().HasColumn("article_tags", "tag_id"))
}

func TestBootstrapper_ConcurrentCallers(t *testing.T) {
	db := openTestDB(t)
	b := NewBootstrapper(db)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- b.EnsureSchema(context.Background())
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.True(t, db.Migrator().HasTable("article_tags"))
}

func TestBootstrapper_KeepsExistingRows(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewBootstrapper(db).EnsureSchema(ctx))
	require.NoError(t, db.Exec("INSERT INTO tags (name, created_at) VALUES (?, CURRENT_TIMESTAMP)", "go").Error)

	require.NoError(t, NewBootstrapper(db).EnsureSchema(ctx))

	var count int64
	require.NoError(t, db.Table("tags").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestPing(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Ping(context.Background(), db))
}
