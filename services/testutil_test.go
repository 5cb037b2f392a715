package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"articles_api/config"
	"articles_api/database"
	"articles_api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := database.Open(context.Background(), sqlite.Open(dsn), config.Database{
		ConnectAttempts: 1,
		MaxOpenConns:    1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func newTestService(t *testing.T) (*ArticleService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewArticleService(db, database.NewBootstrapper(db)), db
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}
