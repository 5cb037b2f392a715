package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"gorm.io/gorm"

	"articles_api/models"
)

// Bootstrapper creates the articles, tags and article_tags tables when they
// do not exist yet. It never drops or rewrites existing tables.
type Bootstrapper struct {
	db *gorm.DB

	mu   sync.Mutex
	done bool
}

func NewBootstrapper(db *gorm.DB) *Bootstrapper {
	return &Bootstrapper{db: db}
}

// EnsureSchema is safe to call from many goroutines and any number of times.
// Once a run succeeds later calls return immediately; a failed run is
// retried by the next caller.
func (b *Bootstrapper) EnsureSchema(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done {
		return nil
	}

	db := b.db.WithContext(ctx)
	if err := db.SetupJoinTable(&models.Article{}, "Tags", &models.ArticleTag{}); err != nil {
		return fmt.Errorf("failed to set up article_tags join table: %w", err)
	}
	if err := db.AutoMigrate(&models.Article{}, &models.Tag{}, &models.ArticleTag{}); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	b.done = true
	slog.DebugContext(ctx, "database schema ensured")
	return nil
}
