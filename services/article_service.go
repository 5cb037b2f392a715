package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"articles_api/database"
	"articles_api/metrics"
	"articles_api/models"
)

var (
	ErrEmptyText = errors.New("article text must not be empty")
	ErrNoTags    = errors.New("at least one tag is required")
)

const articleRowColumns = "articles.id AS id, articles.text AS text, " +
	"articles.created_at AS created_at, articles.updated_at AS updated_at, " +
	"tags.id AS tag_id, tags.name AS tag_name"

// ArticleService stores articles and their tags. Every method takes the
// request context and holds a pooled connection only for the duration of
// the call.
type ArticleService struct {
	db     *gorm.DB
	schema *database.Bootstrapper
}

func NewArticleService(db *gorm.DB, schema *database.Bootstrapper) *ArticleService {
	return &ArticleService{db: db, schema: schema}
}

// CreateArticle inserts the article, any tags that do not exist yet and one
// article_tags edge per distinct tag name, all in a single transaction.
// Repeated names in tagNames are linked once.
func (s *ArticleService) CreateArticle(ctx context.Context, text string, tagNames []string) (*models.Article, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	names := uniqueNames(tagNames)
	if len(names) == 0 {
		return nil, ErrNoTags
	}

	if err := s.schema.EnsureSchema(ctx); err != nil {
		metrics.RecordStoreError("ensure_schema")
		return nil, err
	}

	var (
		article models.Article
		newTags []models.Tag
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		article = models.Article{Text: text}
		if err := tx.Omit(clause.Associations).Create(&article).Error; err != nil {
			return fmt.Errorf("failed to insert article: %w", err)
		}

		resolved, err := ResolveTags(ctx, tx, names)
		if err != nil {
			return err
		}

		ids := make(map[string]uint, len(names))
		for i, name := range resolved.ExistingNames {
			ids[name] = resolved.ExistingIDs[i]
		}

		if len(resolved.NewNames) > 0 {
			newTags = make([]models.Tag, 0, len(resolved.NewNames))
			for _, name := range resolved.NewNames {
				newTags = append(newTags, models.Tag{Name: name})
			}
			// ids come back from the insert itself
			if err := tx.Create(&newTags).Error; err != nil {
				return fmt.Errorf("failed to insert tags: %w", err)
			}
			for _, tag := range newTags {
				ids[tag.Name] = tag.ID
			}
		}

		edges := make([]models.ArticleTag, 0, len(names))
		article.Tags = make([]models.Tag, 0, len(names))
		for _, name := range names {
			edges = append(edges, models.ArticleTag{ArticleID: article.ID, TagID: ids[name]})
			article.Tags = append(article.Tags, models.Tag{ID: ids[name], Name: name})
		}
		if err := tx.Create(&edges).Error; err != nil {
			return fmt.Errorf("failed to link tags: %w", err)
		}
		return nil
	})
	if err != nil {
		metrics.RecordStoreError("create")
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	metrics.RecordArticleCreated(len(newTags))
	return &article, nil
}

// ListArticles returns every article with its tags in id order. A non-blank
// tagFilter keeps only articles carrying at least one of the listed tags.
func (s *ArticleService) ListArticles(ctx context.Context, tagFilter string) ([]models.Article, error) {
	if err := s.schema.EnsureSchema(ctx); err != nil {
		metrics.RecordStoreError("ensure_schema")
		return nil, err
	}

	rows, err := s.articleRows(ctx, nil)
	if err != nil {
		metrics.RecordStoreError("list")
		return nil, err
	}
	return FilterByTags(tagFilter, GroupArticleRows(rows)), nil
}

// GetArticle returns nil without an error when no article has the id.
func (s *ArticleService) GetArticle(ctx context.Context, id uint) (*models.Article, error) {
	if err := s.schema.EnsureSchema(ctx); err != nil {
		metrics.RecordStoreError("ensure_schema")
		return nil, err
	}

	rows, err := s.articleRows(ctx, &id)
	if err != nil {
		metrics.RecordStoreError("get")
		return nil, err
	}
	articles := GroupArticleRows(rows)
	if len(articles) == 0 {
		return nil, nil
	}
	return &articles[0], nil
}

// UpdateArticleText replaces the text of an article and refreshes
// updated_at. Tags are left alone. It returns nil without an error when no
// article has the id.
func (s *ArticleService) UpdateArticleText(ctx context.Context, id uint, text string) (*models.Article, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if err := s.schema.EnsureSchema(ctx); err != nil {
		metrics.RecordStoreError("ensure_schema")
		return nil, err
	}

	result := s.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		Updates(map[string]any{"text": text, "updated_at": time.Now()})
	if result.Error != nil {
		metrics.RecordStoreError("update")
		return nil, fmt.Errorf("failed to update article %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return s.GetArticle(ctx, id)
}

func (s *ArticleService) articleRows(ctx context.Context, id *uint) ([]models.ArticleRow, error) {
	query := s.db.WithContext(ctx).
		Table("articles").
		Select(articleRowColumns).
		Joins("LEFT JOIN article_tags ON article_tags.article_id = articles.id").
		Joins("LEFT JOIN tags ON tags.id = article_tags.tag_id")
	if id != nil {
		query = query.Where("articles.id = ?", *id)
	}

	var rows []models.ArticleRow
	if err := query.Order("articles.id ASC").Order("tags.id ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	return rows, nil
}
