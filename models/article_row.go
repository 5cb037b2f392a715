package models

import (
	"time"
)

// ArticleRow is one row of the articles LEFT JOIN tags query. TagID and
// TagName are nil for an article without tags.
type ArticleRow struct {
	ID        uint
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
	TagID     *uint
	TagName   *string
}
