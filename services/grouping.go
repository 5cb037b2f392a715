package services

import (
	"articles_api/models"
)

// GroupArticleRows folds the rows of the articles/tags LEFT JOIN into one
// Article per id. Articles and their tags keep the order in which they first
// appear in rows. An article whose only row has no tag gets an empty, non-nil
// Tags slice.
func GroupArticleRows(rows []models.ArticleRow) []models.Article {
	articles := make([]models.Article, 0)
	index := make(map[uint]int)
	seenTags := make(map[uint]map[uint]struct{})

	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			i = len(articles)
			index[row.ID] = i
			seenTags[row.ID] = make(map[uint]struct{})
			articles = append(articles, models.Article{
				ID:        row.ID,
				Text:      row.Text,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
				Tags:      []models.Tag{},
			})
		}

		if row.TagID == nil {
			continue
		}
		if _, dup := seenTags[row.ID][*row.TagID]; dup {
			continue
		}
		seenTags[row.ID][*row.TagID] = struct{}{}

		tag := models.Tag{ID: *row.TagID}
		if row.TagName != nil {
			tag.Name = *row.TagName
		}
		articles[i].Tags = append(articles[i].Tags, tag)
	}
	return articles
}
