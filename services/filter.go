package services

import (
	"strings"

	"articles_api/models"
)

// ParseTagList splits a comma separated list of tag names. Names are trimmed,
// empty entries are dropped and repeated names are kept once, in first-seen
// order.
func ParseTagList(list string) []string {
	return uniqueNames(strings.Split(list, ","))
}

// uniqueNames trims names, drops empty ones and keeps the first occurrence
// of each.
func uniqueNames(names []string) []string {
	unique := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

// FilterByTags keeps the articles carrying at least one of the tags named in
// filter. Matching is exact and the input order is preserved. A filter with
// no names returns articles unchanged.
func FilterByTags(filter string, articles []models.Article) []models.Article {
	names := ParseTagList(filter)
	if len(names) == 0 {
		return articles
	}

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	filtered := make([]models.Article, 0, len(articles))
	for _, article := range articles {
		for _, tag := range article.Tags {
			if _, ok := wanted[tag.Name]; ok {
				filtered = append(filtered, article)
				break
			}
		}
	}
	return filtered
}
