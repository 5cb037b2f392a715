package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"articles_api/models"
)

// TagResolution splits requested tag names into the ones already stored and
// the ones that still need a row. All slices follow the request order.
type TagResolution struct {
	ExistingIDs   []uint
	ExistingNames []string
	NewNames      []string
}

// ResolveTags looks up names with one bound IN query on db, which is normally
// the transaction of the calling operation. names must already be
// de-duplicated.
func ResolveTags(ctx context.Context, db *gorm.DB, names []string) (TagResolution, error) {
	var res TagResolution
	if len(names) == 0 {
		return res, nil
	}

	var found []models.Tag
	if err := db.WithContext(ctx).Where("name IN ?", names).Find(&found).Error; err != nil {
		return res, fmt.Errorf("failed to look up tags: %w", err)
	}

	ids := make(map[string]uint, len(found))
	for _, tag := range found {
		ids[tag.Name] = tag.ID
	}
	for _, name := range names {
		if id, ok := ids[name]; ok {
			res.ExistingIDs = append(res.ExistingIDs, id)
			res.ExistingNames = append(res.ExistingNames, name)
			continue
		}
		res.NewNames = append(res.NewNames, name)
	}
	return res, nil
}
