package models

// ArticleTag is one membership edge between an article and a tag.
type ArticleTag struct {
	ArticleID uint `json:"article_id" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
}

func (ArticleTag) TableName() string {
	return "article_tags"
}
