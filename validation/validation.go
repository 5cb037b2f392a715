// Package validation checks article request payloads independently of the
// HTTP layer. Each function returns every problem found, in field order;
// callers usually report only the first one.
package validation

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type CreateArticle struct {
	Article string `json:"article" validate:"required,min=5"`
	Tags    string `json:"tags" validate:"required"`
}

type UpdateArticle struct {
	Article string `json:"article" validate:"required"`
}

// messages maps Struct.Field.tag to the text shown to API clients.
var messages = map[string]string{
	"CreateArticle.Article.required": "Article is compulsory!",
	"CreateArticle.Article.min":      "Article must be greater than 5 characters",
	"CreateArticle.Tags.required":    "Tags are compulsory!",
	"UpdateArticle.Article.required": "No article to update! Enter the new article to update with!",
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateCreate trims both fields of req in place and validates them.
func ValidateCreate(req *CreateArticle) []string {
	req.Article = strings.TrimSpace(req.Article)
	req.Tags = strings.TrimSpace(req.Tags)
	return check(req)
}

// ValidateUpdate trims req.Article in place and validates it.
func ValidateUpdate(req *UpdateArticle) []string {
	req.Article = strings.TrimSpace(req.Article)
	return check(req)
}

// First returns the first message or "" when there is none.
func First(msgs []string) string {
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0]
}

func check(req any) []string {
	err := instance().Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fe.StructNamespace() + "." + fe.Tag()
		if msg, ok := messages[key]; ok {
			msgs = append(msgs, msg)
			continue
		}
		msgs = append(msgs, fe.Error())
	}
	return msgs
}
