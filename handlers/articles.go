package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"articles_api/models"
	"articles_api/services"
	"articles_api/validation"
)

// ArticleStore is the storage the article endpoints need.
// *services.ArticleService implements it.
type ArticleStore interface {
	CreateArticle(ctx context.Context, text string, tagNames []string) (*models.Article, error)
	ListArticles(ctx context.Context, tagFilter string) ([]models.Article, error)
	GetArticle(ctx context.Context, id uint) (*models.Article, error)
	UpdateArticleText(ctx context.Context, id uint, text string) (*models.Article, error)
}

type ArticleHandler struct {
	store ArticleStore
}

func NewArticleHandler(store ArticleStore) *ArticleHandler {
	return &ArticleHandler{store: store}
}

// List serves GET /articles/all?tags=a,b.
func (h *ArticleHandler) List(c *gin.Context) {
	if len(c.QueryArray("tags")) > 1 {
		_ = c.Error(Unprocessable("Tags must be a comma separated string"))
		return
	}

	articles, err := h.store.ListArticles(c.Request.Context(), c.Query("tags"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Fetched successfully!",
		"articles": articles,
	})
}

// Get serves GET /articles/single/:articleId.
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	article, err := h.store.GetArticle(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if article == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "No article found with id " + c.Param("articleId"),
			"article": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Fetched successfully!",
		"article": article,
	})
}

// Create serves POST /articles/create.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req validation.CreateArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(&APIError{Status: http.StatusUnprocessableEntity, Message: "Invalid request body", Err: err})
		return
	}
	if msg := validation.First(validation.ValidateCreate(&req)); msg != "" {
		_ = c.Error(Unprocessable(msg))
		return
	}

	article, err := h.store.CreateArticle(c.Request.Context(), req.Article, services.ParseTagList(req.Tags))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Article created successfully!",
		"data": gin.H{
			"article": article,
			"tags":    article.Tags,
		},
	})
}

// Update serves PUT /articles/single/update/:articleId.
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req validation.UpdateArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(&APIError{Status: http.StatusUnprocessableEntity, Message: "Invalid request body", Err: err})
		return
	}
	if msg := validation.First(validation.ValidateUpdate(&req)); msg != "" {
		_ = c.Error(Unprocessable(msg))
		return
	}

	article, err := h.store.UpdateArticleText(c.Request.Context(), id, req.Article)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if article == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "No article found with id " + c.Param("articleId"),
			"article": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Article updated successfully!",
		"article": article,
	})
}

func articleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("articleId"), 10, 64)
	if err != nil || id == 0 {
		_ = c.Error(Unprocessable("Article id must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}
