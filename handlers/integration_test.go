package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"articles_api/config"
	"articles_api/database"
	"articles_api/services"
)

func TestArticlesEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	db, err := database.Open(ctx, sqlite.Open("file:TestArticlesEndToEnd?mode=memory&cache=shared"), config.Database{
		ConnectAttempts: 1,
		MaxOpenConns:    1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	svc := services.NewArticleService(db, database.NewBootstrapper(db))
	rt := &routerTester{router: NewRouter(NewArticleHandler(svc), func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})}

	w, resp := rt.do(t, http.MethodPost, "/articles/create", gin.H{"article": "first article", "tags": "go, sql"})
	require.Equal(t, http.StatusCreated, w.Code)
	firstID := resp["data"].(map[string]any)["article"].(map[string]any)["id"]

	w, _ = rt.do(t, http.MethodPost, "/articles/create", gin.H{"article": "second article", "tags": "rust"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp = rt.do(t, http.MethodGet, "/articles/all?tags=sql,java", nil)
	require.Equal(t, http.StatusOK, w.Code)
	articles := resp["articles"].([]any)
	require.Len(t, articles, 1)
	require.Equal(t, firstID, articles[0].(map[string]any)["id"])

	w, resp = rt.do(t, http.MethodPut, "/articles/single/update/1", gin.H{"article": "rewritten"})
	require.Equal(t, http.StatusOK, w.Code)
	article := resp["article"].(map[string]any)
	require.Equal(t, "rewritten", article["text"])
	require.Len(t, article["tags"], 2)

	w, resp = rt.do(t, http.MethodGet, "/articles/single/999", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, resp["article"])

	w, _ = rt.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
