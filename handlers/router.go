package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether the backing store is reachable.
type Pinger func(ctx context.Context) error

func NewRouter(articles *ArticleHandler, ping Pinger) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(), Metrics(), Recovery(), ErrorHandler())

	router.GET("/healthz", health(ping))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	group := router.Group("/articles")
	{
		group.GET("/all", articles.List)
		group.GET("/single/:articleId", articles.Get)
		group.POST("/create", articles.Create)
		group.PUT("/single/update/:articleId", articles.Update)
	}

	router.NoRoute(NotFound)
	return router
}

func health(ping Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ping(c.Request.Context()); err != nil {
			_ = c.Error(&APIError{Status: http.StatusServiceUnavailable, Message: "database unreachable", Err: err})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
