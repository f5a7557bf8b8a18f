// Package rest is the HTTP+JSON transport of the blog server, built on gin.
package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/logging"
	"github.com/dmitrijs2005/gophblog/internal/server/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig holds the transport settings taken from the server config.
type RouterConfig struct {
	APIPrefix    string
	AllowOrigins string
}

// NewRouter builds the gin engine with all routes. Routes that mutate posts
// sit behind RequireToken.
func NewRouter(cfg RouterConfig, h *Handler, tokens auth.TokenVerifier, logger logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger), cors.New(corsConfig(cfg.AllowOrigins)))

	r.GET("/health", h.Health)

	api := r.Group(normalizePrefix(cfg.APIPrefix))
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.GET("/posts", h.ListPosts)
	api.GET("/posts/:id", h.GetPost)

	protected := api.Group("", RequireToken(tokens))
	protected.POST("/posts", h.CreatePost)
	protected.PUT("/posts/:id", h.UpdatePost)
	protected.DELETE("/posts/:id", h.DeletePost)

	return r
}

func corsConfig(origins string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			c.AllowAllOrigins = true
			c.AllowOrigins = nil
			return c
		default:
			c.AllowOrigins = append(c.AllowOrigins, o)
		}
	}
	if len(c.AllowOrigins) == 0 {
		c.AllowAllOrigins = true
	}
	return c
}

// normalizePrefix turns "api", "/api/" and "/api" into "/api"; "" and "/"
// mount the API at the root.
func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	return "/" + p
}
