package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// Register mounts the embedded frontend: the index page at the site root
// and its assets under /static.
func Register(r *gin.Engine) error {
	index, err := assets.ReadFile("static/index.html")
	if err != nil {
		return err
	}

	sub, err := fs.Sub(assets, "static")
	if err != nil {
		return err
	}

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	r.StaticFS("/static", http.FS(sub))
	return nil
}
