package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
)

//go:embed views static
var assets embed.FS

// NewEngine returns the template engine for the embedded views.
// Pages are rendered inside views/layouts/main.html.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(sub("views")), ".html")
}

// Static serves the embedded JS and CSS.
func Static() fiber.Handler {
	return filesystem.New(filesystem.Config{
		Root:   http.FS(sub("static")),
		MaxAge: 3600,
	})
}

func sub(dir string) fs.FS {
	f, err := fs.Sub(assets, dir)
	if err != nil {
		panic(err)
	}
	return f
}
