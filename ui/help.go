package ui

import (
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleHelp renders the embedded markdown guide as the help page.
func (s *Server) handleHelp(c *gin.Context) {
	raw, err := fs.ReadFile(s.assets, "static/help.md")
	if err != nil {
		log.Printf("[Server] help document unavailable: %v", err)
		c.String(http.StatusInternalServerError, "help unavailable")
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.ToHTML(raw, p, renderer)

	s.renderTemplate(c, "help.html", gin.H{
		"Title":   "Help",
		"Content": template.HTML(rendered),
	})
}
