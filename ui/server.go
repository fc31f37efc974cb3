package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"ifcdash/internal/config"
	"ifcdash/ports"
)

// Server is the dashboard web server. It owns no analysis state: every
// request recomputes its tables from the uploaded files and returns fresh
// values, so nothing here is shared across requests except the ports.
type Server struct {
	router    *gin.Engine
	templates *template.Template
	assets    fs.FS

	cfg     *config.Config
	parser  ports.ModelParser
	tabular ports.TabularReader
	export  ports.ChartExporter

	// parseGate caps simultaneous heavy parses across requests.
	parseGate *semaphore.Weighted
}

// NewServer creates the dashboard server with its collaborators wired in.
// assets is a filesystem rooted at the ui directory (templates/, static/).
func NewServer(cfg *config.Config, parser ports.ModelParser, tabular ports.TabularReader, export ports.ChartExporter, assets fs.FS) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:    gin.Default(),
		assets:    assets,
		cfg:       cfg,
		parser:    parser,
		tabular:   tabular,
		export:    export,
		parseGate: semaphore.NewWeighted(cfg.Upload.MaxConcurrentParses),
	}

	templates, err := template.ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = templates

	s.router.MaxMultipartMemory = cfg.Upload.MaxBytes

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() {
	staticFS, err := fs.Sub(s.assets, "static")
	if err != nil {
		log.Printf("[Server] static assets unavailable: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

func (s *Server) setupRoutes() {
	// Pages
	s.router.GET("/", s.handleIndex)
	s.router.GET("/help", s.handleHelp)
	s.router.GET("/ifc", s.handlePage("ifc.html", "IFC File Analysis"))
	s.router.GET("/excel", s.handlePage("excel.html", "Excel File Analysis"))
	s.router.GET("/compare", s.handlePage("compare.html", "Compare Files"))

	// Analysis endpoints
	s.router.POST("/ifc/analyze", s.handleIFCAnalyze)
	s.router.POST("/ifc/detail", s.handleIFCDetail)
	s.router.POST("/ifc/compare", s.handleIFCCompare)
	s.router.POST("/excel/analyze", s.handleExcelAnalyze)
	s.router.POST("/excel/compare", s.handleExcelCompare)

	// Export
	s.router.POST("/export/pdf", s.handleExportPDF)
}

// Start runs the server (blocking)
func (s *Server) Start(addr string) error {
	log.Printf("[Server] Starting dashboard on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderTemplate(c, "index.html", gin.H{
		"Title": "IFC and Excel File Analysis",
	})
}

func (s *Server) handlePage(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.renderTemplate(c, name, gin.H{"Title": title})
	}
}

func (s *Server) renderTemplate(c *gin.Context, name string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		log.Printf("[Server] template %s failed: %v", name, err)
		c.String(http.StatusInternalServerError, "template error")
	}
}
