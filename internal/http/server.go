package http

import (
	_ "embed"
	"errors"
	"html/template"
	"log/slog"
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/azupp/thumbgallery/internal/browse"
)

//go:embed static/placeholder.svg
var placeholderSVG []byte

// Catalog is the video store served by the gallery.
type Catalog interface {
	browse.Catalog
	Len() int
}

// Options configures the gallery pages.
type Options struct {
	Tabs        []string // fixed year selector
	DefaultYear string
	EmbedHost   string
	BaseURL     string // public origin for the sitemap
}

type server struct {
	cat  Catalog
	opts Options
}

// NewServer creates the HTTP handler serving the gallery and detail pages for cat.
func NewServer(cat Catalog, opts Options) nethttp.Handler {
	if len(opts.Tabs) == 0 {
		opts.Tabs = browse.DefaultTabs
	}
	if opts.DefaultYear == "" {
		opts.DefaultYear = browse.DefaultYear
	}
	if opts.EmbedHost == "" {
		opts.EmbedHost = browse.DefaultEmbedHost
	}
	s := &server{cat: cat, opts: opts}

	tpl := template.Must(template.New("pages").Parse(pageTpl))

	r := gin.New()
	r.Use(RequestID(), AccessLog(), gin.Recovery())
	r.SetHTMLTemplate(tpl)

	r.GET("/", s.handleGallery)
	r.GET("/video/:id", s.handleVideo)
	r.GET("/placeholder.svg", handlePlaceholder)
	r.GET("/sitemap.xml", s.handleSitemap)
	r.GET("/health", gin.WrapH(HealthHandler(cat.Len)))
	r.NoRoute(notFound)
	return r
}

func (s *server) handleGallery(c *gin.Context) {
	g := browse.BuildGallery(s.cat, s.opts.Tabs, s.opts.DefaultYear, c.Query("year"))
	c.HTML(nethttp.StatusOK, "gallery", g)
}

func (s *server) handleVideo(c *gin.Context) {
	d, err := browse.BuildDetail(s.cat, s.opts.EmbedHost, c.Param("id"))
	if errors.Is(err, browse.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		slog.Error("build detail", "id", c.Param("id"), "err", err)
		c.String(nethttp.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(nethttp.StatusOK, "detail", d)
}

func notFound(c *gin.Context) {
	c.HTML(nethttp.StatusNotFound, "notfound", nil)
}

func handlePlaceholder(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(nethttp.StatusOK, "image/svg+xml", placeholderSVG)
}
