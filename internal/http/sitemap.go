package http

import (
	"encoding/xml"
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/azupp/thumbgallery/internal/browse"
	"github.com/azupp/thumbgallery/internal/parser"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// handleSitemap lists the gallery and every detail page, including videos of
// years that have no tab.
func (s *server) handleSitemap(c *gin.Context) {
	set := urlset{Xmlns: sitemapNS}
	set.URLs = append(set.URLs, sitemapURL{Loc: s.opts.BaseURL + "/"})
	for _, year := range s.cat.Years() {
		for _, v := range s.cat.VideosByYear(year) {
			u := sitemapURL{Loc: s.opts.BaseURL + browse.VideoPath(v.ID)}
			if t, err := parser.ParseUploadDate(v.UploadDate); err == nil {
				u.LastMod = t.Format("2006-01-02")
			}
			set.URLs = append(set.URLs, u)
		}
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		c.String(nethttp.StatusInternalServerError, "sitemap unavailable")
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(nethttp.StatusOK, "text/xml; charset=utf-8", append([]byte(xml.Header), out...))
}
