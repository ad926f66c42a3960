package parser

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/azupp/thumbgallery/internal/model"
)

// ParseCatalog decodes a YAML catalog and normalizes its fields.
// Bucket and record order are kept as written.
func ParseCatalog(data []byte) (model.Catalog, error) {
	var c model.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return model.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	c.Channel.Name = strings.TrimSpace(c.Channel.Name)
	c.Channel.Description = strings.TrimSpace(c.Channel.Description)
	c.Channel.Avatar = strings.TrimSpace(c.Channel.Avatar)
	c.Channel.VideoCount = strings.TrimSpace(c.Channel.VideoCount)
	c.Channel.URL = strings.TrimSpace(c.Channel.URL)
	c.Channel.Cadence = strings.TrimSpace(c.Channel.Cadence)

	for i := range c.Years {
		b := &c.Years[i]
		b.Year = strings.TrimSpace(b.Year)
		if b.Year == "" {
			return model.Catalog{}, fmt.Errorf("year bucket %d: missing year", i)
		}
		for j := range b.Videos {
			v := &b.Videos[j]
			v.ID = strings.TrimSpace(v.ID)
			if v.ID == "" {
				return model.Catalog{}, fmt.Errorf("year %s, video %d: missing id", b.Year, j)
			}
			v.VideoID = ParseVideoID(v.VideoID)
			v.Title = strings.TrimSpace(v.Title)
			// Only the line break a YAML block scalar appends is dropped; the
			// rest of the description is shown as written.
			v.Description = strings.TrimRight(v.Description, "\r\n")
			v.Thumbnail = strings.TrimSpace(v.Thumbnail)
			v.Duration = strings.TrimSpace(v.Duration)
			v.UploadDate = strings.TrimSpace(v.UploadDate)
			v.Tags = cleanTags(v.Tags)
		}
	}
	return c, nil
}

func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
}

// ParseUploadDate parses the date formats used by catalog entries.
func ParseUploadDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
