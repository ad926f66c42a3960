package browse

import (
	"slices"

	"github.com/azupp/thumbgallery/internal/model"
)

// Catalog is the read side of the video store used by the view builders.
type Catalog interface {
	Channel() model.Channel
	Years() []string
	VideosByYear(year string) []model.Video
	FindVideoByID(id string) (model.Video, bool)
}

// DefaultTabs is the fixed year selector of the gallery.
var DefaultTabs = []string{"2025", "2024", "2023", "2022"}

// DefaultYear is the tab that is active when nothing else is selected.
const DefaultYear = "2025"

// Tag is a tag label with its badge tone.
type Tag struct {
	Label string
	Tone  string
}

// Card is one video in the gallery grid.
type Card struct {
	ID        string
	Href      string
	Title     string
	Thumbnail string
	Duration  string
	Tags      []Tag
	Date      string
}

// Tab is one year of the gallery.
type Tab struct {
	Year   string
	Label  string
	Active bool
	Cards  []Card
}

// Gallery is the data for the gallery page.
type Gallery struct {
	Channel model.Channel
	Avatar  string
	Active  string
	Tabs    []Tab
}

// BuildGallery lays out the gallery for the given fixed tabs.
// selected falls back to def, then to the first tab, when it is not one of tabs.
func BuildGallery(c Catalog, tabs []string, def, selected string) Gallery {
	if len(tabs) == 0 {
		tabs = DefaultTabs
	}
	active := selected
	if !slices.Contains(tabs, active) {
		active = def
	}
	if !slices.Contains(tabs, active) {
		active = tabs[0]
	}

	ch := c.Channel()
	g := Gallery{
		Channel: ch,
		Avatar:  ch.Avatar,
		Active:  active,
		Tabs:    make([]Tab, 0, len(tabs)),
	}
	if g.Avatar == "" {
		g.Avatar = PlaceholderImage
	}
	for _, year := range tabs {
		vids := c.VideosByYear(year)
		tab := Tab{
			Year:   year,
			Label:  year + "年",
			Active: year == active,
			Cards:  make([]Card, 0, len(vids)),
		}
		for _, v := range vids {
			tab.Cards = append(tab.Cards, Card{
				ID:        v.ID,
				Href:      VideoPath(v.ID),
				Title:     v.Title,
				Thumbnail: thumbnailOf(v),
				Duration:  v.Duration,
				Tags:      tagsOf(v),
				Date:      FormatMonth(v.UploadDate),
			})
		}
		g.Tabs = append(g.Tabs, tab)
	}
	return g
}

// HiddenYears lists catalog years that no tab shows.
func HiddenYears(c Catalog, tabs []string) []string {
	var out []string
	for _, y := range c.Years() {
		if !slices.Contains(tabs, y) {
			out = append(out, y)
		}
	}
	return out
}
