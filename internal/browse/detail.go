package browse

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNotFound is returned when no video has the requested id.
var ErrNotFound = errors.New("video not found")

// Notices shown instead of the player.
const (
	NoticeComingSoon  = "この動画は近日公開予定です。"
	NoticeUnavailable = "この動画は現在視聴できません。"
	NoDescription     = "この動画についての説明はまだ書かれていません。"
)

// DefaultEmbedHost is the host of the embedded player.
const DefaultEmbedHost = "www.youtube.com"

// Detail is the data for a video page.
type Detail struct {
	ID          string
	Title       string
	Thumbnail   string
	Duration    string
	Tags        []Tag
	Date        string
	EmbedURL    string // empty when no player is shown
	Notice      string // set when EmbedURL is empty
	Description string
}

// VideoPath is the URL path of the detail page for id.
func VideoPath(id string) string {
	return "/video/" + url.PathEscape(id)
}

// BuildDetail resolves id and lays out its detail page.
func BuildDetail(c Catalog, embedHost, id string) (Detail, error) {
	v, ok := c.FindVideoByID(id)
	if !ok {
		return Detail{}, ErrNotFound
	}
	if embedHost == "" {
		embedHost = DefaultEmbedHost
	}
	d := Detail{
		ID:          v.ID,
		Title:       v.Title,
		Thumbnail:   thumbnailOf(v),
		Duration:    v.Duration,
		Tags:        tagsOf(v),
		Date:        FormatDay(v.UploadDate),
		Description: v.Description,
	}
	switch {
	case HasPlayableVideo(v):
		d.EmbedURL = EmbedURL(embedHost, strings.TrimSpace(v.VideoID))
	case IsComingSoon(v):
		d.Notice = NoticeComingSoon
	default:
		d.Notice = NoticeUnavailable
	}
	if d.Description == "" {
		d.Description = NoDescription
	}
	return d, nil
}
