package browse

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/azupp/thumbgallery/internal/model"
	"github.com/azupp/thumbgallery/internal/parser"
)

// SentinelTag marks a video that is announced but not watchable yet.
const SentinelTag = "近日公開"

// Tag tones used by the templates.
const (
	ToneWarning = "warning"
	ToneInfo    = "info"
)

// PlaceholderImage replaces any missing or failing image.
const PlaceholderImage = "/placeholder.svg"

// TagTone returns the badge tone for tag.
func TagTone(tag string) string {
	if tag == SentinelTag {
		return ToneWarning
	}
	return ToneInfo
}

// FormatMonth renders a date as "2025年3月".
// Dates that cannot be parsed are returned unchanged.
func FormatMonth(s string) string {
	t, err := parser.ParseUploadDate(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d年%d月", t.Year(), int(t.Month()))
}

// FormatDay renders a date as "2025年3月1日".
func FormatDay(s string) string {
	t, err := parser.ParseUploadDate(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}

// EmbedURL builds the player URL for videoID on host.
func EmbedURL(host, videoID string) string {
	return "https://" + host + "/embed/" + url.PathEscape(videoID)
}

// IsComingSoon reports whether v carries the sentinel tag.
func IsComingSoon(v model.Video) bool {
	return slices.Contains(v.Tags, SentinelTag)
}

// HasPlayableVideo reports whether the detail page should embed a player for v.
func HasPlayableVideo(v model.Video) bool {
	return strings.TrimSpace(v.VideoID) != "" && !IsComingSoon(v)
}

func thumbnailOf(v model.Video) string {
	if v.Thumbnail == "" {
		return PlaceholderImage
	}
	return v.Thumbnail
}

func tagsOf(v model.Video) []Tag {
	out := make([]Tag, len(v.Tags))
	for i, t := range v.Tags {
		out[i] = Tag{Label: t, Tone: TagTone(t)}
	}
	return out
}
