package parser

import (
	"net/url"
	"strings"
)

// ParseVideoID extracts a YouTube video id from raw.
// A watch/shorts/embed URL, a youtu.be link or a Kodi plugin URL carrying a
// video_id query parameter is reduced to its id. Any other value is returned
// trimmed but otherwise unchanged, so ids of unusual shape are kept as written.
func ParseVideoID(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if id := q.Get("video_id"); id != "" {
		return id
	}
	if id := q.Get("v"); id != "" {
		return id
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	switch {
	case host == "youtu.be" && segs[0] != "":
		return segs[0]
	case len(segs) >= 2 && segs[1] != "" && (segs[0] == "embed" || segs[0] == "shorts" || segs[0] == "live"):
		return segs[1]
	}
	return raw
}
