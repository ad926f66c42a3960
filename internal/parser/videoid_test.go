package parser

import "testing"

func TestParseVideoID(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"abc123", "abc123"},
		{"  zbKjqHqy2no \n", "zbKjqHqy2no"},
		{"https://www.youtube.com/watch?v=zbKjqHqy2no&t=10s", "zbKjqHqy2no"},
		{"https://youtu.be/zbKjqHqy2no", "zbKjqHqy2no"},
		{"https://www.youtube.com/embed/zbKjqHqy2no", "zbKjqHqy2no"},
		{"https://youtube.com/shorts/zbKjqHqy2no", "zbKjqHqy2no"},
		{"plugin://plugin.video.youtube/play/?video_id=zbKjqHqy2no", "zbKjqHqy2no"},
		{"https://example.com/about", "https://example.com/about"},
	}
	for _, tc := range cases {
		if got := ParseVideoID(tc.in); got != tc.want {
			t.Fatalf("ParseVideoID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseVideoID_KeepsUnusualIDs(t *testing.T) {
	for _, id := range []string{"abc12", "a", "abc.123", "id with space"} {
		if got := ParseVideoID(id); got != id {
			t.Fatalf("ParseVideoID(%q) = %q, want it unchanged", id, got)
		}
	}
}

func TestParseCatalog_ShortVideoIDSurvives(t *testing.T) {
	c, err := ParseCatalog([]byte("years:\n  - year: \"2025\"\n    videos:\n      - id: v1\n        video_id: abc12\n      - id: v2\n        video_id: \" a.b \"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Years[0].Videos[0].VideoID; got != "abc12" {
		t.Fatalf("want abc12, got %q", got)
	}
	if got := c.Years[0].Videos[1].VideoID; got != "a.b" {
		t.Fatalf("want a.b, got %q", got)
	}
}
