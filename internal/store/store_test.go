package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azupp/thumbgallery/internal/model"
)

func catalog() model.Catalog {
	return model.Catalog{
		Channel: model.Channel{Name: "Azu pp"},
		Years: []model.YearBucket{
			{Year: "2025", Videos: []model.Video{
				{ID: "v3", VideoID: "ccc333"},
				{ID: "v1", VideoID: "abc123", UploadDate: "2025-03-01"},
			}},
			{Year: "2024", Videos: []model.Video{
				{ID: "v2"},
			}},
		},
	}
}

func TestFindVideoByID(t *testing.T) {
	s, err := New(catalog())
	require.NoError(t, err)

	for _, b := range catalog().Years {
		for _, want := range b.Videos {
			got, ok := s.FindVideoByID(want.ID)
			require.True(t, ok, want.ID)
			assert.Equal(t, want, got)
		}
	}

	_, ok := s.FindVideoByID("missing")
	assert.False(t, ok)
	_, ok = s.FindVideoByID("")
	assert.False(t, ok)
}

func TestVideosByYear_KeepsOrder(t *testing.T) {
	s, err := New(catalog())
	require.NoError(t, err)

	got := s.VideosByYear("2025")
	require.Len(t, got, 2)
	assert.Equal(t, "v3", got[0].ID)
	assert.Equal(t, "v1", got[1].ID)

	assert.Nil(t, s.VideosByYear("1999"))
	assert.Equal(t, []string{"2025", "2024"}, s.Years())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "Azu pp", s.Channel().Name)
}

func TestVideosByYear_ReturnsCopy(t *testing.T) {
	s, err := New(catalog())
	require.NoError(t, err)

	got := s.VideosByYear("2025")
	got[0].ID = "changed"
	assert.Equal(t, "v3", s.VideosByYear("2025")[0].ID)
}

func TestNew_DuplicateID(t *testing.T) {
	c := catalog()
	c.Years[1].Videos = append(c.Years[1].Videos, model.Video{ID: "v1"})
	_, err := New(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"v1"`)
}

func TestNew_DuplicateYear(t *testing.T) {
	c := catalog()
	c.Years = append(c.Years, model.YearBucket{Year: "2025"})
	_, err := New(c)
	require.Error(t, err)
}

func TestEmbedded(t *testing.T) {
	s, err := Embedded()
	require.NoError(t, err)
	assert.Equal(t, []string{"2025", "2024", "2023", "2022"}, s.Years())
	assert.NotEmpty(t, s.Channel().Name)
	for _, y := range s.Years() {
		for _, v := range s.VideosByYear(y) {
			got, ok := s.FindVideoByID(v.ID)
			require.True(t, ok)
			assert.Equal(t, v.ID, got.ID)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "videos.yaml")
	data := "years:\n  - year: \"2030\"\n    videos:\n      - id: x1\n        video_id: abc123\n"
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))

	s, err := LoadFile(p)
	require.NoError(t, err)
	v, ok := s.FindVideoByID("x1")
	require.True(t, ok)
	assert.Equal(t, "abc123", v.VideoID)

	_, err = LoadFile(filepath.Join(dir, "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTagsAreNotShared(t *testing.T) {
	c := catalog()
	c.Years[0].Videos[0].Tags = []string{"clips"}
	s, err := New(c)
	require.NoError(t, err)

	c.Years[0].Videos[0].Tags[0] = "from-input"
	got, ok := s.FindVideoByID("v3")
	require.True(t, ok)
	assert.Equal(t, []string{"clips"}, got.Tags)

	got.Tags[0] = "from-lookup"
	s.VideosByYear("2025")[0].Tags[0] = "from-bucket"

	again, _ := s.FindVideoByID("v3")
	assert.Equal(t, []string{"clips"}, again.Tags)
	assert.Equal(t, []string{"clips"}, s.VideosByYear("2025")[0].Tags)
}
