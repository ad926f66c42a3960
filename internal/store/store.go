package store

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/azupp/thumbgallery/internal/model"
	"github.com/azupp/thumbgallery/internal/parser"
)

//go:embed data/videos.yaml
var embedded []byte

// Store is the read-only video catalog with an id index.
// It is never mutated after construction, so concurrent reads are safe.
type Store struct {
	channel model.Channel
	years   []model.YearBucket
	byYear  map[string]int
	byID    map[string]model.Video
	count   int
}

// New builds a Store from c.
// It fails when a video id or a year label appears more than once.
func New(c model.Catalog) (*Store, error) {
	s := &Store{
		channel: c.Channel,
		years:   make([]model.YearBucket, 0, len(c.Years)),
		byYear:  make(map[string]int, len(c.Years)),
		byID:    make(map[string]model.Video),
	}
	for _, b := range c.Years {
		if _, dup := s.byYear[b.Year]; dup {
			return nil, fmt.Errorf("duplicate year %q", b.Year)
		}
		vids := cloneVideos(b.Videos)
		for _, v := range vids {
			if _, dup := s.byID[v.ID]; dup {
				return nil, fmt.Errorf("duplicate video id %q", v.ID)
			}
			s.byID[v.ID] = v
		}
		s.byYear[b.Year] = len(s.years)
		s.years = append(s.years, model.YearBucket{Year: b.Year, Videos: vids})
		s.count += len(vids)
	}
	return s, nil
}

// Embedded returns the Store for the catalog compiled into the binary.
func Embedded() (*Store, error) {
	return parse(embedded)
}

// LoadFile reads a catalog of the embedded shape from path.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Store, error) {
	c, err := parser.ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	return New(c)
}

// Channel returns the channel header information.
func (s *Store) Channel() model.Channel { return s.channel }

// Years returns the year labels in catalog order.
func (s *Store) Years() []string {
	out := make([]string, len(s.years))
	for i, b := range s.years {
		out[i] = b.Year
	}
	return out
}

// VideosByYear returns the videos of year in catalog order, or nil for an unknown year.
func (s *Store) VideosByYear(year string) []model.Video {
	i, ok := s.byYear[year]
	if !ok {
		return nil
	}
	return cloneVideos(s.years[i].Videos)
}

// FindVideoByID looks up a video across all years.
// The boolean is false when no video has that id.
func (s *Store) FindVideoByID(id string) (model.Video, bool) {
	v, ok := s.byID[id]
	if ok {
		v.Tags = slices.Clone(v.Tags)
	}
	return v, ok
}

// cloneVideos copies vids deeply enough that callers cannot reach the
// store's tag slices.
func cloneVideos(vids []model.Video) []model.Video {
	out := make([]model.Video, len(vids))
	for i, v := range vids {
		v.Tags = slices.Clone(v.Tags)
		out[i] = v
	}
	return out
}

// Len reports the number of videos in the catalog.
func (s *Store) Len() int { return s.count }
