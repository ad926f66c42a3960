package model

// Video represents a single gallery entry with its display metadata.
type Video struct {
	ID          string   `yaml:"id"`       // unique across the catalog, used in /video/{id}
	VideoID     string   `yaml:"video_id"` // YouTube id, empty when not yet published
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Thumbnail   string   `yaml:"thumbnail"`
	Duration    string   `yaml:"duration"`
	UploadDate  string   `yaml:"upload_date"`
	Tags        []string `yaml:"tags"`
}

// YearBucket holds the videos of one year in display order.
type YearBucket struct {
	Year   string  `yaml:"year"`
	Videos []Video `yaml:"videos"`
}

// Channel is the header information shown above the gallery.
type Channel struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Avatar      string `yaml:"avatar"`
	VideoCount  string `yaml:"video_count"`
	URL         string `yaml:"url"`
	Cadence     string `yaml:"cadence"`
}

// Catalog is the complete static dataset.
type Catalog struct {
	Channel Channel      `yaml:"channel"`
	Years   []YearBucket `yaml:"years"`
}
