package models

import (
	"time"

	"github.com/lib/pq"
)

// SEOPage holds the meta tags for one site page.
type SEOPage struct {
	Page          string         `db:"page" json:"page" yaml:"page"`
	Title         string         `db:"title" json:"title" yaml:"title"`
	Description   string         `db:"description" json:"description" yaml:"description"`
	Keywords      string         `db:"keywords" json:"keywords" yaml:"keywords"`
	OGImage       string         `db:"og_image" json:"ogImage" yaml:"ogImage"`
	CanonicalURL  string         `db:"canonical_url" json:"canonicalUrl" yaml:"canonicalUrl"`
	Robots        string         `db:"robots" json:"robots" yaml:"robots"`
	Author        string         `db:"author" json:"author" yaml:"author"`
	Language      string         `db:"language" json:"language" yaml:"language"`
	SiteName      string         `db:"site_name" json:"siteName" yaml:"siteName"`
	Type          string         `db:"type" json:"type" yaml:"type"`
	TwitterHandle string         `db:"twitter_handle" json:"twitterHandle" yaml:"twitterHandle"`
	PublishedTime *time.Time     `db:"published_time" json:"publishedTime,omitempty" yaml:"publishedTime"`
	ModifiedTime  *time.Time     `db:"modified_time" json:"modifiedTime,omitempty" yaml:"modifiedTime"`
	Section       string         `db:"section" json:"section" yaml:"section"`
	Tags          pq.StringArray `db:"tags" json:"tags" yaml:"tags" swaggertype:"array,string"`
}
