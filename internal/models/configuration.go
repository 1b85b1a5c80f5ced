package models

import "time"

// Well-known site configuration keys.
const (
	ConfigKeyHeaderColor = "header_color"
	ConfigKeyHomeVideo   = "home_video"
	ConfigKeyF1Video1    = "f1_video1"
	ConfigKeyF1Video2    = "f1_video2"
)

// VideoConfigKeys hold object keys that are served as presigned URLs.
var VideoConfigKeys = []string{ConfigKeyHomeVideo, ConfigKeyF1Video1, ConfigKeyF1Video2}

// Configuration represents a persisted configuration entry.
type Configuration struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedBy *string   `db:"updated_by" json:"updated_by,omitempty"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SiteConfig is the public configuration document returned to the website.
type SiteConfig struct {
	HeaderColor string `json:"header_color"`
	HomeVideo   string `json:"home_video"`
	F1Video1    string `json:"f1_video1"`
	F1Video2    string `json:"f1_video2"`
}
