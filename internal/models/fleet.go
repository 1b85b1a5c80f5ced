package models

// Aircraft is one entry in the public fleet listing.
type Aircraft struct {
	ID          string  `db:"id" json:"id" yaml:"id"`
	Name        string  `db:"name" json:"name" yaml:"name"`
	Category    string  `db:"category" json:"category" yaml:"category"`
	Passengers  int     `db:"passengers" json:"passengers" yaml:"passengers"`
	RangeNM     int     `db:"range_nm" json:"rangeNm" yaml:"rangeNm"`
	CruiseKnots int     `db:"cruise_knots" json:"cruiseKnots" yaml:"cruiseKnots"`
	ImageURL    string  `db:"image_url" json:"imageUrl" yaml:"imageUrl"`
	Description string  `db:"description" json:"description" yaml:"description"`
	HourlyRate  float64 `db:"hourly_rate" json:"hourlyRate" yaml:"hourlyRate"`
	SortOrder   int     `db:"sort_order" json:"sortOrder" yaml:"sortOrder"`
}
