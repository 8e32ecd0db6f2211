package models

// Weekday keys used in OperatingHours.WeeklyHours.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// OperatingHours holds per-day opening hours as free text, e.g. "9:00 AM - 10:00 PM".
type OperatingHours struct {
	WeeklyHours       map[string]string `json:"weekly_hours,omitempty"`
	Open24Hours       bool              `json:"open_24_hours,omitempty"`
	TemporarilyClosed bool              `json:"temporarily_closed,omitempty"`
}

// Restaurant is the canonical provider-agnostic restaurant record.
// Numeric zero and empty string mean "unknown" so that merging can
// upgrade fields without regressing known values.
type Restaurant struct {
	Name      string  `json:"name"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	CuisineTypes []string `json:"cuisine_types,omitempty"`
	PriceLevel   string   `json:"price_level,omitempty"` // "$".."$$$$", "N/A", or empty
	Rating       float64  `json:"rating,omitempty"`      // 0.0-5.0, 0 = unknown
	ReviewCount  int      `json:"review_count,omitempty"`

	PhoneNumber string `json:"phone_number,omitempty"`
	Website     string `json:"website,omitempty"`

	AcceptsReservations bool `json:"accepts_reservations,omitempty"`
	Takeout             bool `json:"takeout,omitempty"`
	Delivery            bool `json:"delivery,omitempty"`

	Hours OperatingHours `json:"hours,omitempty"`

	GooglePlaceID  string `json:"google_place_id,omitempty"`
	YelpBusinessID string `json:"yelp_business_id,omitempty"`

	// Computed by callers relative to their own position, never by the core.
	DistanceFromUser float64 `json:"distance_from_user,omitempty"`
}

// HasIdentity reports whether the record carries enough identity to be retained.
func (r *Restaurant) HasIdentity() bool {
	return r.Name != "" || r.GooglePlaceID != "" || r.YelpBusinessID != ""
}

// Merge fills unknown fields of r from source without overwriting known
// values. Cuisine types are unioned case-sensitively preserving order.
// Provider identifiers are retained from whichever side supplied them.
func (r *Restaurant) Merge(source Restaurant) {
	if r.Rating == 0 && source.Rating > 0 {
		r.Rating = source.Rating
	}
	if r.ReviewCount == 0 && source.ReviewCount > 0 {
		r.ReviewCount = source.ReviewCount
	}
	if r.PriceLevel == "" && source.PriceLevel != "" {
		r.PriceLevel = source.PriceLevel
	}
	if r.Address == "" && source.Address != "" {
		r.Address = source.Address
	}
	if r.PhoneNumber == "" && source.PhoneNumber != "" {
		r.PhoneNumber = source.PhoneNumber
	}
	if r.Website == "" && source.Website != "" {
		r.Website = source.Website
	}
	if r.Latitude == 0 && r.Longitude == 0 && (source.Latitude != 0 || source.Longitude != 0) {
		r.Latitude = source.Latitude
		r.Longitude = source.Longitude
	}

	for _, cuisine := range source.CuisineTypes {
		if !containsString(r.CuisineTypes, cuisine) {
			r.CuisineTypes = append(r.CuisineTypes, cuisine)
		}
	}

	if !r.AcceptsReservations && source.AcceptsReservations {
		r.AcceptsReservations = true
	}
	if !r.Takeout && source.Takeout {
		r.Takeout = true
	}
	if !r.Delivery && source.Delivery {
		r.Delivery = true
	}

	if len(r.Hours.WeeklyHours) == 0 && len(source.Hours.WeeklyHours) > 0 {
		r.Hours = source.Hours
	}

	if source.GooglePlaceID != "" {
		r.GooglePlaceID = source.GooglePlaceID
	}
	if source.YelpBusinessID != "" {
		r.YelpBusinessID = source.YelpBusinessID
	}
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// Location represents geographic coordinates for a search.
type Location struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// SearchFilters narrows a restaurant search. Immutable per search invocation.
type SearchFilters struct {
	CuisineTypes        []string `json:"cuisine_types,omitempty"`
	PriceRange          string   `json:"price_range,omitempty"` // e.g. "$-$$"
	MinRating           float64  `json:"min_rating,omitempty" validate:"gte=0,lte=5"`
	MaxDistance         float64  `json:"max_distance,omitempty" validate:"gte=0"` // meters
	OpenNow             bool     `json:"open_now,omitempty"`
	AcceptsReservations bool     `json:"accepts_reservations,omitempty"`
	HasDelivery         bool     `json:"has_delivery,omitempty"`
	HasTakeout          bool     `json:"has_takeout,omitempty"`
}

// DefaultMaxDistance is applied when a search omits max_distance.
const DefaultMaxDistance = 5000.0

// Normalized returns a copy with defaults applied.
func (f SearchFilters) Normalized() SearchFilters {
	if f.MaxDistance <= 0 {
		f.MaxDistance = DefaultMaxDistance
	}
	return f
}
