package google

// nearbySearchResponse represents the Google Places Nearby Search API response
type nearbySearchResponse struct {
	HTMLAttributions []string      `json:"html_attributions"`
	Results          []placeResult `json:"results"`
	Status           string        `json:"status"`
	ErrorMessage     string        `json:"error_message,omitempty"`
	NextPageToken    string        `json:"next_page_token,omitempty"`
}

// detailsResponse represents the Google Places Details API response
type detailsResponse struct {
	HTMLAttributions []string     `json:"html_attributions"`
	Result           *placeResult `json:"result"`
	Status           string       `json:"status"`
	ErrorMessage     string       `json:"error_message,omitempty"`
}

// placeResult represents a single place result from Google Places API
type placeResult struct {
	BusinessStatus        string        `json:"business_status,omitempty"`
	FormattedAddress      string        `json:"formatted_address,omitempty"`
	FormattedPhoneNumber  string        `json:"formatted_phone_number,omitempty"`
	Geometry              *geometry     `json:"geometry,omitempty"`
	Name                  string        `json:"name"`
	OpeningHours          *openingHours `json:"opening_hours,omitempty"`
	PlaceID               string        `json:"place_id"`
	PriceLevel            int           `json:"price_level,omitempty"`
	Rating                float64       `json:"rating,omitempty"`
	Reservable            bool          `json:"reservable,omitempty"`
	Takeout               bool          `json:"takeout,omitempty"`
	Delivery              bool          `json:"delivery,omitempty"`
	Types                 []string      `json:"types,omitempty"`
	UserRatingsTotal      int           `json:"user_ratings_total,omitempty"`
	Vicinity              string        `json:"vicinity,omitempty"`
	Website               string        `json:"website,omitempty"`
	InternationalPhoneNum string        `json:"international_phone_number,omitempty"`
}

// geometry represents the geometry information of a place
type geometry struct {
	Location *latLng `json:"location,omitempty"`
}

// latLng represents a geographic coordinate
type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// openingHours represents the opening hours of a place
type openingHours struct {
	OpenNow     bool     `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}
