package yelp

// searchResponse represents the Yelp Fusion business search response
type searchResponse struct {
	Businesses []business `json:"businesses"`
	Total      int        `json:"total"`
}

// business represents a single business from the Yelp Fusion API.
// The details endpoint returns the same shape with hours populated.
type business struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Phone        string         `json:"phone,omitempty"`
	DisplayPhone string         `json:"display_phone,omitempty"`
	URL          string         `json:"url,omitempty"`
	Rating       float64        `json:"rating,omitempty"`
	ReviewCount  int            `json:"review_count,omitempty"`
	Price        string         `json:"price,omitempty"`
	Coordinates  *coordinates   `json:"coordinates,omitempty"`
	Location     *location      `json:"location,omitempty"`
	Categories   []category     `json:"categories,omitempty"`
	Transactions []string       `json:"transactions,omitempty"`
	Hours        []businessHour `json:"hours,omitempty"`
	IsClosed     bool           `json:"is_closed,omitempty"`
}

type coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type location struct {
	Address1       string   `json:"address1,omitempty"`
	City           string   `json:"city,omitempty"`
	ZipCode        string   `json:"zip_code,omitempty"`
	DisplayAddress []string `json:"display_address,omitempty"`
}

type category struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

type businessHour struct {
	HoursType string     `json:"hours_type,omitempty"`
	IsOpenNow bool       `json:"is_open_now,omitempty"`
	Open      []openSpan `json:"open,omitempty"`
}

// openSpan is one opening window; day 0 is Monday, times are "HHMM".
type openSpan struct {
	IsOvernight bool   `json:"is_overnight,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Day         int    `json:"day"`
}

// errorResponse is the Yelp Fusion error envelope
type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}
