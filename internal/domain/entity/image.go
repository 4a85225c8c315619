package entity

// ImageHit is one search result from the stock image provider.
type ImageHit struct {
	ID            int    `json:"id"`
	Tags          string `json:"tags"`
	WebformatURL  string `json:"webformatURL"`
	LargeImageURL string `json:"largeImageURL"`
	ImageWidth    int    `json:"imageWidth"`
	ImageHeight   int    `json:"imageHeight"`
	Likes         int    `json:"likes"`
}

// ImageSearchOptions narrows a stock image search.
type ImageSearchOptions struct {
	ImageType   string // "photo", "illustration", "vector", "all"
	Orientation string // "horizontal", "vertical", "all"
	MinWidth    int
	MinHeight   int
	PerPage     int
}
