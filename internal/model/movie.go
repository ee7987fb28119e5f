package model

// Movie mirrors the properties stored on a Movie node.
type Movie struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Plot           string  `json:"plot"`
	ReleaseYear    int     `json:"releaseYear"`
	Runtime        int     `json:"runtime"`
	Rating         float64 `json:"rating"`
	Poster         string  `json:"poster"`
	Backdrop       string  `json:"backdrop"`
	AnonymousViews int64   `json:"anonymousViews,omitempty"`
}

// MovieSummary is a Movie plus the joined names shown on list pages.
type MovieSummary struct {
	Movie
	Director *string  `json:"director"`
	Genres   []string `json:"genres"`
}

type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

// MovieDetail is the full read model for a single movie page.
type MovieDetail struct {
	Movie
	Director    *string      `json:"director"`
	Cast        []CastMember `json:"cast"`
	Genres      []string     `json:"genres"`
	AvgRating   float64      `json:"avgRating"`
	ReviewCount int64        `json:"reviewCount"`
}

// TrendingMovie carries the aggregates behind the trending sets. TrendScore
// is only populated for the featured set.
type TrendingMovie struct {
	Movie
	Genres      []string `json:"genres"`
	AvgRating   float64  `json:"avgRating"`
	ReviewCount int64    `json:"reviewCount"`
	ViewCount   int64    `json:"viewCount"`
	TrendScore  float64  `json:"trendScore,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type MoviePage struct {
	Movies     []MovieSummary `json:"movies"`
	Pagination Pagination     `json:"pagination"`
}
