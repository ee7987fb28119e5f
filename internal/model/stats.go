package model

type StatsTotals struct {
	Movies    int64 `json:"movies"`
	Actors    int64 `json:"actors"`
	Directors int64 `json:"directors"`
	Genres    int64 `json:"genres"`
	Users     int64 `json:"users"`
	Reviews   int64 `json:"reviews"`
}

type YearCount struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

type GenreCount struct {
	Genre string `json:"genre"`
	Count int64  `json:"count"`
}

type DirectorCount struct {
	Name       string `json:"name"`
	MovieCount int64  `json:"movieCount"`
}

type RatedMovie struct {
	Title       string  `json:"title"`
	Rating      float64 `json:"rating"`
	ReviewCount int64   `json:"reviewCount"`
}

type StatsCharts struct {
	MoviesByYear  []YearCount     `json:"moviesByYear"`
	MoviesByGenre []GenreCount    `json:"moviesByGenre"`
	TopDirectors  []DirectorCount `json:"topDirectors"`
	TopRated      []RatedMovie    `json:"topRated"`
}

// Stats is the admin dashboard payload.
type Stats struct {
	Totals StatsTotals `json:"totals"`
	Charts StatsCharts `json:"charts"`
}
