package model

import "time"

// Review lives on the REVIEWED relationship between a User and a Movie.
type Review struct {
	ID        string     `json:"id"`
	Rating    float64    `json:"rating"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Username  string     `json:"username,omitempty"`
	UserID    string     `json:"userId,omitempty"`
}

// AdminReview adds the movie context for the back-office listing.
type AdminReview struct {
	Review
	UserEmail  string `json:"userEmail"`
	MovieID    string `json:"movieId"`
	MovieTitle string `json:"movieTitle"`
}
