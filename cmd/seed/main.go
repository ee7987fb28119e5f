// Seeds the graph with a starter catalog: movies with their directors,
// genres and cast, a handful of accounts, reviews and views. Idempotent, all
// writes are MERGE-based.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cinegraph/cinegraph/internal/auth"
	"github.com/cinegraph/cinegraph/internal/config"
	"github.com/cinegraph/cinegraph/internal/driver"
	"github.com/cinegraph/cinegraph/internal/model"
)

type seedMovie struct {
	ID          string
	Title       string
	Plot        string
	ReleaseYear int
	Runtime     int
	Rating      float64
	Poster      string
	Backdrop    string
	Director    string
	Genres      []string
	Cast        []model.CastMember
}

type seedUser struct {
	ID       string
	Username string
	Email    string
	Password string
	Role     string
}

type seedReview struct {
	UserID  string
	MovieID string
	Rating  float64
	Text    string
}

var movies = []seedMovie{
	{
		ID: "movie-1", Title: "The Dark Knight",
		Plot:        "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		ReleaseYear: 2008, Runtime: 152, Rating: 9.0,
		Poster:   "https://image.tmdb.org/t/p/w500/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
		Backdrop: "https://image.tmdb.org/t/p/original/nMKdUUepR0i5zn0y1T4CsSB5chy.jpg",
		Director: "Christopher Nolan", Genres: []string{"Action", "Crime", "Drama"},
		Cast: []model.CastMember{
			{Name: "Christian Bale", Character: "Bruce Wayne / Batman"},
			{Name: "Heath Ledger", Character: "Joker"},
			{Name: "Aaron Eckhart", Character: "Harvey Dent"},
			{Name: "Michael Caine", Character: "Alfred"},
			{Name: "Gary Oldman", Character: "Commissioner Gordon"},
		},
	},
	{
		ID: "movie-2", Title: "Inception",
		Plot:        "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		ReleaseYear: 2010, Runtime: 148, Rating: 8.8,
		Poster:   "https://image.tmdb.org/t/p/w500/9gk7adHYeDvHkCSEqAvQNLV5Ber.jpg",
		Backdrop: "https://image.tmdb.org/t/p/original/8ZTVqvKDQ8emSGcHtcVxoJSKQDr.jpg",
		Director: "Christopher Nolan", Genres: []string{"Action", "Sci-Fi", "Thriller"},
		Cast: []model.CastMember{
			{Name: "Leonardo DiCaprio", Character: "Dom Cobb"},
			{Name: "Joseph Gordon-Levitt", Character: "Arthur"},
			{Name: "Elliot Page", Character: "Ariadne"},
			{Name: "Tom Hardy", Character: "Eames"},
			{Name: "Marion Cotillard", Character: "Mal"},
		},
	},
	{
		ID: "movie-3", Title: "Interstellar",
		Plot:        "When Earth becomes uninhabitable in the future, a farmer and ex-NASA pilot is tasked to pilot a spacecraft to find a new planet for humans.",
		ReleaseYear: 2014, Runtime: 169, Rating: 8.7,
		Poster:   "https://image.tmdb.org/t/p/w500/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
		Backdrop: "https://image.tmdb.org/t/p/original/xu9zaAevzQ5nnrsXN6JcahLnG4i.jpg",
		Director: "Christopher Nolan", Genres: []string{"Adventure", "Drama", "Sci-Fi"},
		Cast: []model.CastMember{
			{Name: "Matthew McConaughey", Character: "Cooper"},
			{Name: "Anne Hathaway", Character: "Dr. Amelia Brand"},
			{Name: "Jessica Chastain", Character: "Murph"},
			{Name: "Michael Caine", Character: "Professor Brand"},
			{Name: "Matt Damon", Character: "Dr. Mann"},
		},
	},
	{
		ID: "movie-4", Title: "Oppenheimer",
		Plot:        "The story of American scientist J. Robert Oppenheimer and his role in the development of the atomic bomb.",
		ReleaseYear: 2023, Runtime: 180, Rating: 8.5,
		Poster:   "https://image.tmdb.org/t/p/w500/8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg",
		Backdrop: "https://image.tmdb.org/t/p/original/nb3xI8XI3w4pMVZ38VijbsyBqP4.jpg",
		Director: "Christopher Nolan", Genres: []string{"Biography", "Drama", "History"},
		Cast: []model.CastMember{
			{Name: "Cillian Murphy", Character: "J. Robert Oppenheimer"},
			{Name: "Emily Blunt", Character: "Kitty Oppenheimer"},
			{Name: "Matt Damon", Character: "Leslie Groves"},
			{Name: "Robert Downey Jr.", Character: "Lewis Strauss"},
			{Name: "Florence Pugh", Character: "Jean Tatlock"},
		},
	},
	{
		ID: "movie-5", Title: "Pulp Fiction",
		Plot:        "The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption.",
		ReleaseYear: 1994, Runtime: 154, Rating: 8.9,
		Poster:   "https://image.tmdb.org/t/p/w500/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg",
		Backdrop: "https://image.tmdb.org/t/p/original/suaEOtk1N1sgg2MTM7oZd2cfVp3.jpg",
		Director: "Quentin Tarantino", Genres: []string{"Crime", "Drama"},
		Cast: []model.CastMember{
			{Name: "John Travolta", Character: "Vincent Vega"},
			{Name: "Samuel L. Jackson", Character: "Jules Winnfield"},
			{Name: "Uma Thurman", Character: "Mia Wallace"},
			{Name: "Bruce Willis", Character: "Butch Coolidge"},
		},
	},
	{
		ID: "movie-11", Title: "The Matrix",
		Plot:        "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.",
		ReleaseYear: 1999, Runtime: 136, Rating: 8.7,
		Poster:   "https://image.tmdb.org/t/p/w500/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
		Backdrop: "https://image.tmdb.org/t/p/original/fNG7i7RqMErkcqhohV2a6cV1Ehy.jpg",
		Director: "Lana Wachowski", Genres: []string{"Action", "Sci-Fi"},
		Cast: []model.CastMember{
			{Name: "Keanu Reeves", Character: "Neo"},
			{Name: "Laurence Fishburne", Character: "Morpheus"},
			{Name: "Carrie-Anne Moss", Character: "Trinity"},
			{Name: "Hugo Weaving", Character: "Agent Smith"},
		},
	},
	{
		ID: "movie-13", Title: "Dune: Part Two",
		Plot:        "Paul Atreides unites with Chani and the Fremen while seeking revenge against the conspirators who destroyed his family.",
		ReleaseYear: 2024, Runtime: 166, Rating: 8.6,
		Poster:   "https://image.tmdb.org/t/p/w500/1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg",
		Backdrop: "https://image.tmdb.org/t/p/original/xOMo8BRK7PfcJv9JCnx7s5hj0PX.jpg",
		Director: "Denis Villeneuve", Genres: []string{"Adventure", "Sci-Fi"},
		Cast: []model.CastMember{
			{Name: "Timothée Chalamet", Character: "Paul Atreides"},
			{Name: "Zendaya", Character: "Chani"},
			{Name: "Rebecca Ferguson", Character: "Lady Jessica"},
			{Name: "Javier Bardem", Character: "Stilgar"},
		},
	},
	{
		ID: "movie-15", Title: "The Shawshank Redemption",
		Plot:        "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
		ReleaseYear: 1994, Runtime: 142, Rating: 9.3,
		Poster:   "https://image.tmdb.org/t/p/w500/9cqNxx0GxF0bflZmeSMuL5tnGzr.jpg",
		Backdrop: "https://image.tmdb.org/t/p/original/kXfqcdQKsToO0OUXHcrrNCHDBzO.jpg",
		Director: "Frank Darabont", Genres: []string{"Drama"},
		Cast: []model.CastMember{
			{Name: "Tim Robbins", Character: "Andy Dufresne"},
			{Name: "Morgan Freeman", Character: "Ellis Boyd 'Red' Redding"},
		},
	},
	{
		ID: "movie-16", Title: "The Godfather",
		Plot:        "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
		ReleaseYear: 1972, Runtime: 175, Rating: 9.2,
		Poster:   "https://image.tmdb.org/t/p/w500/3bhkrj58Vtu7enYsRolD1fZdja1.jpg",
		Backdrop: "https://image.tmdb.org/t/p/original/tmU7GeKVybMWFButWEGl2M4GeiP.jpg",
		Director: "Francis Ford Coppola", Genres: []string{"Crime", "Drama"},
		Cast: []model.CastMember{
			{Name: "Marlon Brando", Character: "Don Vito Corleone"},
			{Name: "Al Pacino", Character: "Michael Corleone"},
			{Name: "James Caan", Character: "Sonny Corleone"},
		},
	},
	{
		ID: "movie-19", Title: "Parasite",
		Plot:        "Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan.",
		ReleaseYear: 2019, Runtime: 132, Rating: 8.5,
		Poster:   "https://image.tmdb.org/t/p/w500/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg",
		Backdrop: "https://image.tmdb.org/t/p/original/TU9NIjwzjoKPwQHoHshkFcQUCG.jpg",
		Director: "Bong Joon-ho", Genres: []string{"Drama", "Thriller"},
		Cast: []model.CastMember{
			{Name: "Song Kang-ho", Character: "Ki-taek"},
			{Name: "Lee Sun-kyun", Character: "Mr. Park"},
			{Name: "Cho Yeo-jeong", Character: "Yeon-kyo"},
		},
	},
}

var users = []seedUser{
	{ID: "user-admin", Username: "admin", Email: "admin@example.com", Password: "admin", Role: model.RoleAdmin},
	{ID: "user-1", Username: "demo", Email: "demo@example.com", Password: "password123", Role: model.RoleUser},
	{ID: "user-2", Username: "moviefan", Email: "fan@example.com", Password: "password123", Role: model.RoleUser},
}

var reviews = []seedReview{
	{UserID: "user-1", MovieID: "movie-11", Rating: 10.0, Text: "The Matrix is a revolutionary masterpiece! It changed cinema forever."},
	{UserID: "user-2", MovieID: "movie-11", Rating: 9.5, Text: "Red pill or blue pill? This movie will blow your mind!"},
	{UserID: "user-1", MovieID: "movie-1", Rating: 9.5, Text: "Heath Ledger's Joker is legendary and defines the superhero genre."},
	{UserID: "user-2", MovieID: "movie-1", Rating: 9.0, Text: "Why so serious? Because this movie is seriously good!"},
	{UserID: "user-1", MovieID: "movie-2", Rating: 9.0, Text: "Mind-bending and visually stunning. The ending still gives me chills."},
	{UserID: "user-1", MovieID: "movie-15", Rating: 10.0, Text: "The greatest movie ever made. A story of hope and perseverance."},
	{UserID: "user-2", MovieID: "movie-16", Rating: 9.5, Text: "An offer you can't refuse - to watch this masterpiece."},
	{UserID: "user-2", MovieID: "movie-13", Rating: 9.0, Text: "Dune Part Two exceeded all expectations. Visually stunning!"},
	{UserID: "user-1", MovieID: "movie-19", Rating: 9.0, Text: "Parasite deserved every Oscar it won. A perfect film."},
	{UserID: "user-2", MovieID: "movie-4", Rating: 8.5, Text: "Cillian Murphy delivers an Oscar-worthy performance."},
}

// movie -> simulated view count per user.
var views = map[string]int{
	"movie-11": 8, "movie-1": 5, "movie-2": 4, "movie-4": 6, "movie-13": 7, "movie-19": 3,
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Default()
	cfg.ApplyEnvOverrides()

	ctx := context.Background()

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password, logger)
	if err != nil {
		logger.Fatal("failed to connect to Neo4j", zap.Error(err))
	}
	defer d.Close(ctx)

	if err := d.BuildConstraints(ctx); err != nil {
		logger.Fatal("failed to create constraints", zap.Error(err))
	}

	for _, m := range movies {
		if err := seedOneMovie(ctx, d, m); err != nil {
			logger.Fatal("failed to seed movie", zap.String("id", m.ID), zap.Error(err))
		}
	}
	logger.Info("movies seeded", zap.Int("count", len(movies)))

	for _, u := range users {
		hash, err := auth.HashPassword(u.Password, cfg.Auth.BcryptCost)
		if err != nil {
			logger.Fatal("failed to hash password", zap.Error(err))
		}
		_, err = d.ExecuteQuery(ctx, `
			MERGE (u:User {id: $id})
			ON CREATE SET u.username = $username, u.email = $email,
				u.password = $password, u.role = $role, u.createdAt = datetime()
		`, map[string]interface{}{
			"id": u.ID, "username": u.Username, "email": u.Email,
			"password": hash, "role": u.Role,
		})
		if err != nil {
			logger.Fatal("failed to seed user", zap.String("email", u.Email), zap.Error(err))
		}
	}
	logger.Info("users seeded", zap.Int("count", len(users)))

	for i, r := range reviews {
		_, err := d.ExecuteQuery(ctx, `
			MATCH (u:User {id: $userId}), (m:Movie {id: $movieId})
			MERGE (u)-[rev:REVIEWED]->(m)
			ON CREATE SET rev.id = $reviewId, rev.rating = $rating,
				rev.text = $text, rev.createdAt = datetime()
		`, map[string]interface{}{
			"userId": r.UserID, "movieId": r.MovieID,
			"reviewId": seedReviewID(i), "rating": r.Rating, "text": r.Text,
		})
		if err != nil {
			logger.Fatal("failed to seed review", zap.Error(err))
		}
	}
	logger.Info("reviews seeded", zap.Int("count", len(reviews)))

	for movieID, count := range views {
		_, err := d.ExecuteQuery(ctx, `
			MATCH (u:User {id: 'user-1'}), (m:Movie {id: $movieId})
			MERGE (u)-[v:VIEWED]->(m)
			ON CREATE SET v.date = datetime(), v.count = $count
		`, map[string]interface{}{"movieId": movieID, "count": count})
		if err != nil {
			logger.Fatal("failed to seed views", zap.Error(err))
		}
	}
	logger.Info("views seeded")

	logger.Info("seed complete",
		zap.String("admin", "admin@example.com / admin"),
		zap.String("demo", "demo@example.com / password123"))
}

func seedReviewID(i int) string {
	return fmt.Sprintf("seed-review-%d", i+1)
}

func seedOneMovie(ctx context.Context, d *driver.Neo4jDriver, m seedMovie) error {
	return d.ExecuteWrite(ctx, func(ctx context.Context, tx driver.Tx) error {
		_, err := tx.Run(ctx, `
			MERGE (m:Movie {id: $id})
			SET m.title = $title, m.plot = $plot, m.releaseYear = $releaseYear,
				m.runtime = $runtime, m.rating = $rating,
				m.poster = $poster, m.backdrop = $backdrop
		`, map[string]interface{}{
			"id": m.ID, "title": m.Title, "plot": m.Plot,
			"releaseYear": m.ReleaseYear, "runtime": m.Runtime, "rating": m.Rating,
			"poster": m.Poster, "backdrop": m.Backdrop,
		})
		if err != nil {
			return err
		}

		if _, err := tx.Run(ctx, driver.MergeMovieDirectorQuery, map[string]interface{}{
			"movieId": m.ID, "directorName": m.Director,
		}); err != nil {
			return err
		}

		for _, g := range m.Genres {
			if _, err := tx.Run(ctx, driver.MergeMovieGenreQuery, map[string]interface{}{
				"movieId": m.ID, "genreName": g,
			}); err != nil {
				return err
			}
		}

		for _, c := range m.Cast {
			if _, err := tx.Run(ctx, driver.MergeMovieActorQuery, map[string]interface{}{
				"movieId": m.ID, "actorName": c.Name, "character": c.Character,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
