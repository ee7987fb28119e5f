package driver

// Cypher executed by the catalog service. Filtered list queries are
// assembled at runtime; everything static lives here.

const (
	MovieDetailQuery = `
		MATCH (m:Movie {id: $id})
		OPTIONAL MATCH (m)-[:DIRECTED_BY]->(d:Director)
		OPTIONAL MATCH (m)-[ha:HAS_ACTOR]->(a:Actor)
		OPTIONAL MATCH (m)-[:IN_GENRE]->(g:Genre)
		OPTIONAL MATCH (m)<-[r:REVIEWED]-(u:User)
		WITH m, d,
			collect(DISTINCT {name: a.name, character: ha.character}) AS cast,
			collect(DISTINCT g.name) AS genres,
			avg(r.rating) AS avgRating,
			count(r) AS reviewCount
		RETURN m, d.name AS director, cast, genres, avgRating, reviewCount
	`

	MovieConnectionsQuery = `
		MATCH (m:Movie {id: $id})
		OPTIONAL MATCH (m)-[:HAS_ACTOR]->(a:Actor)<-[:HAS_ACTOR]-(related:Movie)
		WHERE related.id <> m.id
		WITH m, related, count(a) AS sharedActors
		ORDER BY sharedActors DESC LIMIT 5
		OPTIONAL MATCH (m)-[:DIRECTED_BY]->(d:Director)<-[:DIRECTED_BY]-(sameDirector:Movie)
		WHERE sameDirector.id <> m.id
		RETURN m,
			collect(DISTINCT {movie: related, sharedActors: sharedActors}) AS relatedByActors,
			collect(DISTINCT sameDirector) AS relatedByDirector
	`

	GenreNamesQuery = `MATCH (g:Genre) RETURN g.name AS name ORDER BY name`

	CreateMovieQuery = `
		CREATE (m:Movie {
			id: $id,
			title: $title,
			plot: $plot,
			releaseYear: $releaseYear,
			runtime: $runtime,
			rating: $rating,
			poster: $poster,
			backdrop: $backdrop
		})
		RETURN m
	`

	MergeMovieDirectorQuery = `
		MATCH (m:Movie {id: $movieId})
		MERGE (d:Director {name: $directorName})
		MERGE (m)-[:DIRECTED_BY]->(d)
	`

	MergeMovieGenreQuery = `
		MATCH (m:Movie {id: $movieId})
		MERGE (g:Genre {name: $genreName})
		MERGE (m)-[:IN_GENRE]->(g)
	`

	UpdateMoviePropsQuery = `
		MATCH (m:Movie {id: $id})
		SET m += $props
		RETURN m
	`

	RewireMovieDirectorQuery = `
		MATCH (m:Movie {id: $id})
		OPTIONAL MATCH (m)-[r:DIRECTED_BY]->()
		DELETE r
		WITH m
		MATCH (d:Director {name: $directorName})
		MERGE (m)-[:DIRECTED_BY]->(d)
	`

	ClearMovieGenresQuery = `
		MATCH (m:Movie {id: $id})
		OPTIONAL MATCH (m)-[r:IN_GENRE]->()
		DELETE r
	`

	LinkMovieGenreQuery = `
		MATCH (m:Movie {id: $id})
		MATCH (g:Genre {name: $genreName})
		MERGE (m)-[:IN_GENRE]->(g)
	`

	MergeMovieActorQuery = `
		MATCH (m:Movie {id: $movieId})
		MERGE (a:Actor {name: $actorName})
		MERGE (m)-[r:HAS_ACTOR]->(a)
		SET r.character = $character
	`

	ClearMovieActorsQuery = `
		MATCH (m:Movie {id: $id})
		OPTIONAL MATCH (m)-[r:HAS_ACTOR]->()
		DELETE r
	`

	DeleteMovieQuery = `
		MATCH (m:Movie {id: $id})
		DETACH DELETE m
	`

	MovieReviewsQuery = `
		MATCH (u:User)-[r:REVIEWED]->(m:Movie {id: $movieId})
		RETURN r, u.username AS username, u.id AS userId
		ORDER BY r.createdAt DESC
	`

	ExistingReviewQuery = `
		MATCH (u:User {id: $userId})-[r:REVIEWED]->(m:Movie {id: $movieId})
		RETURN r
	`

	UpdateReviewQuery = `
		MATCH (u:User {id: $userId})-[r:REVIEWED]->(m:Movie {id: $movieId})
		SET r.rating = $rating, r.text = $text, r.updatedAt = datetime()
		RETURN r, u.username AS username
	`

	CreateReviewQuery = `
		MATCH (u:User {id: $userId}), (m:Movie {id: $movieId})
		CREATE (u)-[r:REVIEWED {
			id: $reviewId,
			rating: $rating,
			text: $text,
			createdAt: datetime()
		}]->(m)
		RETURN r, u.username AS username
	`

	DeleteOwnReviewQuery = `
		MATCH (u:User {id: $userId})-[r:REVIEWED {id: $reviewId}]->(m:Movie)
		DELETE r
		RETURN count(r) AS deleted
	`

	HighestRatedQuery = `
		MATCH (m:Movie)<-[r:REVIEWED]-(u:User)
		WITH m, avg(r.rating) AS avgRating, count(r) AS reviewCount
		WHERE reviewCount >= 1
		OPTIONAL MATCH (m)-[:IN_GENRE]->(g:Genre)
		WITH m, avgRating, reviewCount, collect(DISTINCT g.name) AS genres
		RETURN m, avgRating, reviewCount, genres
		ORDER BY avgRating DESC, reviewCount DESC
		LIMIT 10
	`

	MostViewedQuery = `
		MATCH (m:Movie)<-[v:VIEWED]-(u:User)
		WITH m, count(v) AS viewCount
		OPTIONAL MATCH (m)-[:IN_GENRE]->(g:Genre)
		WITH m, viewCount, collect(DISTINCT g.name) AS genres
		RETURN m, viewCount, genres
		ORDER BY viewCount DESC
		LIMIT 10
	`

	RecentReleasesQuery = `
		MATCH (m:Movie)
		WHERE m.releaseYear >= $sinceYear
		OPTIONAL MATCH (m)<-[r:REVIEWED]-(u:User)
		OPTIONAL MATCH (m)-[:IN_GENRE]->(g:Genre)
		WITH m, avg(r.rating) AS avgRating, count(r) AS reviewCount, collect(DISTINCT g.name) AS genres
		RETURN m, avgRating, reviewCount, genres
		ORDER BY m.releaseYear DESC, avgRating DESC
		LIMIT 10
	`

	FeaturedQuery = `
		MATCH (m:Movie)
		OPTIONAL MATCH (m)<-[r:REVIEWED]-(u:User)
		OPTIONAL MATCH (m)<-[v:VIEWED]-(u2:User)
		OPTIONAL MATCH (m)-[:IN_GENRE]->(g:Genre)
		WITH m,
			coalesce(avg(r.rating), 0) AS avgRating,
			count(DISTINCT r) AS reviewCount,
			count(DISTINCT v) AS viewCount,
			collect(DISTINCT g.name) AS genres
		WITH m, avgRating, reviewCount, viewCount, genres,
			(avgRating * 0.5) + (reviewCount * 0.3) + (viewCount * 0.2) AS trendScore
		RETURN m, avgRating, reviewCount, viewCount, genres, trendScore
		ORDER BY trendScore DESC
		LIMIT 10
	`

	TrackUserViewQuery = `
		MATCH (u:User {id: $userId}), (m:Movie {id: $movieId})
		MERGE (u)-[v:VIEWED]->(m)
		ON CREATE SET v.date = datetime(), v.count = 1
		ON MATCH SET v.date = datetime(), v.count = coalesce(v.count, 0) + 1
	`

	TrackAnonymousViewQuery = `
		MATCH (m:Movie {id: $movieId})
		SET m.anonymousViews = coalesce(m.anonymousViews, 0) + 1
	`

	UserByEmailQuery = `MATCH (u:User {email: $email}) RETURN u`

	UserByIDQuery = `MATCH (u:User {id: $userId}) RETURN u`

	CreateUserQuery = `
		CREATE (u:User {
			id: $userId,
			username: $username,
			email: $email,
			password: $password,
			role: $role,
			createdAt: datetime()
		}) RETURN u
	`

	AdminUsersQuery = `
		MATCH (u:User)
		OPTIONAL MATCH (u)-[r:REVIEWED]->()
		WITH u, count(r) AS reviewCount
		RETURN u, reviewCount
		ORDER BY u.createdAt DESC
	`

	UpdateUserQuery = `
		MATCH (u:User {id: $id})
		SET u += $updates
		RETURN u
	`

	DeleteUserQuery = `
		MATCH (u:User {id: $id})
		DETACH DELETE u
	`

	AdminReviewsQuery = `
		MATCH (u:User)-[r:REVIEWED]->(m:Movie)
		RETURN r, u.username AS username, u.email AS userEmail, m.title AS movieTitle, m.id AS movieId
		ORDER BY r.createdAt DESC
	`

	AdminDeleteReviewQuery = `
		MATCH ()-[r:REVIEWED {id: $id}]->()
		DELETE r
		RETURN count(r) AS deleted
	`

	StatsTotalsQuery = `
		MATCH (m:Movie) WITH count(m) AS movies
		MATCH (a:Actor) WITH movies, count(a) AS actors
		MATCH (d:Director) WITH movies, actors, count(d) AS directors
		MATCH (g:Genre) WITH movies, actors, directors, count(g) AS genres
		MATCH (u:User) WITH movies, actors, directors, genres, count(u) AS users
		OPTIONAL MATCH ()-[r:REVIEWED]->()
		RETURN movies, actors, directors, genres, users, count(r) AS reviews
	`

	MoviesByYearQuery = `
		MATCH (m:Movie)
		WHERE m.releaseYear >= $sinceYear
		RETURN m.releaseYear AS year, count(m) AS count
		ORDER BY year DESC
	`

	MoviesByGenreQuery = `
		MATCH (m:Movie)-[:IN_GENRE]->(g:Genre)
		RETURN g.name AS genre, count(m) AS count
		ORDER BY count DESC
		LIMIT 10
	`

	TopDirectorsQuery = `
		MATCH (m:Movie)-[:DIRECTED_BY]->(d:Director)
		RETURN d.name AS director, count(m) AS movieCount
		ORDER BY movieCount DESC
		LIMIT 10
	`

	TopRatedQuery = `
		MATCH (m:Movie)<-[r:REVIEWED]-()
		WITH m, avg(r.rating) AS avgRating, count(r) AS reviewCount
		WHERE reviewCount >= 2
		RETURN m.title AS title, avgRating, reviewCount
		ORDER BY avgRating DESC
		LIMIT 10
	`
)

// Actor, Director and Genre admin screens share the same four statements,
// parameterized by node label and the relationship pointing at it. Labels
// cannot be query parameters in Cypher, so these are format templates filled
// from a fixed set in the catalog package.
const (
	NamedEntityListQueryTmpl = `
		MATCH (n:%s)
		OPTIONAL MATCH (m:Movie)-[:%s]->(n)
		WITH n, count(m) AS movieCount
		RETURN n, movieCount
		ORDER BY n.name
	`

	NamedEntityCreateQueryTmpl = `CREATE (n:%s {name: $name}) RETURN n`

	NamedEntityRenameQueryTmpl = `
		MATCH (n:%s {name: $name})
		SET n.name = $newName
		RETURN n
	`

	NamedEntityDeleteQueryTmpl = `
		MATCH (n:%s {name: $name})
		DETACH DELETE n
	`
)
