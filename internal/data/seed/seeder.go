// Package seed fills an empty catalog with a small demo data set.
package seed

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

const (
	DemoUsername = "admin"
	DemoEmail    = "admin@example.com"
	DemoPassword = "Password123"
)

type person struct {
	name string
	born string
	bio  string
}

var (
	genres = []struct{ name, description string }{
		{"Action", "Action films"},
		{"Comedy", "Comedy films"},
		{"Drama", "Drama films"},
		{"Science Fiction", "Science Fiction films"},
		{"Horror", "Horror films"},
		{"Thriller", "Thriller films"},
		{"Romance", "Romance films"},
	}

	directors = []person{
		{"Christopher Nolan", "1970-07-30", "British-American film director known for mind-bending narratives"},
		{"Quentin Tarantino", "1963-03-27", "American film director known for nonlinear storytelling"},
		{"Steven Spielberg", "1946-12-18", "American film director and producer"},
	}

	actors = []person{
		{"Leonardo DiCaprio", "1974-11-11", "American actor known for intense performances"},
		{"Tom Hanks", "1956-07-09", "American actor and filmmaker"},
		{"Meryl Streep", "1949-06-22", "American actress known for versatility"},
		{"Brad Pitt", "1963-12-18", "American actor and producer"},
	}

	movies = []struct {
		title    string
		year     int
		plot     string
		runtime  int
		poster   string
		director string
		genres   []string
		actors   []string
	}{
		{
			title:    "Inception",
			year:     2010,
			plot:     "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
			runtime:  148,
			poster:   "https://example.com/inception.jpg",
			director: "Christopher Nolan",
			genres:   []string{"Science Fiction", "Thriller"},
			actors:   []string{"Leonardo DiCaprio"},
		},
		{
			title:    "Interstellar",
			year:     2014,
			plot:     "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
			runtime:  169,
			poster:   "https://example.com/interstellar.jpg",
			director: "Christopher Nolan",
			genres:   []string{"Science Fiction", "Drama"},
		},
	}
)

// Seeder inserts each kind of record only while its table is still empty.
type Seeder struct {
	db     database.Querier
	repo   *repository.Repository
	hasher utils.PasswordHasher
	log    *zap.Logger
}

func NewSeeder(db database.Querier, repo *repository.Repository, hasher utils.PasswordHasher, log *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		repo:   repo,
		hasher: hasher,
		log:    log.With(zap.String("component", "seeder")),
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	steps := []struct {
		table string
		run   func(context.Context) error
	}{
		{"genres", s.seedGenres},
		{"directors", s.seedDirectors},
		{"actors", s.seedActors},
		{"movies", s.seedMovies},
		{"users", s.seedUsers},
	}

	for _, step := range steps {
		empty, err := s.isEmpty(ctx, step.table)
		if err != nil {
			return err
		}
		if !empty {
			s.log.Debug("Table already populated", zap.String("table", step.table))
			continue
		}

		if err := step.run(ctx); err != nil {
			s.log.Error("Failed to seed table", zap.String("table", step.table), zap.Error(err))
			return fmt.Errorf("seed %s: %w", step.table, err)
		}
		s.log.Info("Table seeded", zap.String("table", step.table))
	}

	return nil
}

func (s *Seeder) isEmpty(ctx context.Context, table string) (bool, error) {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s)`, table)
	if err := s.db.QueryRow(ctx, query).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s: %w", table, err)
	}
	return !exists, nil
}

func (s *Seeder) seedGenres(ctx context.Context) error {
	for _, g := range genres {
		genre := entity.NewGenre()
		genre.Name = g.name
		genre.Description = g.description
		if _, err := s.repo.Genre.Add(ctx, genre); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedDirectors(ctx context.Context) error {
	for _, p := range directors {
		director := entity.NewDirector()
		if err := fill(&director.Person, p); err != nil {
			return err
		}
		if _, err := s.repo.Director.Add(ctx, director); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedActors(ctx context.Context) error {
	for _, p := range actors {
		actor := entity.NewActor()
		if err := fill(&actor.Person, p); err != nil {
			return err
		}
		if _, err := s.repo.Actor.Add(ctx, actor); err != nil {
			return err
		}
	}
	return nil
}

func fill(dst *entity.Person, p person) error {
	born, err := time.Parse(utils.DateLayout, p.born)
	if err != nil {
		return fmt.Errorf("date of birth for %s: %w", p.name, err)
	}
	dst.Name = p.name
	dst.DateOfBirth = &born
	dst.Bio = p.bio
	return nil
}

// seedMovies resolves references by name, so it also works against
// genres, directors and actors that were created by hand.
func (s *Seeder) seedMovies(ctx context.Context) error {
	genreIDs, err := idsByName(ctx, s.repo.Genre, func(g *entity.Genre) (string, int64) { return g.Name, g.ID })
	if err != nil {
		return err
	}
	directorIDs, err := idsByName(ctx, s.repo.Director, func(d *entity.Director) (string, int64) { return d.Name, d.ID })
	if err != nil {
		return err
	}
	actorIDs, err := idsByName(ctx, s.repo.Actor, func(a *entity.Actor) (string, int64) { return a.Name, a.ID })
	if err != nil {
		return err
	}

	return s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		for _, m := range movies {
			movie := entity.NewMovie()
			movie.Title = m.title
			movie.ReleaseYear = m.year
			movie.Plot = m.plot
			movie.RuntimeMinutes = m.runtime
			movie.PosterURL = m.poster
			if id, ok := directorIDs[m.director]; ok {
				movie.DirectorID = &id
			}

			if _, err := tx.Movie.Add(ctx, movie); err != nil {
				return err
			}
			if err := tx.MovieGenre.Add(ctx, movie.ID, pick(genreIDs, m.genres)); err != nil {
				return err
			}
			if err := tx.MovieActor.Add(ctx, movie.ID, pick(actorIDs, m.actors)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	hash, salt, err := s.hasher.Hash(DemoPassword)
	if err != nil {
		return err
	}

	user := entity.NewUser()
	user.Username = DemoUsername
	user.Email = DemoEmail
	user.PasswordHash = hash
	user.PasswordSalt = salt

	_, err = s.repo.User.Add(ctx, user)
	return err
}

// idsByName keeps the lowest id when a name is not unique.
func idsByName[T any](ctx context.Context, store repository.Store[T], key func(*T) (string, int64)) (map[string]int64, error) {
	items, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(items))
	for _, item := range items {
		name, id := key(item)
		if prev, seen := ids[name]; !seen || id < prev {
			ids[name] = id
		}
	}
	return ids, nil
}

func pick(ids map[string]int64, names []string) []int64 {
	out := make([]int64, 0, len(names))
	for _, n := range names {
		if id, ok := ids[n]; ok {
			out = append(out, id)
		}
	}
	return out
}
