package entity

type Movie struct {
	Base
	Title          string `db:"title"`
	ReleaseYear    int    `db:"release_year"`
	Plot           string `db:"plot"`
	RuntimeMinutes int    `db:"runtime_minutes"`
	PosterURL      string `db:"poster_url"`
	DirectorID     *int64 `db:"director_id"`

	// Eager-loaded associations, populated by the movie store.
	Director *Director
	Genres   []*Genre
	Actors   []*Actor
}

func NewMovie() *Movie {
	return &Movie{Base: NewBase()}
}

func (m *Movie) GenreIDs() []int64 {
	ids := make([]int64, len(m.Genres))
	for i, g := range m.Genres {
		ids[i] = g.ID
	}
	return ids
}

func (m *Movie) ActorIDs() []int64 {
	ids := make([]int64, len(m.Actors))
	for i, a := range m.Actors {
		ids[i] = a.ID
	}
	return ids
}
