package response

import "movie-catalog/internal/data/entity"

type MovieResponse struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	ReleaseYear    int        `json:"release_year"`
	Plot           string     `json:"plot"`
	RuntimeMinutes int        `json:"runtime_minutes"`
	PosterURL      string     `json:"poster_url"`
	DirectorID     *int64     `json:"director_id"`
	DirectorName   string     `json:"director_name"`
	Genres         []NamedRef `json:"genres"`
	Actors         []NamedRef `json:"actors"`
}

// NamedRef is the id and display name of an associated record.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	resp := MovieResponse{
		ID:             movie.ID,
		Title:          movie.Title,
		ReleaseYear:    movie.ReleaseYear,
		Plot:           movie.Plot,
		RuntimeMinutes: movie.RuntimeMinutes,
		PosterURL:      movie.PosterURL,
		DirectorID:     movie.DirectorID,
		Genres:         make([]NamedRef, len(movie.Genres)),
		Actors:         make([]NamedRef, len(movie.Actors)),
	}

	if movie.Director != nil {
		resp.DirectorName = movie.Director.Name
	}
	for i, g := range movie.Genres {
		resp.Genres[i] = NamedRef{ID: g.ID, Name: g.Name}
	}
	for i, a := range movie.Actors {
		resp.Actors[i] = NamedRef{ID: a.ID, Name: a.Name}
	}

	return resp
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieToResponse(m)
	}
	return out
}
