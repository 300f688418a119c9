package request

// MovieRequest is the full-replacement payload for creating or updating a movie.
// Unknown genre and actor ids are dropped by the service.
type MovieRequest struct {
	Title          string  `json:"title" validate:"required,notblank,max=200"`
	ReleaseYear    int     `json:"release_year" validate:"releaseyear"`
	Plot           string  `json:"plot" validate:"max=2000"`
	RuntimeMinutes int     `json:"runtime_minutes" validate:"gt=0"`
	PosterURL      string  `json:"poster_url" validate:"max=500"`
	DirectorID     *int64  `json:"director_id,omitempty" validate:"omitempty,gt=0"`
	GenreIDs       []int64 `json:"genre_ids" validate:"omitempty,max=100,dive,gt=0"`
	ActorIDs       []int64 `json:"actor_ids" validate:"omitempty,max=100,dive,gt=0"`
}
