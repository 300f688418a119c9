package response

import "movie-catalog/internal/data/entity"

type GenreResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Helper converter
func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:          genre.ID,
		Name:        genre.Name,
		Description: genre.Description,
	}
}

func GenresToResponse(genres []*entity.Genre) []GenreResponse {
	out := make([]GenreResponse, len(genres))
	for i, g := range genres {
		out[i] = GenreToResponse(g)
	}
	return out
}
