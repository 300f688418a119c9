package response

import (
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/utils"
)

// PersonResponse represents an actor or a director.
type PersonResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	DateOfBirth *string    `json:"date_of_birth"`
	Bio         string     `json:"bio"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  *time.Time `json:"modified_at,omitempty"`
}

func PersonToResponse(p *entity.Person) PersonResponse {
	resp := PersonResponse{
		ID:         p.ID,
		Name:       p.Name,
		Bio:        p.Bio,
		CreatedAt:  p.CreatedAt,
		ModifiedAt: p.ModifiedAt,
	}
	if p.DateOfBirth != nil {
		dob := p.DateOfBirth.Format(utils.DateLayout)
		resp.DateOfBirth = &dob
	}
	return resp
}
