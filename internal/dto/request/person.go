package request

import (
	"time"

	"movie-catalog/pkg/utils"
)

// PersonRequest is shared by actor and director create/update payloads.
type PersonRequest struct {
	Name        string  `json:"name" validate:"required,notblank,max=100"`
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02,notfuture"`
	Bio         string  `json:"bio" validate:"max=2000"`
}

// BirthDate parses DateOfBirth. A nil or empty value yields nil.
func (r PersonRequest) BirthDate() (*time.Time, error) {
	if r.DateOfBirth == nil || *r.DateOfBirth == "" {
		return nil, nil
	}
	t, err := time.Parse(utils.DateLayout, *r.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
