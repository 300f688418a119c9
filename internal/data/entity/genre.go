package entity

type Genre struct {
	Base
	Name        string `db:"name"`
	Description string `db:"description"`
}

func NewGenre() *Genre {
	return &Genre{Base: NewBase()}
}
