package entity

import "time"

// Person holds the fields actors and directors have in common.
type Person struct {
	Base
	Name        string     `db:"name"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	Bio         string     `db:"bio"`
}

type Actor struct {
	Person
}

type Director struct {
	Person
}

func NewActor() *Actor {
	return &Actor{Person: Person{Base: NewBase()}}
}

func NewDirector() *Director {
	return &Director{Person: Person{Base: NewBase()}}
}
