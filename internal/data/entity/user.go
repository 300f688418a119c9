package entity

type User struct {
	Base
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash []byte `db:"password_hash"`
	PasswordSalt []byte `db:"password_salt"`
}

func NewUser() *User {
	return &User{Base: NewBase()}
}
