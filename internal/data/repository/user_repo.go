package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Store[entity.User]
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

var userTable = table[entity.User]{
	name:    "users",
	kind:    "user",
	columns: []string{"username", "email", "password_hash", "password_salt"},
	orderBy: "id",
	newItem: func() *entity.User { return &entity.User{} },
	base:    func(u *entity.User) *entity.Base { return u.Record() },
	values: func(u *entity.User) []any {
		return []any{u.Username, u.Email, u.PasswordHash, u.PasswordSalt}
	},
	fields: func(u *entity.User) []any {
		return []any{&u.Username, &u.Email, &u.PasswordHash, &u.PasswordSalt}
	},
}

type userRepository struct {
	*crudStore[entity.User]
}

func NewUserRepository(db database.Querier, log *zap.Logger) UserRepository {
	return &userRepository{crudStore: newCrudStore(db, log, userTable)}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findBy(ctx, "username", username)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *userRepository) findBy(ctx context.Context, column, value string) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, r.t.selectColumns(""), column)

	user, err := r.scanOne(r.db.QueryRow(ctx, query, value))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user", zap.Error(err), zap.String(column, value))
		return nil, fmt.Errorf("find user by %s: %w", column, err)
	}

	return user, nil
}
