package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/edu-consultancy/internal/model"
)

const userColumns = `id, name, username, email, password, role, created_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, bool, error) {
	user, found, err := queryOne[model.User](ctx, r.db,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, false, fmt.Errorf("finding user %d: %w", id, err)
	}
	return user, found, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users, err := queryAll[model.User](ctx, r.db, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	exists, err := existsByID(ctx, r.db, "users", id)
	if err != nil {
		return false, fmt.Errorf("checking user %d: %w", id, err)
	}
	return exists, nil
}

// Save inserts u when it has no id yet and updates it otherwise. The
// password column is written as given, callers store hashes only.
func (r *UserRepository) Save(ctx context.Context, u *model.User) (*model.User, error) {
	if u.ID == 0 {
		saved, err := mustReturn[model.User](ctx, r.db, `
			INSERT INTO users (name, username, email, password, role)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+userColumns,
			u.Name, u.Username, u.Email, u.Password, string(u.Role))
		if err != nil {
			return nil, fmt.Errorf("inserting user: %w", err)
		}
		return saved, nil
	}

	saved, err := mustReturn[model.User](ctx, r.db, `
		UPDATE users
		SET name = $2, username = $3, email = $4, password = $5, role = $6
		WHERE id = $1
		RETURNING `+userColumns,
		u.ID, u.Name, u.Username, u.Email, u.Password, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("updating user %d: %w", u.ID, err)
	}
	return saved, nil
}

// DeleteByID removes the user. Contacts and feedback cascade.
func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, "users", id); err != nil {
		return fmt.Errorf("deleting user %d: %w", id, err)
	}
	return nil
}
