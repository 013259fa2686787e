package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/sepehrda/message-wall/internal/auth"
	"github.com/sepehrda/message-wall/internal/model"
)

// ErrUsernameTaken is returned by Create when the username column's unique
// index rejects the insert.
var ErrUsernameTaken = errors.New("username already exists")

// UserRepo persists accounts. Password hashing happens here so no caller can
// accidentally store a plain password.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password, inserts the user and fills the generated id,
// hash and creation timestamp on u. Duplicate usernames surface as
// ErrUsernameTaken; MySQL reports them as error 1062.
func (r *UserRepo) Create(ctx context.Context, u *model.User, password string, cost int) error {
	u.Username = strings.TrimSpace(u.Username)
	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, role, gender, age, avatar) VALUES (?,?,?,?,?,?)",
		u.Username, hash, u.Role, u.Gender, u.Age, u.Avatar)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrUsernameTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	u.PasswordHash = hash
	// Query back the row to pick up the database-assigned timestamp.
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM users WHERE id = ?", u.ID).Scan(&u.CreatedAt)
}

// GetByUsername fetches a user by exact username. Missing rows surface as
// sql.ErrNoRows.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.TrimSpace(username)
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role, gender, age, avatar, created_at FROM users WHERE username = ? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Gender, &u.Age, &u.Avatar, &u.CreatedAt)
	return u, err
}
