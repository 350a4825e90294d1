package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/peirisgrand/resort-api/internal/model"
	"github.com/peirisgrand/resort-api/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password, inserts the user and returns its ID.  The
// email is normalized to lower case before the insert so the unique index
// catches duplicates regardless of caller casing.
func (r *UserRepo) Create(ctx context.Context, email, password, firstName, lastName string, phone *string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, first_name, last_name, phone) VALUES (?,?,?,?,?)",
		email, hash, firstName, lastName, nullableStr(phone))
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,first_name,last_name,phone,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,first_name,last_name,phone,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id))
}

// UpdateProfile writes the mutable profile fields and bumps updated_at.
// Callers load the current row first and apply partial changes, so every
// field is written back unconditionally here.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uint64, firstName, lastName string, phone *string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET first_name=?, last_name=?, phone=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		firstName, lastName, nullableStr(phone), id)
	return err
}

func (r *UserRepo) scanOne(row *sql.Row) (model.User, error) {
	var u model.User
	var phone sql.NullString
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &phone, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	if phone.Valid {
		u.Phone = &phone.String
	}
	return u, nil
}

// nullableStr converts an optional string into a driver-friendly value.
func nullableStr(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
