package repository

import (
	"context"
	"database/sql"

	"github.com/peirisgrand/resort-api/internal/model"
)

type AboutRepo struct{ DB *sql.DB }

func NewAboutRepo(db *sql.DB) *AboutRepo { return &AboutRepo{DB: db} }

// List returns every about section in store order.
func (r *AboutRepo) List(ctx context.Context) ([]model.AboutSection, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,title,content,section,created_at,updated_at FROM about_us")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.AboutSection, 0)
	for rows.Next() {
		var s model.AboutSection
		if err := rows.Scan(&s.ID, &s.Title, &s.Content, &s.Section, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a section; used by the seeder only.
func (r *AboutRepo) Create(ctx context.Context, title, content, section string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO about_us (title,content,section) VALUES (?,?,?)",
		title, content, section)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
