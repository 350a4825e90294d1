package model

import "time"

// AboutSection is a static content block from the `about_us` table, shown on
// the public about page.
type AboutSection struct {
	ID        uint64    // about_us.id
	Title     string    // about_us.title
	Content   string    // about_us.content
	Section   string    // about_us.section
	CreatedAt time.Time // about_us.created_at
	UpdatedAt time.Time // about_us.updated_at
}
