package model

import "time"

// User represents a guest account as stored in the `users` table.  Each
// field corresponds to a column.  JSON tags are omitted because these
// structs are used internally by the repository layer; handlers define
// separate response types that never include the password hash.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Email        – unique email address, lower-cased on write.
//	PasswordHash – bcrypt hashed password.
//	FirstName    – given name.
//	LastName     – family name.
//	Phone        – optional contact number (nil when not provided).
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	FirstName    string    // users.first_name
	LastName     string    // users.last_name
	Phone        *string   // users.phone (nullable)
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
