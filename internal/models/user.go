package models

// User for the users table. Rows are created implicitly the first time an
// email requests a login code and are never deleted.
type User struct {
	ID    int64
	Email string
}
