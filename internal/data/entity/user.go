package entity

// User is created only by seeding and is immutable in this service.
// Password is a plaintext-equivalent secret used for comparison at login only.
type User struct {
	Base
	Email    string `db:"email"`
	Name     string `db:"name"`
	Password string `db:"password"`
}
