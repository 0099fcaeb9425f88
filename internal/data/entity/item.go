package entity

type Item struct {
	Base
	Name        string  `db:"name"`
	Description *string `db:"description"`
	ImageURL    *string `db:"image_url"`
	Category    *string `db:"category"`
	Year        *int    `db:"year"`
}
