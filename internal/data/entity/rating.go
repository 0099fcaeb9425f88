package entity

type Rating struct {
	Base
	ItemID  string  `db:"item_id"`
	UserID  string  `db:"user_id"`
	Score   int     `db:"score"` // 1-5
	Comment *string `db:"comment"`
}
