package models

// Item is a single piece of user content on the board.
// Identity is the ID; Content is free text the user may edit.
type Item struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}
