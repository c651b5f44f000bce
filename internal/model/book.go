package model

import "time"

// BookStatus is the catalog lifecycle flag. Books are never physically
// deleted; retiring a book hides it from the catalog and refuses new loans.
type BookStatus string

const (
	BookStatusActive  BookStatus = "active"
	BookStatusRetired BookStatus = "retired"
)

// Book is a catalog item. TotalCopies is fixed by catalog edits only;
// AvailableCopies is owned by the loan lifecycle and always stays within
// [0, TotalCopies].
type Book struct {
	ID              int64      `db:"id"`
	Title           string     `db:"title"`
	Author          string     `db:"author"`
	ISBN            string     `db:"isbn"`
	Category        string     `db:"category"`
	Pages           int        `db:"pages"`
	Description     string     `db:"description"`
	TotalCopies     int        `db:"total_copies"`
	AvailableCopies int        `db:"available_copies"`
	Status          BookStatus `db:"status"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}
