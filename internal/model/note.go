package model

import "time"

// NoteID uniquely identifies a note
type NoteID string

// Note is a study note. Public notes are visible to every user (teachers
// publish material this way); private notes only to their author.
type Note struct {
	ID       NoteID
	AuthorID ProfileID
	Title    string
	Content  string
	Subject  string
	Summary  string
	Tags     []string
	Public   bool

	CreatedAt time.Time
}
