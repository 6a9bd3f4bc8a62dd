package storage

import (
	"context"

	"github.com/gearhub/gearhub/internal/model"
)

// Storage defines the interface for data persistence.
// Every write is durable by the time the call returns; a reload always
// reflects the last completed write.
type Storage interface {
	// Registry operations: email -> profile, total replacement on save.
	// The registry grows monotonically; there is no delete path.
	SaveProfile(ctx context.Context, profile *model.UserProfile) error
	GetProfile(ctx context.Context, email string) (*model.UserProfile, error)
	ListProfiles(ctx context.Context) ([]*model.UserProfile, error)

	// Active session operations: at most one profile snapshot
	SaveActiveSession(ctx context.Context, profile *model.UserProfile) error
	GetActiveSession(ctx context.Context) (*model.UserProfile, error)
	ClearActiveSession(ctx context.Context) error

	// Note operations
	SaveNote(ctx context.Context, note *model.Note) error
	GetNote(ctx context.Context, id model.NoteID) (*model.Note, error)
	ListNotesByAuthor(ctx context.Context, authorID model.ProfileID) ([]*model.Note, error)
	ListPublicNotes(ctx context.Context) ([]*model.Note, error)
	DeleteNote(ctx context.Context, id model.NoteID) error

	// Timetable operations
	SaveSlot(ctx context.Context, slot *model.TimetableSlot) error
	GetSlot(ctx context.Context, id model.SlotID) (*model.TimetableSlot, error)
	ListSlotsForOwner(ctx context.Context, ownerID model.ProfileID) ([]*model.TimetableSlot, error)
	DeleteSlot(ctx context.Context, id model.SlotID) error

	// Chat operations
	AppendChatMessage(ctx context.Context, msg *model.ChatMessage) error
	ListChatMessages(ctx context.Context, limit int) ([]*model.ChatMessage, error)

	// Grade operations
	SaveGrade(ctx context.Context, grade *model.Grade) error
	ListGradesForStudent(ctx context.Context, studentID model.ProfileID) ([]*model.Grade, error)
}
