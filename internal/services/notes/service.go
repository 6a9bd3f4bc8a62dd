package notes

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearhub/gearhub/internal/dependencies/clock"
	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/storage"
)

var ErrTitleRequired = errors.New("note title is required")

// XPAwarder grants XP to the active profile. The session controller
// satisfies this; it does not know what triggered the award.
type XPAwarder interface {
	AwardXP(ctx context.Context, amount int) (*model.UserProfile, error)
}

// Service manages study notes. Private notes belong to their author; public
// notes are course material visible to everyone and only teachers or admins
// may publish them.
type Service struct {
	storage      storage.Storage
	clock        clock.Clock
	awarder      XPAwarder
	logger       *slog.Logger
	completionXP int
}

// New creates a new notes Service. completionXP is the XP granted for
// completing a note.
func New(storage storage.Storage, clock clock.Clock, awarder XPAwarder, logger *slog.Logger, completionXP int) *Service {
	return &Service{
		storage:      storage,
		clock:        clock,
		awarder:      awarder,
		logger:       logger,
		completionXP: completionXP,
	}
}

// CreateNote is the input for Create. Zero values are stored as-is.
type CreateNote struct {
	Title   string
	Content string
	Subject string
	Summary string
	Tags    []string
	Public  bool
}

// Create stores a new note authored by the actor
func (s *Service) Create(ctx context.Context, actor *model.UserProfile, input CreateNote) (*model.Note, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Public && actor.Role != model.RoleTeacher && actor.Role != model.RoleAdmin {
		return nil, model.ErrForbidden
	}

	note := &model.Note{
		ID:        model.NoteID(uuid.NewString()),
		AuthorID:  actor.ID,
		Title:     input.Title,
		Content:   input.Content,
		Subject:   input.Subject,
		Summary:   input.Summary,
		Tags:      input.Tags,
		Public:    input.Public,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveNote(ctx, note); err != nil {
		return nil, err
	}

	s.logger.Info("note created",
		slog.String("note_id", string(note.ID)),
		slog.String("author_id", string(note.AuthorID)),
		slog.Bool("public", note.Public))
	return note, nil
}

// Get returns a note the actor may read: their own, or any public note
func (s *Service) Get(ctx context.Context, actor *model.UserProfile, id model.NoteID) (*model.Note, error) {
	note, err := s.storage.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if !note.Public && note.AuthorID != actor.ID {
		return nil, model.ErrForbidden
	}
	return note, nil
}

// ListOwn returns the actor's notes, newest first
func (s *Service) ListOwn(ctx context.Context, actor *model.UserProfile) ([]*model.Note, error) {
	return s.storage.ListNotesByAuthor(ctx, actor.ID)
}

// ListPublic returns all published notes, newest first
func (s *Service) ListPublic(ctx context.Context) ([]*model.Note, error) {
	return s.storage.ListPublicNotes(ctx)
}

// Delete removes a note. Only the author may delete it.
func (s *Service) Delete(ctx context.Context, actor *model.UserProfile, id model.NoteID) error {
	note, err := s.storage.GetNote(ctx, id)
	if err != nil {
		return err
	}
	if note.AuthorID != actor.ID {
		return model.ErrNotAuthor
	}
	return s.storage.DeleteNote(ctx, id)
}

// Complete marks a note as studied and grants the completion XP to the
// active profile. The note must be readable by the actor. Completing the
// same note again grants XP again; there is no per-note completion record.
func (s *Service) Complete(ctx context.Context, actor *model.UserProfile, id model.NoteID) (*model.UserProfile, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	updated, err := s.awarder.AwardXP(ctx, s.completionXP)
	if err != nil {
		return nil, err
	}

	s.logger.Info("note completed",
		slog.String("note_id", string(id)),
		slog.String("profile_id", string(actor.ID)),
		slog.Int("xp_awarded", s.completionXP))
	return updated, nil
}
