package timetable

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearhub/gearhub/internal/dependencies/clock"
	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/storage"
)

var ErrSubjectRequired = errors.New("slot subject is required")

// Service manages per-user weekly timetable slots
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new timetable Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// AddSlot is the input for Add
type AddSlot struct {
	Day     string
	Time    string
	Subject string
	Room    string
	Color   string
}

// Add stores a new slot on the actor's timetable. The day must be a full
// English day name.
func (s *Service) Add(ctx context.Context, actor *model.UserProfile, input AddSlot) (*model.TimetableSlot, error) {
	if !model.IsWeekday(input.Day) {
		return nil, model.ErrInvalidDay
	}
	if input.Subject == "" {
		return nil, ErrSubjectRequired
	}

	slot := &model.TimetableSlot{
		ID:        model.SlotID(uuid.NewString()),
		OwnerID:   actor.ID,
		Day:       input.Day,
		Time:      input.Time,
		Subject:   input.Subject,
		Room:      input.Room,
		Color:     input.Color,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveSlot(ctx, slot); err != nil {
		return nil, err
	}

	s.logger.Info("timetable slot added",
		slog.String("slot_id", string(slot.ID)),
		slog.String("owner_id", string(slot.OwnerID)),
		slog.String("day", slot.Day))
	return slot, nil
}

// List returns the actor's slots in insertion order
func (s *Service) List(ctx context.Context, actor *model.UserProfile) ([]*model.TimetableSlot, error) {
	return s.storage.ListSlotsForOwner(ctx, actor.ID)
}

// Remove deletes a slot from the actor's timetable. Removing someone else's
// slot is forbidden.
func (s *Service) Remove(ctx context.Context, actor *model.UserProfile, id model.SlotID) error {
	slot, err := s.storage.GetSlot(ctx, id)
	if err != nil {
		return err
	}
	if slot.OwnerID != actor.ID {
		return model.ErrForbidden
	}
	return s.storage.DeleteSlot(ctx, id)
}
