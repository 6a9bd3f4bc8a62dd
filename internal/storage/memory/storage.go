package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	registry      map[string]*model.UserProfile
	activeSession *model.UserProfile
	notes         map[model.NoteID]*model.Note
	slots         map[model.SlotID]*model.TimetableSlot
	chat          []*model.ChatMessage
	grades        map[model.GradeID]*model.Grade
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		registry: make(map[string]*model.UserProfile),
		notes:    make(map[model.NoteID]*model.Note),
		slots:    make(map[model.SlotID]*model.TimetableSlot),
		grades:   make(map[model.GradeID]*model.Grade),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Registry operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry[profile.Email] = profile
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, email string) (*model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.registry[email]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

func (s *Storage) ListProfiles(ctx context.Context) ([]*model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profiles := make([]*model.UserProfile, 0, len(s.registry))
	for _, p := range s.registry {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Email < profiles[j].Email
	})
	return profiles, nil
}

// Active session operations

func (s *Storage) SaveActiveSession(ctx context.Context, profile *model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeSession = profile
	return nil
}

func (s *Storage) GetActiveSession(ctx context.Context) (*model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeSession == nil {
		return nil, model.ErrNoActiveSession
	}
	return s.activeSession, nil
}

func (s *Storage) ClearActiveSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeSession = nil
	return nil
}

// Note operations

func (s *Storage) SaveNote(ctx context.Context, note *model.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[note.ID] = note
	return nil
}

func (s *Storage) GetNote(ctx context.Context, id model.NoteID) (*model.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	note, ok := s.notes[id]
	if !ok {
		return nil, model.ErrNoteNotFound
	}
	return note, nil
}

func (s *Storage) ListNotesByAuthor(ctx context.Context, authorID model.ProfileID) ([]*model.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var notes []*model.Note
	for _, n := range s.notes {
		if n.AuthorID == authorID {
			notes = append(notes, n)
		}
	}
	sortNotes(notes)
	return notes, nil
}

func (s *Storage) ListPublicNotes(ctx context.Context) ([]*model.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var notes []*model.Note
	for _, n := range s.notes {
		if n.Public {
			notes = append(notes, n)
		}
	}
	sortNotes(notes)
	return notes, nil
}

func (s *Storage) DeleteNote(ctx context.Context, id model.NoteID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notes[id]; !ok {
		return model.ErrNoteNotFound
	}
	delete(s.notes, id)
	return nil
}

// sortNotes orders notes newest first
func sortNotes(notes []*model.Note) {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
}

// Timetable operations

func (s *Storage) SaveSlot(ctx context.Context, slot *model.TimetableSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot.ID] = slot
	return nil
}

func (s *Storage) GetSlot(ctx context.Context, id model.SlotID) (*model.TimetableSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.slots[id]
	if !ok {
		return nil, model.ErrSlotNotFound
	}
	return slot, nil
}

func (s *Storage) ListSlotsForOwner(ctx context.Context, ownerID model.ProfileID) ([]*model.TimetableSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var slots []*model.TimetableSlot
	for _, sl := range s.slots {
		if sl.OwnerID == ownerID {
			slots = append(slots, sl)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].CreatedAt.Before(slots[j].CreatedAt)
	})
	return slots, nil
}

func (s *Storage) DeleteSlot(ctx context.Context, id model.SlotID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[id]; !ok {
		return model.ErrSlotNotFound
	}
	delete(s.slots, id)
	return nil
}

// Chat operations

func (s *Storage) AppendChatMessage(ctx context.Context, msg *model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, msg)
	return nil
}

func (s *Storage) ListChatMessages(ctx context.Context, limit int) ([]*model.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := 0
	if limit > 0 && len(s.chat) > limit {
		start = len(s.chat) - limit
	}
	msgs := make([]*model.ChatMessage, len(s.chat)-start)
	copy(msgs, s.chat[start:])
	return msgs, nil
}

// Grade operations

func (s *Storage) SaveGrade(ctx context.Context, grade *model.Grade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grades[grade.ID] = grade
	return nil
}

func (s *Storage) ListGradesForStudent(ctx context.Context, studentID model.ProfileID) ([]*model.Grade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var grades []*model.Grade
	for _, g := range s.grades {
		if g.StudentID == studentID {
			grades = append(grades, g)
		}
	}
	sort.Slice(grades, func(i, j int) bool {
		return grades[i].RecordedAt.Before(grades[j].RecordedAt)
	})
	return grades, nil
}
