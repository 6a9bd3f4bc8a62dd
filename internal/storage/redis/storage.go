package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// A stored value that fails to unmarshal is treated as absent: the key is
// logged and the entity's not-found error is returned, so corrupt data can
// never crash a session load.
type Storage struct {
	client *redis.Client
	cfg    Config
	logger *slog.Logger
}

// New creates a new Redis storage instance
func New(cfg Config, logger *slog.Logger) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config, logger *slog.Logger) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// decode unmarshals a stored value, applying the corrupt-data-is-absent
// policy: on failure it logs the key and returns notFound
func (s *Storage) decode(key string, data []byte, v any, notFound error) error {
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("discarding malformed stored value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return notFound
	}
	return nil
}

// Registry operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, profileKey(profile.Email), data, 0)
	pipe.SAdd(ctx, registryIndexKey(), profile.Email)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetProfile(ctx context.Context, email string) (*model.UserProfile, error) {
	key := profileKey(email)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProfileNotFound
		}
		return nil, err
	}

	var profile model.UserProfile
	if err := s.decode(key, data, &profile, model.ErrProfileNotFound); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Storage) ListProfiles(ctx context.Context) ([]*model.UserProfile, error) {
	emails, err := s.client.SMembers(ctx, registryIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(emails) == 0 {
		return []*model.UserProfile{}, nil
	}

	keys := make([]string, len(emails))
	for i, email := range emails {
		keys[i] = profileKey(email)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	profiles := make([]*model.UserProfile, 0, len(values))
	for i, val := range values {
		if val == nil {
			continue
		}
		var profile model.UserProfile
		if err := s.decode(keys[i], []byte(val.(string)), &profile, model.ErrProfileNotFound); err != nil {
			continue // Skip corrupt entries
		}
		profiles = append(profiles, &profile)
	}

	return profiles, nil
}

// Active session operations

func (s *Storage) SaveActiveSession(ctx context.Context, profile *model.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, activeSessionKey(), data, 0).Err()
}

func (s *Storage) GetActiveSession(ctx context.Context) (*model.UserProfile, error) {
	key := activeSessionKey()
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNoActiveSession
		}
		return nil, err
	}

	var profile model.UserProfile
	if err := s.decode(key, data, &profile, model.ErrNoActiveSession); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Storage) ClearActiveSession(ctx context.Context) error {
	return s.client.Del(ctx, activeSessionKey()).Err()
}

// Note operations

func (s *Storage) SaveNote(ctx context.Context, note *model.Note) error {
	data, err := json.Marshal(note)
	if err != nil {
		return err
	}

	key := noteKey(note.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, notesByAuthorIndexKey(note.AuthorID), key)
	if note.Public {
		pipe.SAdd(ctx, publicNotesIndexKey(), key)
	} else {
		pipe.SRem(ctx, publicNotesIndexKey(), key)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetNote(ctx context.Context, id model.NoteID) (*model.Note, error) {
	key := noteKey(id)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNoteNotFound
		}
		return nil, err
	}

	var note model.Note
	if err := s.decode(key, data, &note, model.ErrNoteNotFound); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *Storage) ListNotesByAuthor(ctx context.Context, authorID model.ProfileID) ([]*model.Note, error) {
	return s.notesFromIndex(ctx, notesByAuthorIndexKey(authorID))
}

func (s *Storage) ListPublicNotes(ctx context.Context) ([]*model.Note, error) {
	return s.notesFromIndex(ctx, publicNotesIndexKey())
}

// notesFromIndex fetches all notes referenced by an index set
func (s *Storage) notesFromIndex(ctx context.Context, indexKey string) ([]*model.Note, error) {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Note{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	notes := make([]*model.Note, 0, len(values))
	for i, val := range values {
		if val == nil {
			continue // Note may have been deleted
		}
		var note model.Note
		if err := s.decode(keys[i], []byte(val.(string)), &note, model.ErrNoteNotFound); err != nil {
			continue
		}
		notes = append(notes, &note)
	}

	sortNotesNewestFirst(notes)
	return notes, nil
}

func (s *Storage) DeleteNote(ctx context.Context, id model.NoteID) error {
	note, err := s.GetNote(ctx, id)
	if err != nil {
		return err
	}

	key := noteKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, notesByAuthorIndexKey(note.AuthorID), key)
	pipe.SRem(ctx, publicNotesIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

// Timetable operations

func (s *Storage) SaveSlot(ctx context.Context, slot *model.TimetableSlot) error {
	data, err := json.Marshal(slot)
	if err != nil {
		return err
	}

	key := slotKey(slot.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, slotsForOwnerIndexKey(slot.OwnerID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSlot(ctx context.Context, id model.SlotID) (*model.TimetableSlot, error) {
	key := slotKey(id)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSlotNotFound
		}
		return nil, err
	}

	var slot model.TimetableSlot
	if err := s.decode(key, data, &slot, model.ErrSlotNotFound); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *Storage) ListSlotsForOwner(ctx context.Context, ownerID model.ProfileID) ([]*model.TimetableSlot, error) {
	indexKey := slotsForOwnerIndexKey(ownerID)

	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.TimetableSlot{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	slots := make([]*model.TimetableSlot, 0, len(values))
	for i, val := range values {
		if val == nil {
			continue
		}
		var slot model.TimetableSlot
		if err := s.decode(keys[i], []byte(val.(string)), &slot, model.ErrSlotNotFound); err != nil {
			continue
		}
		slots = append(slots, &slot)
	}

	sortSlotsOldestFirst(slots)
	return slots, nil
}

func (s *Storage) DeleteSlot(ctx context.Context, id model.SlotID) error {
	slot, err := s.GetSlot(ctx, id)
	if err != nil {
		return err
	}

	key := slotKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, slotsForOwnerIndexKey(slot.OwnerID), key)
	_, err = pipe.Exec(ctx)
	return err
}

// Chat operations

func (s *Storage) AppendChatMessage(ctx context.Context, msg *model.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, chatKey(), data)
	if s.cfg.ChatHistoryMax > 0 {
		pipe.LTrim(ctx, chatKey(), int64(-s.cfg.ChatHistoryMax), -1)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListChatMessages(ctx context.Context, limit int) ([]*model.ChatMessage, error) {
	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}

	values, err := s.client.LRange(ctx, chatKey(), start, -1).Result()
	if err != nil {
		return nil, err
	}

	msgs := make([]*model.ChatMessage, 0, len(values))
	for _, val := range values {
		var msg model.ChatMessage
		if err := json.Unmarshal([]byte(val), &msg); err != nil {
			s.logger.Warn("discarding malformed chat message",
				slog.String("key", chatKey()),
				slog.String("error", err.Error()))
			continue
		}
		msgs = append(msgs, &msg)
	}

	return msgs, nil
}

// Grade operations

func (s *Storage) SaveGrade(ctx context.Context, grade *model.Grade) error {
	data, err := json.Marshal(grade)
	if err != nil {
		return err
	}

	key := gradeKey(grade.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, gradesForStudentIndexKey(grade.StudentID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListGradesForStudent(ctx context.Context, studentID model.ProfileID) ([]*model.Grade, error) {
	indexKey := gradesForStudentIndexKey(studentID)

	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Grade{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	grades := make([]*model.Grade, 0, len(values))
	for i, val := range values {
		if val == nil {
			continue
		}
		var grade model.Grade
		if err := s.decode(keys[i], []byte(val.(string)), &grade, model.ErrGradeNotFound); err != nil {
			continue
		}
		grades = append(grades, &grade)
	}

	sortGradesOldestFirst(grades)
	return grades, nil
}
