package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gearhub/gearhub/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) profile(email string) *model.UserProfile {
	return &model.UserProfile{
		ID:    model.DeriveProfileID(email),
		Name:  "User " + email,
		Email: email,
		Level: 1,
	}
}

// Registry tests

func (s *StorageSuite) TestSaveAndGetProfile() {
	p := s.profile("a@x.com")
	s.Require().NoError(s.storage.SaveProfile(s.ctx, p))

	got, err := s.storage.GetProfile(s.ctx, "a@x.com")
	s.Require().NoError(err)
	s.Equal(p.ID, got.ID)
	s.Equal(p.Name, got.Name)
}

func (s *StorageSuite) TestGetProfileNotFound() {
	_, err := s.storage.GetProfile(s.ctx, "nobody@x.com")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *StorageSuite) TestSaveProfileReplaces() {
	p := s.profile("a@x.com")
	s.Require().NoError(s.storage.SaveProfile(s.ctx, p))

	updated := s.profile("a@x.com")
	updated.XP = 500
	updated.Level = 3
	s.Require().NoError(s.storage.SaveProfile(s.ctx, updated))

	got, err := s.storage.GetProfile(s.ctx, "a@x.com")
	s.Require().NoError(err)
	s.Equal(500, got.XP)
	s.Equal(3, got.Level)
}

func (s *StorageSuite) TestListProfilesSortedByEmail() {
	s.Require().NoError(s.storage.SaveProfile(s.ctx, s.profile("c@x.com")))
	s.Require().NoError(s.storage.SaveProfile(s.ctx, s.profile("a@x.com")))
	s.Require().NoError(s.storage.SaveProfile(s.ctx, s.profile("b@x.com")))

	profiles, err := s.storage.ListProfiles(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(profiles, 3)
	s.Equal("a@x.com", profiles[0].Email)
	s.Equal("b@x.com", profiles[1].Email)
	s.Equal("c@x.com", profiles[2].Email)
}

// Active session tests

func (s *StorageSuite) TestActiveSessionLifecycle() {
	_, err := s.storage.GetActiveSession(s.ctx)
	s.ErrorIs(err, model.ErrNoActiveSession)

	p := s.profile("a@x.com")
	s.Require().NoError(s.storage.SaveActiveSession(s.ctx, p))

	got, err := s.storage.GetActiveSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(p.ID, got.ID)

	s.Require().NoError(s.storage.ClearActiveSession(s.ctx))
	_, err = s.storage.GetActiveSession(s.ctx)
	s.ErrorIs(err, model.ErrNoActiveSession)
}

func (s *StorageSuite) TestSaveActiveSessionOverwrites() {
	s.Require().NoError(s.storage.SaveActiveSession(s.ctx, s.profile("a@x.com")))
	s.Require().NoError(s.storage.SaveActiveSession(s.ctx, s.profile("b@y.com")))

	got, err := s.storage.GetActiveSession(s.ctx)
	s.Require().NoError(err)
	s.Equal("b@y.com", got.Email)
}

func (s *StorageSuite) TestClearActiveSessionIsIdempotent() {
	s.NoError(s.storage.ClearActiveSession(s.ctx))
	s.NoError(s.storage.ClearActiveSession(s.ctx))
}

// Note tests

func (s *StorageSuite) note(id string, author model.ProfileID, public bool, at time.Time) *model.Note {
	return &model.Note{
		ID:        model.NoteID(id),
		AuthorID:  author,
		Title:     "Note " + id,
		Public:    public,
		CreatedAt: at,
	}
}

func (s *StorageSuite) TestSaveAndGetNote() {
	n := s.note("n1", "a_x_com", false, time.Now())
	s.Require().NoError(s.storage.SaveNote(s.ctx, n))

	got, err := s.storage.GetNote(s.ctx, "n1")
	s.Require().NoError(err)
	s.Equal(n.Title, got.Title)
}

func (s *StorageSuite) TestGetNoteNotFound() {
	_, err := s.storage.GetNote(s.ctx, "missing")
	s.ErrorIs(err, model.ErrNoteNotFound)
}

func (s *StorageSuite) TestListNotesByAuthorNewestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.SaveNote(s.ctx, s.note("old", "a_x_com", false, base)))
	s.Require().NoError(s.storage.SaveNote(s.ctx, s.note("new", "a_x_com", false, base.Add(time.Hour))))
	s.Require().NoError(s.storage.SaveNote(s.ctx, s.note("other", "b_y_com", false, base)))

	notes, err := s.storage.ListNotesByAuthor(s.ctx, "a_x_com")
	s.Require().NoError(err)
	s.Require().Len(notes, 2)
	s.Equal(model.NoteID("new"), notes[0].ID)
	s.Equal(model.NoteID("old"), notes[1].ID)
}

func (s *StorageSuite) TestListPublicNotes() {
	now := time.Now()
	s.Require().NoError(s.storage.SaveNote(s.ctx, s.note("pub", "t_x_com", true, now)))
	s.Require().NoError(s.storage.SaveNote(s.ctx, s.note("priv", "t_x_com", false, now)))

	notes, err := s.storage.ListPublicNotes(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(notes, 1)
	s.Equal(model.NoteID("pub"), notes[0].ID)
}

func (s *StorageSuite) TestDeleteNote() {
	s.Require().NoError(s.storage.SaveNote(s.ctx, s.note("n1", "a_x_com", true, time.Now())))
	s.Require().NoError(s.storage.DeleteNote(s.ctx, "n1"))

	_, err := s.storage.GetNote(s.ctx, "n1")
	s.ErrorIs(err, model.ErrNoteNotFound)

	public, err := s.storage.ListPublicNotes(s.ctx)
	s.Require().NoError(err)
	s.Empty(public)
}

func (s *StorageSuite) TestDeleteNoteNotFound() {
	s.ErrorIs(s.storage.DeleteNote(s.ctx, "missing"), model.ErrNoteNotFound)
}

// Timetable tests

func (s *StorageSuite) TestSlotLifecycle() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	first := &model.TimetableSlot{ID: "s1", OwnerID: "a_x_com", Day: "Monday", Subject: "Math", CreatedAt: base}
	second := &model.TimetableSlot{ID: "s2", OwnerID: "a_x_com", Day: "Tuesday", Subject: "Art", CreatedAt: base.Add(time.Hour)}

	s.Require().NoError(s.storage.SaveSlot(s.ctx, second))
	s.Require().NoError(s.storage.SaveSlot(s.ctx, first))

	slots, err := s.storage.ListSlotsForOwner(s.ctx, "a_x_com")
	s.Require().NoError(err)
	s.Require().Len(slots, 2)
	s.Equal(model.SlotID("s1"), slots[0].ID)
	s.Equal(model.SlotID("s2"), slots[1].ID)

	s.Require().NoError(s.storage.DeleteSlot(s.ctx, "s1"))
	slots, err = s.storage.ListSlotsForOwner(s.ctx, "a_x_com")
	s.Require().NoError(err)
	s.Len(slots, 1)
}

func (s *StorageSuite) TestGetSlotNotFound() {
	_, err := s.storage.GetSlot(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSlotNotFound)
}

// Chat tests

func (s *StorageSuite) TestChatMessagesKeepOrderAndLimit() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		msg := &model.ChatMessage{
			ID:     fmt.Sprintf("m%d", i),
			Text:   fmt.Sprintf("message %d", i),
			SentAt: base.Add(time.Duration(i) * time.Second),
		}
		s.Require().NoError(s.storage.AppendChatMessage(s.ctx, msg))
	}

	msgs, err := s.storage.ListChatMessages(s.ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(msgs, 3)
	s.Equal("message 2", msgs[0].Text)
	s.Equal("message 4", msgs[2].Text)

	all, err := s.storage.ListChatMessages(s.ctx, 100)
	s.Require().NoError(err)
	s.Len(all, 5)
}

// Grade tests

func (s *StorageSuite) TestGradesListedOldestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.SaveGrade(s.ctx, &model.Grade{
		ID: "g2", StudentID: "a_x_com", Subject: "Math", RecordedAt: base.Add(time.Hour),
	}))
	s.Require().NoError(s.storage.SaveGrade(s.ctx, &model.Grade{
		ID: "g1", StudentID: "a_x_com", Subject: "Math", RecordedAt: base,
	}))
	s.Require().NoError(s.storage.SaveGrade(s.ctx, &model.Grade{
		ID: "g3", StudentID: "b_y_com", Subject: "Art", RecordedAt: base,
	}))

	grades, err := s.storage.ListGradesForStudent(s.ctx, "a_x_com")
	s.Require().NoError(err)
	s.Require().Len(grades, 2)
	s.Equal(model.GradeID("g1"), grades[0].ID)
	s.Equal(model.GradeID("g2"), grades[1].ID)
}
