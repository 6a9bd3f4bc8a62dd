package response

import (
	"time"

	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/services/directory"
)

// Badge represents an unlocked badge in API responses
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description,omitempty"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// Profile represents a user profile in API responses.
// The credential hash never leaves the server; HasCredential signals whether
// one is set.
type Profile struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Avatar        string    `json:"avatar,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	XP            int       `json:"xp"`
	Level         int       `json:"level"`
	Streak        int       `json:"streak"`
	Badges        []Badge   `json:"badges"`
	HasCredential bool      `json:"has_credential"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProfileFromModel converts a model.UserProfile to a response Profile
func ProfileFromModel(p *model.UserProfile) Profile {
	badges := make([]Badge, len(p.Badges))
	for i, b := range p.Badges {
		badges[i] = Badge{
			ID:          b.ID,
			Name:        b.Name,
			Icon:        b.Icon,
			Description: b.Description,
			UnlockedAt:  b.UnlockedAt,
		}
	}

	return Profile{
		ID:            string(p.ID),
		Name:          p.Name,
		Email:         p.Email,
		Role:          string(p.Role),
		Avatar:        p.Avatar,
		Bio:           p.Bio,
		XP:            p.XP,
		Level:         p.Level,
		Streak:        p.Streak,
		Badges:        badges,
		HasCredential: p.CredentialHash != "",
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// Notification represents a notification in API responses
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// NotificationFromModel converts a model.Notification
func NotificationFromModel(n *model.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Severity:  string(n.Severity),
		Timestamp: n.Timestamp,
		Read:      n.Read,
	}
}

// NotificationList is the response for the notification feed
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	Unread        int            `json:"unread"`
}

// Note represents a note in API responses
type Note struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Subject   string    `json:"subject,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Public    bool      `json:"public"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteFromModel converts a model.Note
func NoteFromModel(n *model.Note) Note {
	return Note{
		ID:        string(n.ID),
		AuthorID:  string(n.AuthorID),
		Title:     n.Title,
		Content:   n.Content,
		Subject:   n.Subject,
		Summary:   n.Summary,
		Tags:      n.Tags,
		Public:    n.Public,
		CreatedAt: n.CreatedAt,
	}
}

// NotesFromModel converts a slice of notes
func NotesFromModel(in []*model.Note) []Note {
	out := make([]Note, len(in))
	for i, n := range in {
		out[i] = NoteFromModel(n)
	}
	return out
}

// TimetableSlot represents a timetable slot in API responses
type TimetableSlot struct {
	ID      string `json:"id"`
	Day     string `json:"day"`
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Room    string `json:"room,omitempty"`
	Color   string `json:"color,omitempty"`
}

// TimetableSlotFromModel converts a model.TimetableSlot
func TimetableSlotFromModel(s *model.TimetableSlot) TimetableSlot {
	return TimetableSlot{
		ID:      string(s.ID),
		Day:     s.Day,
		Time:    s.Time,
		Subject: s.Subject,
		Room:    s.Room,
		Color:   s.Color,
	}
}

// ChatMessage represents a chat message in API responses
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Text       string    `json:"text"`
	SentAt     time.Time `json:"sent_at"`
}

// ChatMessageFromModel converts a model.ChatMessage
func ChatMessageFromModel(m *model.ChatMessage) ChatMessage {
	return ChatMessage{
		ID:         m.ID,
		SenderID:   string(m.SenderID),
		SenderName: m.SenderName,
		SenderRole: string(m.SenderRole),
		Text:       m.Text,
		SentAt:     m.SentAt,
	}
}

// Grade represents a grade in API responses. Percent and letter are derived
// from score/total on the way out.
type Grade struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	Subject    string    `json:"subject"`
	TestName   string    `json:"test_name"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percent    float64   `json:"percent"`
	Letter     string    `json:"letter"`
	Remarks    string    `json:"remarks,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// GradeFromModel converts a model.Grade
func GradeFromModel(g *model.Grade) Grade {
	return Grade{
		ID:         string(g.ID),
		StudentID:  string(g.StudentID),
		Subject:    g.Subject,
		TestName:   g.TestName,
		Score:      g.Score,
		Total:      g.Total,
		Percent:    g.Percent(),
		Letter:     g.Letter(),
		Remarks:    g.Remarks,
		RecordedAt: g.RecordedAt,
	}
}

// DirectorySummary aggregates the registry by role
type DirectorySummary struct {
	Total    int `json:"total"`
	Students int `json:"students"`
	Teachers int `json:"teachers"`
	Admins   int `json:"admins"`
	Unset    int `json:"unset"`
}

// Directory is the admin view of the registry
type Directory struct {
	Users   []Profile        `json:"users"`
	Summary DirectorySummary `json:"summary"`
}

// DirectoryFromModel builds the admin directory response
func DirectoryFromModel(profiles []*model.UserProfile, summary directory.Summary) Directory {
	users := make([]Profile, len(profiles))
	for i, p := range profiles {
		users[i] = ProfileFromModel(p)
	}
	return Directory{
		Users: users,
		Summary: DirectorySummary{
			Total:    summary.Total,
			Students: summary.Students,
			Teachers: summary.Teachers,
			Admins:   summary.Admins,
			Unset:    summary.Unset,
		},
	}
}
