package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Profile:
		o.printProfile(v)
	case NotificationList:
		o.printNotificationList(v)
	case Note:
		o.printNote(v)
	case []Note:
		o.printNotes(v)
	case TimetableSlot:
		o.printSlot(v)
	case []TimetableSlot:
		o.printSlots(v)
	case ChatMessage:
		o.printChatMessage(v)
	case []ChatMessage:
		o.printChatMessages(v)
	case Grade:
		o.printGrade(v)
	case []Grade:
		o.printGrades(v)
	case Directory:
		o.printDirectory(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Profile response type (matches API)
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
	HasCredential bool      `json:"has_credential"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Notification response type
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// NotificationList response type
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	Unread        int            `json:"unread"`
}

// Note response type
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

// TimetableSlot response type
type TimetableSlot struct {
	ID      string `json:"id"`
	Day     string `json:"day"`
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Room    string `json:"room,omitempty"`
	Color   string `json:"color,omitempty"`
}

// ChatMessage response type
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Text       string    `json:"text"`
	SentAt     time.Time `json:"sent_at"`
}

// Grade response type
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

// DirectorySummary response type
type DirectorySummary struct {
	Total    int `json:"total"`
	Students int `json:"students"`
	Teachers int `json:"teachers"`
	Admins   int `json:"admins"`
	Unset    int `json:"unset"`
}

// Directory response type
type Directory struct {
	Users   []Profile        `json:"users"`
	Summary DirectorySummary `json:"summary"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printProfile(p Profile) {
	role := p.Role
	if role == "" {
		role = "(not chosen)"
	}
	fmt.Printf("Profile: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Email: %s\n", p.Email)
	fmt.Printf("Role: %s\n", role)
	fmt.Printf("Level %d - %d XP (streak %d)\n", p.Level, p.XP, p.Streak)
	if p.Bio != "" {
		fmt.Printf("Bio: %s\n", p.Bio)
	}
}

func (o *Output) printNotificationList(l NotificationList) {
	fmt.Printf("Notifications (%d unread):\n", l.Unread)
	for _, n := range l.Notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("%s [%s] %s - %s\n", marker, n.Severity, n.Title, n.Message)
	}
}

func (o *Output) printNote(n Note) {
	visibility := "private"
	if n.Public {
		visibility = "public"
	}
	fmt.Printf("Note: %s (%s, %s)\n", n.Title, n.ID, visibility)
	if n.Subject != "" {
		fmt.Printf("Subject: %s\n", n.Subject)
	}
	if len(n.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(n.Tags, ", "))
	}
	if n.Content != "" {
		fmt.Printf("\n%s\n", n.Content)
	}
}

func (o *Output) printNotes(notes []Note) {
	fmt.Printf("Notes (%d):\n", len(notes))
	for _, n := range notes {
		visibility := ""
		if n.Public {
			visibility = " [public]"
		}
		fmt.Printf("  - %s (%s)%s\n", n.Title, n.ID, visibility)
	}
}

func (o *Output) printSlot(s TimetableSlot) {
	fmt.Printf("Slot: %s %s - %s", s.Day, s.Time, s.Subject)
	if s.Room != "" {
		fmt.Printf(" (room %s)", s.Room)
	}
	fmt.Printf(" [%s]\n", s.ID)
}

func (o *Output) printSlots(slots []TimetableSlot) {
	fmt.Printf("Timetable (%d slots):\n", len(slots))
	for _, s := range slots {
		fmt.Print("  ")
		o.printSlot(s)
	}
}

func (o *Output) printChatMessage(m ChatMessage) {
	fmt.Printf("[%s] %s: %s\n", m.SentAt.Format("15:04"), m.SenderName, m.Text)
}

func (o *Output) printChatMessages(msgs []ChatMessage) {
	for _, m := range msgs {
		o.printChatMessage(m)
	}
}

func (o *Output) printGrade(g Grade) {
	fmt.Printf("%s - %s: %d/%d (%.1f%%, %s)\n", g.Subject, g.TestName, g.Score, g.Total, g.Percent, g.Letter)
	if g.Remarks != "" {
		fmt.Printf("  Remarks: %s\n", g.Remarks)
	}
}

func (o *Output) printGrades(grades []Grade) {
	fmt.Printf("Grades (%d):\n", len(grades))
	for _, g := range grades {
		fmt.Print("  ")
		o.printGrade(g)
	}
}

func (o *Output) printDirectory(d Directory) {
	fmt.Printf("Users: %d (%d students, %d teachers, %d admins, %d without role)\n",
		d.Summary.Total, d.Summary.Students, d.Summary.Teachers, d.Summary.Admins, d.Summary.Unset)
	for _, u := range d.Users {
		role := u.Role
		if role == "" {
			role = "no role"
		}
		fmt.Printf("  - %s <%s> (%s, level %d)\n", u.Name, u.Email, role, u.Level)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
