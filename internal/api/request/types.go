package request

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SelectRoleRequest is the request body for choosing a role
type SelectRoleRequest struct {
	Role string `json:"role"`
}

// UpdateProfileRequest is the request body for editing the profile.
// Absent fields are left unchanged.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

// SetCredentialRequest is the request body for setting the optional credential
type SetCredentialRequest struct {
	Credential string `json:"credential"`
}

// AwardXPRequest is the request body for granting XP
type AwardXPRequest struct {
	Amount int `json:"amount"`
}

// CreateNoteRequest is the request body for creating a note
type CreateNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Subject string   `json:"subject,omitempty"`
	Summary string   `json:"summary,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Public  bool     `json:"public,omitempty"`
}

// AddSlotRequest is the request body for adding a timetable slot
type AddSlotRequest struct {
	Day     string `json:"day"`
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Room    string `json:"room,omitempty"`
	Color   string `json:"color,omitempty"`
}

// SendMessageRequest is the request body for posting a chat message
type SendMessageRequest struct {
	Text string `json:"text"`
}

// RecordGradeRequest is the request body for recording a grade
type RecordGradeRequest struct {
	StudentEmail string `json:"student_email"`
	Subject      string `json:"subject"`
	TestName     string `json:"test_name"`
	Score        int    `json:"score"`
	Total        int    `json:"total"`
	Remarks      string `json:"remarks,omitempty"`
}
