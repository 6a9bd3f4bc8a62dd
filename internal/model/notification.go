package model

import "time"

// Severity classifies a notification
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a transient in-process alert. Notifications are never
// written to storage and do not survive a restart.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Severity  Severity
	Timestamp time.Time
	Read      bool
}
