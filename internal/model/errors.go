package model

import "errors"

// Common errors used across the application
var (
	// Profile / session errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoActiveSession = errors.New("no active session")
	ErrRoleAlreadySet  = errors.New("role has already been set")
	ErrInvalidRole     = errors.New("invalid role")

	// Note errors
	ErrNoteNotFound = errors.New("note not found")
	ErrNotAuthor    = errors.New("not the author of this note")

	// Timetable errors
	ErrSlotNotFound = errors.New("timetable slot not found")
	ErrInvalidDay   = errors.New("invalid weekday name")

	// Grade errors
	ErrGradeNotFound = errors.New("grade not found")
	ErrInvalidScore  = errors.New("score must be between 0 and total")

	// Permission errors
	ErrForbidden = errors.New("role does not permit this action")
)
