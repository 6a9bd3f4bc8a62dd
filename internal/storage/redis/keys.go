package redis

import (
	"fmt"

	"github.com/gearhub/gearhub/internal/model"
)

// Key prefix for all portal data
const keyPrefix = "gearhub"

// Key generation functions for each entity type

// profileKey returns the Redis key for a registry entry, keyed by email
func profileKey(email string) string {
	return fmt.Sprintf("%s:registry:%s", keyPrefix, email)
}

// registryIndexKey returns the Redis key for the SET of registered emails
func registryIndexKey() string {
	return fmt.Sprintf("%s:idx:registry", keyPrefix)
}

// activeSessionKey returns the Redis key for the single active session slot
func activeSessionKey() string {
	return fmt.Sprintf("%s:active_session", keyPrefix)
}

// noteKey returns the Redis key for a Note
func noteKey(id model.NoteID) string {
	return fmt.Sprintf("%s:note:%s", keyPrefix, id)
}

// notesByAuthorIndexKey returns the Redis key for the SET of an author's notes
func notesByAuthorIndexKey(authorID model.ProfileID) string {
	return fmt.Sprintf("%s:idx:notes_by_author:%s", keyPrefix, authorID)
}

// publicNotesIndexKey returns the Redis key for the SET of public notes
func publicNotesIndexKey() string {
	return fmt.Sprintf("%s:idx:public_notes", keyPrefix)
}

// slotKey returns the Redis key for a TimetableSlot
func slotKey(id model.SlotID) string {
	return fmt.Sprintf("%s:slot:%s", keyPrefix, id)
}

// slotsForOwnerIndexKey returns the Redis key for the SET of an owner's slots
func slotsForOwnerIndexKey(ownerID model.ProfileID) string {
	return fmt.Sprintf("%s:idx:slots_for_owner:%s", keyPrefix, ownerID)
}

// chatKey returns the Redis key for the chat message LIST
func chatKey() string {
	return fmt.Sprintf("%s:chat", keyPrefix)
}

// gradeKey returns the Redis key for a Grade
func gradeKey(id model.GradeID) string {
	return fmt.Sprintf("%s:grade:%s", keyPrefix, id)
}

// gradesForStudentIndexKey returns the Redis key for the SET of a student's grades
func gradesForStudentIndexKey(studentID model.ProfileID) string {
	return fmt.Sprintf("%s:idx:grades_for_student:%s", keyPrefix, studentID)
}
