package model

import (
	"math"
	"regexp"
	"time"
)

// ProfileID uniquely identifies a user profile. It is derived from the
// user's email at creation time and never changes afterwards, even if the
// email itself is later edited.
type ProfileID string

// Role is the portal role a user picked after first login
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"

	// RoleUnset marks a profile that has logged in but not picked a role yet
	RoleUnset Role = ""
)

// IsValid reports whether the role is one of the assignable roles
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	default:
		return false
	}
}

// Badge is an unlocked achievement attached to a profile
type Badge struct {
	ID          string
	Name        string
	Icon        string
	Description string
	UnlockedAt  time.Time
}

// UserProfile is the durable identity and progression record for a user.
// The email is the registry key; the ID is frozen at creation.
type UserProfile struct {
	ID    ProfileID
	Name  string
	Email string

	// CredentialHash is the bcrypt hash of the optional credential.
	// Empty for profiles that never set one.
	CredentialHash string

	Role   Role
	Avatar string
	Bio    string

	XP     int
	Level  int
	Streak int
	Badges []Badge

	CreatedAt time.Time
	UpdatedAt time.Time
}

var profileIDPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// DeriveProfileID maps an email to its profile ID by replacing every
// non-alphanumeric character with an underscore ("a@x.com" -> "a_x_com")
func DeriveProfileID(email string) ProfileID {
	return ProfileID(profileIDPattern.ReplaceAllString(email, "_"))
}

// LevelForXP computes the level for an XP total: floor(sqrt(xp/100)) + 1.
// Negative XP is below the formula's domain and maps to level 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return int(math.Sqrt(float64(xp)/100)) + 1
}

// HasBadge reports whether the profile already holds the badge
func (p *UserProfile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a copy of the profile with its own badge slice, so callers
// can mutate the copy without aliasing storage-held state
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Badges = make([]Badge, len(p.Badges))
	copy(clone.Badges, p.Badges)
	return &clone
}
