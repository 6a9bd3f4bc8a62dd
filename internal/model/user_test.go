package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveProfileID(t *testing.T) {
	for _, tc := range []struct {
		email string
		want  ProfileID
	}{
		{"a@x.com", "a_x_com"},
		{"jane.doe@school.edu", "jane_doe_school_edu"},
		{"UPPER@Case.Org", "UPPER_Case_Org"},
		{"plain", "plain"},
		{"", ""},
	} {
		assert.Equal(t, tc.want, DeriveProfileID(tc.email), tc.email)
	}
}

func TestLevelForXP(t *testing.T) {
	for _, tc := range []struct {
		xp    int
		level int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{9000, 10},
	} {
		assert.Equal(t, tc.level, LevelForXP(tc.xp), "xp=%d", tc.xp)
	}
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleStudent.IsValid())
	assert.True(t, RoleTeacher.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, RoleUnset.IsValid())
	assert.False(t, Role("wizard").IsValid())
}

func TestCloneIsIndependent(t *testing.T) {
	p := &UserProfile{
		ID:     "a_x_com",
		Name:   "Ann",
		Badges: []Badge{{ID: "starter", Name: "Starter"}},
	}

	clone := p.Clone()
	clone.Name = "Other"
	clone.Badges[0].Name = "Changed"
	clone.Badges = append(clone.Badges, Badge{ID: "extra"})

	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, "Starter", p.Badges[0].Name)
	assert.Len(t, p.Badges, 1)
}

func TestHasBadge(t *testing.T) {
	p := &UserProfile{Badges: []Badge{{ID: "starter"}}}
	assert.True(t, p.HasBadge("starter"))
	assert.False(t, p.HasBadge("veteran"))
}
