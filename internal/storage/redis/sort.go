package redis

import (
	"sort"

	"github.com/gearhub/gearhub/internal/model"
)

// Index sets lose insertion order, so listings re-sort by timestamp to keep
// parity with the memory backend.

func sortNotesNewestFirst(notes []*model.Note) {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
}

func sortSlotsOldestFirst(slots []*model.TimetableSlot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].CreatedAt.Before(slots[j].CreatedAt)
	})
}

func sortGradesOldestFirst(grades []*model.Grade) {
	sort.Slice(grades, func(i, j int) bool {
		return grades[i].RecordedAt.Before(grades[j].RecordedAt)
	})
}
