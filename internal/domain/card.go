package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a read-only flashcard owned by the card catalog.
// Front carries the Mongolian prompt, Back the English answer.
type Card struct {
	ID         uuid.UUID
	Front      string
	Back       string
	Phonetic   *string
	AudioURL   *string
	Difficulty int
	CreatedAt  time.Time
}

// CardFilter selects candidate cards for a session.
type CardFilter struct {
	ExcludeIDs []uuid.UUID
	OnlyID     *uuid.UUID
	Limit      int
}

// Default memory parameters for a card the user has never rated.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// MemoryState is the per user×card SM-2 state.
// Interval is measured in days and may be fractional.
type MemoryState struct {
	UserID       uuid.UUID
	CardID       uuid.UUID
	Interval     float64
	EaseFactor   float64
	Repetitions  int
	Lapses       int
	LastReviewed *time.Time
	NextReview   *time.Time
}

// NewMemoryState returns the defaults used before the first rating.
func NewMemoryState(userID, cardID uuid.UUID) MemoryState {
	return MemoryState{
		UserID:     userID,
		CardID:     cardID,
		EaseFactor: DefaultEaseFactor,
	}
}

// IsDue reports whether the card should be reviewed at the given time.
// A card without a scheduled review is always due.
func (m *MemoryState) IsDue(now time.Time) bool {
	if m.NextReview == nil {
		return true
	}
	return !m.NextReview.After(now)
}

// Snapshot captures the memory state before a rating, for the review log.
func (m *MemoryState) Snapshot() *MemorySnapshot {
	return &MemorySnapshot{
		Interval:     m.Interval,
		EaseFactor:   m.EaseFactor,
		Repetitions:  m.Repetitions,
		Lapses:       m.Lapses,
		LastReviewed: m.LastReviewed,
		NextReview:   m.NextReview,
	}
}

// MemorySnapshot is the JSON-serialisable prior state stored with a review log.
type MemorySnapshot struct {
	Interval     float64    `json:"interval"`
	EaseFactor   float64    `json:"ease_factor"`
	Repetitions  int        `json:"repetitions"`
	Lapses       int        `json:"lapses"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
	NextReview   *time.Time `json:"next_review,omitempty"`
}
