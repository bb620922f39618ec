package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDailyGoal is the number of cards a user aims to review per day
// unless they chose otherwise.
const DefaultDailyGoal = 20

// DailyProgress is the per user×calendar-day counter.
type DailyProgress struct {
	UserID        uuid.UUID
	Date          time.Time
	CardsReviewed int
	DailyGoal     int
	TotalPoints   int
}

// NewDailyProgress returns an empty progress record for the given day.
func NewDailyProgress(userID uuid.UUID, date time.Time, goal int) DailyProgress {
	return DailyProgress{
		UserID:    userID,
		Date:      date,
		DailyGoal: goal,
	}
}

// Remaining returns how many cards are left before the goal is met.
func (p DailyProgress) Remaining() int {
	return max(0, p.DailyGoal-p.CardsReviewed)
}

// GoalMet reports whether today's goal has been reached.
func (p DailyProgress) GoalMet() bool {
	return p.CardsReviewed >= p.DailyGoal
}

// ReviewLog records a single rating event. Written once, never updated.
type ReviewLog struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CardID     uuid.UUID
	SessionID  *uuid.UUID
	Rating     Rating
	Points     int
	PrevState  *MemorySnapshot
	NextReview time.Time
	ReviewedAt time.Time
}

// StudySession is the persisted review queue for one start of the planner.
type StudySession struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	CardIDs     []uuid.UUID
	Cursor      int
	Status      SessionStatus
	Points      int
	StartedAt   time.Time
	FinishedAt  *time.Time
	OnlyCardID  *uuid.UUID
}

// CurrentCardID returns the card under the cursor.
func (s *StudySession) CurrentCardID() (uuid.UUID, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.CardIDs) {
		return uuid.Nil, false
	}
	return s.CardIDs[s.Cursor], true
}

// Remaining returns the number of cards not yet rated in this session.
func (s *StudySession) Remaining() int {
	return max(0, len(s.CardIDs)-s.Cursor)
}

// Dashboard holds today's progress and card statistics for one user.
type Dashboard struct {
	Date          time.Time
	CardsReviewed int
	DailyGoal     int
	Remaining     int
	TotalPoints   int
	TotalCards    int
	StudiedCards  int
	MasteredCards int
	DueCards      int
	ActiveSession *uuid.UUID
}

// MasteredRepetitions is the streak of successful recalls after which a
// card counts as mastered on the dashboard.
const MasteredRepetitions = 3

// SRSConfig holds the planner settings shared by all users.
type SRSConfig struct {
	DefaultDailyGoal int
	Location         *time.Location
	RewardScheme     RewardScheme
}
