package study

import "github.com/heartmarshall/mnflash-backend/internal/domain"

// StartResult is the outcome of StartSession. Session and Card are set only
// when Outcome is IN_SESSION.
type StartResult struct {
	Outcome  domain.SessionOutcome
	Progress domain.DailyProgress
	Session  *domain.StudySession
	Card     *domain.Card
}

// RatingResult is the outcome of SubmitRating. NextCard is set when Outcome
// is IN_SESSION.
type RatingResult struct {
	Outcome  domain.SessionOutcome
	State    domain.MemoryState
	Points   int
	Progress domain.DailyProgress
	Session  domain.StudySession
	NextCard *domain.Card
}

// SessionView is a session together with the card under its cursor.
type SessionView struct {
	Session domain.StudySession
	Card    *domain.Card
}

// CardHistory is one page of a card's review log.
type CardHistory struct {
	Logs  []domain.ReviewLog
	Total int
}
