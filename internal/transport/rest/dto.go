package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/mnflash-backend/internal/domain"
	"github.com/heartmarshall/mnflash-backend/internal/service/study"
)

const dateLayout = "2006-01-02"

type cardResponse struct {
	ID         uuid.UUID `json:"id"`
	Front      string    `json:"front"`
	Back       string    `json:"back"`
	Phonetic   *string   `json:"phonetic,omitempty"`
	AudioURL   *string   `json:"audioUrl,omitempty"`
	Difficulty int       `json:"difficulty"`
}

type progressResponse struct {
	Date          string `json:"date"`
	CardsReviewed int    `json:"cardsReviewed"`
	DailyGoal     int    `json:"dailyGoal"`
	Remaining     int    `json:"remaining"`
	TotalPoints   int    `json:"totalPoints"`
	GoalMet       bool   `json:"goalMet"`
}

type sessionResponse struct {
	ID         uuid.UUID  `json:"id"`
	Date       string     `json:"date"`
	Status     string     `json:"status"`
	Total      int        `json:"total"`
	Position   int        `json:"position"`
	Remaining  int        `json:"remaining"`
	Points     int        `json:"points"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

type memoryStateResponse struct {
	Interval     float64    `json:"interval"`
	EaseFactor   float64    `json:"easeFactor"`
	Repetitions  int        `json:"repetitions"`
	Lapses       int        `json:"lapses"`
	LastReviewed *time.Time `json:"lastReviewed,omitempty"`
	NextReview   *time.Time `json:"nextReview,omitempty"`
}

type startSessionResponse struct {
	Outcome  string           `json:"outcome"`
	Progress progressResponse `json:"progress"`
	Session  *sessionResponse `json:"session,omitempty"`
	Card     *cardResponse    `json:"card,omitempty"`
}

type sessionViewResponse struct {
	Session sessionResponse `json:"session"`
	Card    *cardResponse   `json:"card,omitempty"`
}

type ratingResponse struct {
	Outcome  string              `json:"outcome"`
	Points   int                 `json:"points"`
	State    memoryStateResponse `json:"state"`
	Progress progressResponse    `json:"progress"`
	Session  sessionResponse     `json:"session"`
	NextCard *cardResponse       `json:"nextCard,omitempty"`
}

type dashboardResponse struct {
	Date          string     `json:"date"`
	CardsReviewed int        `json:"cardsReviewed"`
	DailyGoal     int        `json:"dailyGoal"`
	Remaining     int        `json:"remaining"`
	TotalPoints   int        `json:"totalPoints"`
	TotalCards    int        `json:"totalCards"`
	StudiedCards  int        `json:"studiedCards"`
	MasteredCards int        `json:"masteredCards"`
	DueCards      int        `json:"dueCards"`
	ActiveSession *uuid.UUID `json:"activeSession,omitempty"`
}

type reviewLogResponse struct {
	ID         uuid.UUID            `json:"id"`
	SessionID  *uuid.UUID           `json:"sessionId,omitempty"`
	Rating     string               `json:"rating"`
	Points     int                  `json:"points"`
	PrevState  *memoryStateResponse `json:"prevState,omitempty"`
	NextReview time.Time            `json:"nextReview"`
	ReviewedAt time.Time            `json:"reviewedAt"`
}

type cardHistoryResponse struct {
	Items []reviewLogResponse `json:"items"`
	Total int                 `json:"total"`
}

func toCardResponse(c *domain.Card) *cardResponse {
	if c == nil {
		return nil
	}
	return &cardResponse{
		ID:         c.ID,
		Front:      c.Front,
		Back:       c.Back,
		Phonetic:   c.Phonetic,
		AudioURL:   c.AudioURL,
		Difficulty: c.Difficulty,
	}
}

func toProgressResponse(p domain.DailyProgress) progressResponse {
	return progressResponse{
		Date:          p.Date.Format(dateLayout),
		CardsReviewed: p.CardsReviewed,
		DailyGoal:     p.DailyGoal,
		Remaining:     p.Remaining(),
		TotalPoints:   p.TotalPoints,
		GoalMet:       p.GoalMet(),
	}
}

func toSessionResponse(s domain.StudySession) sessionResponse {
	return sessionResponse{
		ID:         s.ID,
		Date:       s.Date.Format(dateLayout),
		Status:     s.Status.String(),
		Total:      len(s.CardIDs),
		Position:   s.Cursor,
		Remaining:  s.Remaining(),
		Points:     s.Points,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
	}
}

func toMemoryStateResponse(m domain.MemoryState) memoryStateResponse {
	return memoryStateResponse{
		Interval:     m.Interval,
		EaseFactor:   m.EaseFactor,
		Repetitions:  m.Repetitions,
		Lapses:       m.Lapses,
		LastReviewed: m.LastReviewed,
		NextReview:   m.NextReview,
	}
}

func toStartSessionResponse(r study.StartResult) startSessionResponse {
	resp := startSessionResponse{
		Outcome:  r.Outcome.String(),
		Progress: toProgressResponse(r.Progress),
		Card:     toCardResponse(r.Card),
	}
	if r.Session != nil {
		s := toSessionResponse(*r.Session)
		resp.Session = &s
	}
	return resp
}

func toRatingResponse(r study.RatingResult) ratingResponse {
	return ratingResponse{
		Outcome:  r.Outcome.String(),
		Points:   r.Points,
		State:    toMemoryStateResponse(r.State),
		Progress: toProgressResponse(r.Progress),
		Session:  toSessionResponse(r.Session),
		NextCard: toCardResponse(r.NextCard),
	}
}

func toDashboardResponse(d domain.Dashboard) dashboardResponse {
	return dashboardResponse{
		Date:          d.Date.Format(dateLayout),
		CardsReviewed: d.CardsReviewed,
		DailyGoal:     d.DailyGoal,
		Remaining:     d.Remaining,
		TotalPoints:   d.TotalPoints,
		TotalCards:    d.TotalCards,
		StudiedCards:  d.StudiedCards,
		MasteredCards: d.MasteredCards,
		DueCards:      d.DueCards,
		ActiveSession: d.ActiveSession,
	}
}

func toCardHistoryResponse(h study.CardHistory) cardHistoryResponse {
	items := make([]reviewLogResponse, 0, len(h.Logs))
	for _, l := range h.Logs {
		item := reviewLogResponse{
			ID:         l.ID,
			SessionID:  l.SessionID,
			Rating:     l.Rating.String(),
			Points:     l.Points,
			NextReview: l.NextReview,
			ReviewedAt: l.ReviewedAt,
		}
		if p := l.PrevState; p != nil {
			item.PrevState = &memoryStateResponse{
				Interval:     p.Interval,
				EaseFactor:   p.EaseFactor,
				Repetitions:  p.Repetitions,
				Lapses:       p.Lapses,
				LastReviewed: p.LastReviewed,
				NextReview:   p.NextReview,
			}
		}
		items = append(items, item)
	}
	return cardHistoryResponse{Items: items, Total: h.Total}
}
