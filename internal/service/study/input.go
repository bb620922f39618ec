package study

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// MaxDailyGoal bounds the goal a user may set for one day.
const MaxDailyGoal = 500

// StartSessionInput holds the parameters for starting a study session.
type StartSessionInput struct {
	// CardID restricts the session to a single card (relearn flow).
	CardID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	if i.CardID != nil && *i.CardID == uuid.Nil {
		return domain.NewValidationError("card_id", "must not be empty")
	}
	return nil
}

// SubmitRatingInput holds the parameters for rating the current card.
type SubmitRatingInput struct {
	SessionID uuid.UUID
	CardID    uuid.UUID
	Rating    domain.Rating
}

// Validate rejects ratings outside the 3-button scale before anything else,
// then checks the remaining fields.
func (i *SubmitRatingInput) Validate() error {
	if !i.Rating.IsValid() {
		return domain.ErrInvalidRating
	}

	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SessionInput identifies a study session.
type SessionInput struct {
	SessionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *SessionInput) Validate() error {
	if i.SessionID == uuid.Nil {
		return domain.NewValidationError("session_id", "required")
	}
	return nil
}

// SetDailyGoalInput holds the new goal for today.
type SetDailyGoalInput struct {
	Goal int
}

// Validate checks all fields and collects all errors.
func (i *SetDailyGoalInput) Validate() error {
	if i.Goal < 1 || i.Goal > MaxDailyGoal {
		return domain.NewValidationError("goal", "must be between 1 and 500")
	}
	return nil
}

// GetCardHistoryInput holds the parameters for fetching card review history.
type GetCardHistoryInput struct {
	CardID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *GetCardHistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
