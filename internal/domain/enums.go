package domain

// Rating is the learner's self-assessed recall on the 3-button scale.
type Rating string

const (
	RatingForgot Rating = "FORGOT"
	RatingAlmost Rating = "ALMOST"
	RatingGotIt  Rating = "GOT_IT"
)

func (r Rating) String() string { return string(r) }

func (r Rating) IsValid() bool {
	switch r {
	case RatingForgot, RatingAlmost, RatingGotIt:
		return true
	}
	return false
}

// ParseRating accepts the exact enum names and the legacy numeric buttons
// "1", "2", "3" used by older clients. Anything else is rejected.
func ParseRating(s string) (Rating, error) {
	switch s {
	case "FORGOT", "1":
		return RatingForgot, nil
	case "ALMOST", "2":
		return RatingAlmost, nil
	case "GOT_IT", "3":
		return RatingGotIt, nil
	}
	return "", ErrInvalidRating
}

// SessionStatus represents the persisted state of a study session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusAbandoned SessionStatus = "ABANDONED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusCompleted, SessionStatusAbandoned:
		return true
	}
	return false
}

// SessionOutcome is what the planner reports back to the caller after a
// session start or a rating.
type SessionOutcome string

const (
	OutcomeInSession SessionOutcome = "IN_SESSION"
	OutcomeGoalMet   SessionOutcome = "GOAL_MET"
	OutcomeExhausted SessionOutcome = "EXHAUSTED"
	OutcomeComplete  SessionOutcome = "COMPLETE"
)

func (o SessionOutcome) String() string { return string(o) }

// RewardScheme selects how rating events are converted into points.
type RewardScheme string

const (
	RewardSchemeXP     RewardScheme = "xp"
	RewardSchemeSigned RewardScheme = "signed"
)

func (s RewardScheme) IsValid() bool {
	switch s {
	case RewardSchemeXP, RewardSchemeSigned:
		return true
	}
	return false
}
