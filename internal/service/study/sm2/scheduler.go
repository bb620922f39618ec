// Package sm2 implements the 3-button variant of the SuperMemo-2 scheduler.
//
// The transition is a pure function of (rating, state, now). It performs no
// I/O and never reads the wall clock.
package sm2

import (
	"math"
	"time"

	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// Tunables of the 3-button variant.
const (
	// ForgotInterval is roughly ten minutes expressed in days.
	ForgotInterval = 0.007

	FirstInterval  = 1.0
	SecondInterval = 6.0

	// AlmostMultiplier grows the interval slightly on a hesitant recall.
	AlmostMultiplier = 1.2
	AlmostPenalty    = 0.15

	// GotItBonus is the SM-2 ease update evaluated at quality 5:
	// EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02)) collapses to EF + 0.1.
	GotItBonus = 0.1
)

const day = 24 * time.Hour

// NextState applies rating to state at instant now and returns the new state.
// The returned state has LastReviewed == now and NextReview strictly after now.
//
// A rating outside the 3-button scale leaves the state unchanged apart from
// timestamps; callers must validate ratings before scheduling.
func NextState(rating domain.Rating, state domain.MemoryState, now time.Time) domain.MemoryState {
	next := normalize(state)

	switch rating {
	case domain.RatingForgot:
		next.Repetitions = 0
		next.Lapses++
		next.Interval = ForgotInterval

	case domain.RatingAlmost:
		next.Interval = math.Max(FirstInterval, next.Interval*AlmostMultiplier)
		next.EaseFactor = math.Max(domain.MinEaseFactor, next.EaseFactor-AlmostPenalty)

	case domain.RatingGotIt:
		next.Repetitions++
		switch next.Repetitions {
		case 1:
			next.Interval = FirstInterval
		case 2:
			next.Interval = SecondInterval
		default:
			// Floor at one day for states that skipped the 1/6 ladder.
			next.Interval = math.Max(FirstInterval, math.Round(next.Interval*next.EaseFactor))
		}
		next.EaseFactor = math.Max(domain.MinEaseFactor, next.EaseFactor+GotItBonus)
	}

	next.EaseFactor = roundEase(next.EaseFactor)

	reviewed := now
	due := now.Add(Duration(next.Interval))
	next.LastReviewed = &reviewed
	next.NextReview = &due

	return next
}

// Duration converts a fractional interval in days to a time.Duration.
// Non-positive or sub-nanosecond intervals yield one nanosecond; intervals
// beyond the range of time.Duration saturate.
func Duration(intervalDays float64) time.Duration {
	ns := intervalDays * float64(day)
	if ns >= math.MaxInt64 {
		return math.MaxInt64
	}
	d := time.Duration(ns)
	if d < 1 {
		return 1
	}
	return d
}

// normalize repairs states read from storage that violate the invariants:
// an unset ease takes the default, a low ease is lifted to the floor and
// negative counters are reset.
func normalize(s domain.MemoryState) domain.MemoryState {
	if s.EaseFactor == 0 {
		s.EaseFactor = domain.DefaultEaseFactor
	}
	if s.EaseFactor < domain.MinEaseFactor || math.IsNaN(s.EaseFactor) {
		s.EaseFactor = domain.MinEaseFactor
	}
	if s.Interval < 0 || math.IsNaN(s.Interval) {
		s.Interval = 0
	}
	s.Repetitions = max(0, s.Repetitions)
	s.Lapses = max(0, s.Lapses)
	return s
}

func roundEase(e float64) float64 {
	return math.Round(e*100) / 100
}
