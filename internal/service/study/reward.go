package study

import (
	"fmt"

	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// RewardPolicy converts a rating into the points recorded on the review log
// and added to the day's total.
type RewardPolicy interface {
	Points(rating domain.Rating) int
}

// XPPolicy awards one point for a confident recall and nothing otherwise.
type XPPolicy struct{}

func (XPPolicy) Points(rating domain.Rating) int {
	if rating == domain.RatingGotIt {
		return 1
	}
	return 0
}

// SignedPolicy rewards a recall and penalises a lapse.
type SignedPolicy struct{}

func (SignedPolicy) Points(rating domain.Rating) int {
	switch rating {
	case domain.RatingGotIt:
		return 1
	case domain.RatingForgot:
		return -1
	default:
		return 0
	}
}

// NewRewardPolicy returns the policy for the configured scheme.
func NewRewardPolicy(scheme domain.RewardScheme) (RewardPolicy, error) {
	switch scheme {
	case domain.RewardSchemeXP:
		return XPPolicy{}, nil
	case domain.RewardSchemeSigned:
		return SignedPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown reward scheme %q", scheme)
	}
}
