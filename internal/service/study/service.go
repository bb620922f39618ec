package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByID(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	List(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error)
	Count(ctx context.Context) (int, error)
}

type memoryStateRepo interface {
	Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.MemoryState, error)
	Upsert(ctx context.Context, state *domain.MemoryState) error
	CountStudied(ctx context.Context, userID uuid.UUID) (int, error)
	CountMastered(ctx context.Context, userID uuid.UUID, minRepetitions int) (int, error)
	CountDue(ctx context.Context, userID uuid.UUID, before time.Time) (int, error)
}

type progressRepo interface {
	Get(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyProgress, error)
	AtomicIncrement(ctx context.Context, userID uuid.UUID, date time.Time, deltaCards, deltaPoints, defaultGoal int) (*domain.DailyProgress, error)
	SetGoal(ctx context.Context, userID uuid.UUID, date time.Time, goal int) (*domain.DailyProgress, error)
}

type reviewLogRepo interface {
	Append(ctx context.Context, log *domain.ReviewLog) error
	ListByCard(ctx context.Context, userID, cardID uuid.UUID, limit, offset int) ([]domain.ReviewLog, int, error)
}

type markRepo interface {
	MarkIdempotent(ctx context.Context, userID, cardID uuid.UUID, date time.Time) error
	ListMarked(ctx context.Context, userID uuid.UUID, date time.Time) ([]uuid.UUID, error)
}

type sessionRepo interface {
	Create(ctx context.Context, session *domain.StudySession) error
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.StudySession, error)
	Advance(ctx context.Context, userID, sessionID uuid.UUID, expectedCursor, points int, complete bool, now time.Time) error
	Abandon(ctx context.Context, userID, sessionID uuid.UUID, now time.Time) error
	AbandonActive(ctx context.Context, userID uuid.UUID, now time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// CompletionHook is notified after a session's last card has been rated.
type CompletionHook func(ctx context.Context, session domain.StudySession)

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the session planner on top of the sm2 scheduler.
type Service struct {
	cards    cardRepo
	states   memoryStateRepo
	progress progressRepo
	reviews  reviewLogRepo
	marks    markRepo
	sessions sessionRepo
	tx       txManager
	clock    clock
	reward   RewardPolicy
	log      *slog.Logger
	cfg      domain.SRSConfig

	onComplete CompletionHook
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	states memoryStateRepo,
	progress progressRepo,
	reviews reviewLogRepo,
	marks markRepo,
	sessions sessionRepo,
	tx txManager,
	clk clock,
	cfg domain.SRSConfig,
) (*Service, error) {
	if cfg.DefaultDailyGoal <= 0 {
		return nil, errors.New("default daily goal must be positive")
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.RewardScheme == "" {
		cfg.RewardScheme = domain.RewardSchemeXP
	}
	reward, err := NewRewardPolicy(cfg.RewardScheme)
	if err != nil {
		return nil, fmt.Errorf("reward policy: %w", err)
	}
	if clk == nil {
		clk = SystemClock{}
	}

	return &Service{
		cards:    cards,
		states:   states,
		progress: progress,
		reviews:  reviews,
		marks:    marks,
		sessions: sessions,
		tx:       tx,
		clock:    clk,
		reward:   reward,
		log:      log.With("service", "study"),
		cfg:      cfg,
	}, nil
}

// OnComplete registers a hook called after a session completes. The hook
// runs after the rating transaction has committed.
func (s *Service) OnComplete(hook CompletionHook) {
	s.onComplete = hook
}

// today returns the user's calendar date for the given instant.
func (s *Service) today(now time.Time) time.Time {
	date, _ := calendarDay(now, s.cfg.Location)
	return date
}

// loadProgress returns today's progress, falling back to defaults when the
// user has not rated anything yet today.
func (s *Service) loadProgress(ctx context.Context, userID uuid.UUID, date time.Time) (domain.DailyProgress, error) {
	p, err := s.progress.Get(ctx, userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewDailyProgress(userID, date, s.cfg.DefaultDailyGoal), nil
		}
		return domain.DailyProgress{}, fmt.Errorf("get daily progress: %w", err)
	}
	return *p, nil
}
