package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mnflash-backend/internal/config"
	"github.com/heartmarshall/mnflash-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// newHandler wraps the router in the middleware stack. Auth runs before
// the access log and the rate limiter so both can key on the user.
func newHandler(
	cfg *config.Config,
	router http.Handler,
	validator tokenValidator,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
) http.Handler {
	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(validator, logger),
		middleware.Logger(logger),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
	)(router)
}
