package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/heartmarshall/mnflash-backend/internal/domain"
	"github.com/heartmarshall/mnflash-backend/internal/service/study"
)

// defaultHistoryLimit applies when the client omits ?limit.
const defaultHistoryLimit = 50

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	StartSession(ctx context.Context, input study.StartSessionInput) (study.StartResult, error)
	GetSession(ctx context.Context, input study.SessionInput) (study.SessionView, error)
	SubmitRating(ctx context.Context, input study.SubmitRatingInput) (study.RatingResult, error)
	AbandonSession(ctx context.Context, input study.SessionInput) (domain.StudySession, error)
	GetDashboard(ctx context.Context) (domain.Dashboard, error)
	SetDailyGoal(ctx context.Context, input study.SetDailyGoalInput) (domain.DailyProgress, error)
	GetCardHistory(ctx context.Context, input study.GetCardHistoryInput) (study.CardHistory, error)
}

// StudyHandler serves the study session REST endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type startSessionRequest struct {
	CardID *uuid.UUID `json:"cardId"`
}

type submitRatingRequest struct {
	CardID uuid.UUID   `json:"cardId"`
	Rating ratingInput `json:"rating"`
}

type setGoalRequest struct {
	Goal int `json:"goal"`
}

// ratingInput accepts either an enum name or a legacy 1..3 button number.
type ratingInput string

func (r *ratingInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = ratingInput(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = ratingInput(strconv.Itoa(n))
	return nil
}

// StartSession handles POST /api/v1/study/sessions.
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	result, err := h.svc.StartSession(r.Context(), study.StartSessionInput{CardID: req.CardID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	status := http.StatusOK
	if result.Session != nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, toStartSessionResponse(result))
}

// GetSession handles GET /api/v1/study/sessions/{id}.
func (h *StudyHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	view, err := h.svc.GetSession(r.Context(), study.SessionInput{SessionID: sessionID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionViewResponse{
		Session: toSessionResponse(view.Session),
		Card:    toCardResponse(view.Card),
	})
}

// SubmitRating handles POST /api/v1/study/sessions/{id}/ratings.
func (h *StudyHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req submitRatingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	rating, err := domain.ParseRating(string(req.Rating))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.svc.SubmitRating(r.Context(), study.SubmitRatingInput{
		SessionID: sessionID,
		CardID:    req.CardID,
		Rating:    rating,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRatingResponse(result))
}

// AbandonSession handles DELETE /api/v1/study/sessions/{id}.
func (h *StudyHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	session, err := h.svc.AbandonSession(r.Context(), study.SessionInput{SessionID: sessionID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// GetDashboard handles GET /api/v1/study/dashboard.
func (h *StudyHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDashboardResponse(dash))
}

// SetDailyGoal handles PUT /api/v1/study/goal.
func (h *StudyHandler) SetDailyGoal(w http.ResponseWriter, r *http.Request) {
	var req setGoalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	progress, err := h.svc.SetDailyGoal(r.Context(), study.SetDailyGoalInput{Goal: req.Goal})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(progress))
}

// GetCardHistory handles GET /api/v1/study/cards/{id}/history.
func (h *StudyHandler) GetCardHistory(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	limit, err := queryInt(r, "limit", defaultHistoryLimit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	history, err := h.svc.GetCardHistory(r.Context(), study.GetCardHistoryInput{
		CardID: cardID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardHistoryResponse(history))
}

func (h *StudyHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		body := errorBody{Error: errorDetail{Code: "VALIDATION", Message: verr.Error()}}
		for _, fe := range verr.Errors {
			body.Error.Fields = append(body.Error.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, body)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "CONFLICT", "request conflicts with the current session state")
	case errors.Is(err, domain.ErrStoreUnavailable):
		h.log.WarnContext(r.Context(), "store unavailable", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "temporarily unavailable, retry")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "validation: "+name+": must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}
