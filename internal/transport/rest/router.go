package rest

import "net/http"

// NewRouter registers every REST route on a fresh ServeMux. Probes are
// mounted at the root, the study API under /api/v1.
func NewRouter(health *HealthHandler, study *StudyHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /api/v1/study/sessions", study.StartSession)
	mux.HandleFunc("GET /api/v1/study/sessions/{id}", study.GetSession)
	mux.HandleFunc("DELETE /api/v1/study/sessions/{id}", study.AbandonSession)
	mux.HandleFunc("POST /api/v1/study/sessions/{id}/ratings", study.SubmitRating)
	mux.HandleFunc("GET /api/v1/study/dashboard", study.GetDashboard)
	mux.HandleFunc("PUT /api/v1/study/goal", study.SetDailyGoal)
	mux.HandleFunc("GET /api/v1/study/cards/{id}/history", study.GetCardHistory)

	return mux
}
