package web

import (
	"net/http"
	"strconv"

	"github.com/parth/tourdates/internal/calendar"
	"github.com/parth/tourdates/internal/logger"
	"github.com/parth/tourdates/internal/tourdate"
)

type calendarResponse struct {
	Season string           `json:"season"`
	Months []calendar.Month `json:"months"`
}

type recentResponse struct {
	Season    string                 `json:"season"`
	TourDates []tourdate.Performance `json:"tour_dates"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	performances, err := s.store.PerformancesBySeason(r.Context(), s.season)
	if err != nil {
		logger.Error("loading calendar", logger.Fields{"season": s.season}, err)
		http.Error(w, "failed to load calendar", http.StatusInternalServerError)
		return
	}
	recent, err := s.store.RecentPerformances(r.Context(), s.season, 0)
	if err != nil {
		logger.Error("loading recent tour dates", logger.Fields{"season": s.season}, err)
		http.Error(w, "failed to load recent tour dates", http.StatusInternalServerError)
		return
	}

	data := struct {
		Season string
		Months []calendar.Month
		Recent []tourdate.Performance
		Total  int
	}{
		Season: s.season,
		Months: calendar.Build(performances),
		Recent: recent,
		Total:  len(performances),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		logger.Error("rendering calendar", nil, err)
	}
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	performances, err := s.store.PerformancesBySeason(r.Context(), s.season)
	if err != nil {
		logger.Error("loading calendar", logger.Fields{"season": s.season}, err)
		writeError(w, http.StatusInternalServerError, "storage_error", "failed to load calendar")
		return
	}

	writeJSON(w, http.StatusOK, calendarResponse{
		Season: s.season,
		Months: calendar.Build(performances),
	})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
			return
		}
		limit = n
	}

	performances, err := s.store.RecentPerformances(r.Context(), s.season, limit)
	if err != nil {
		logger.Error("loading recent tour dates", logger.Fields{"season": s.season}, err)
		writeError(w, http.StatusInternalServerError, "storage_error", "failed to load recent tour dates")
		return
	}

	writeJSON(w, http.StatusOK, recentResponse{
		Season:    s.season,
		TourDates: performances,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
