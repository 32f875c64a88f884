// Package api is the thin HTTP adapter around the simulation engine: it
// decodes requests, delegates to the sim package, and serializes results.
// No engine logic lives here.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/mdilm/manufacturing-game/sim"
	"github.com/mdilm/manufacturing-game/store/sqlite"
)

// Handler holds the dependencies of the HTTP handlers. Store may be nil,
// in which case campaign runs are not persisted.
type Handler struct {
	Store *sqlite.Store
}

// NewHandler creates a handler backed by the given run-history store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// SimulateWeek runs one simulation week. POST /api/simulate.
func (h *Handler) SimulateWeek(w http.ResponseWriter, r *http.Request) {
	var req WeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	week := req.Week
	if week == 0 {
		week = 1
	}
	weeklyTarget := req.WeeklyTarget
	if weeklyTarget == 0 {
		weeklyTarget = req.DemandTarget / sim.DefaultCampaignConfig().Weeks
	}

	res, err := sim.RunWeek(req.config(), week, req.Seed, req.DemandTarget, weeklyTarget, req.CarryOver)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// RunCampaign runs a full campaign and persists its summary.
// POST /api/campaign.
func (h *Handler) RunCampaign(w http.ResponseWriter, r *http.Request) {
	var req CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	cfg, ccfg := req.configs()
	campaign, err := sim.NewCampaign(cfg, ccfg, req.Seed)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	summary, err := campaign.RunAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := CampaignResponse{Summary: summary}
	if h.Store != nil {
		rec, err := h.Store.SaveRun(req.Seed, summary)
		if err != nil {
			logrus.Errorf("persist campaign run: %v", err)
		} else {
			resp.RunID = rec.ID
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListRuns returns persisted campaign runs, newest first. GET /api/runs.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusNotFound, "run history disabled")
		return
	}
	runs, err := h.Store.ListRuns()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []*sqlite.RunRecord{}
	}
	writeJSON(w, http.StatusOK, runs)
}

// GetRun returns one persisted campaign run. GET /api/runs/{id}.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		writeError(w, http.StatusNotFound, "run history disabled")
		return
	}
	rec, err := h.Store.GetRun(chi.URLParam(r, "id"))
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
