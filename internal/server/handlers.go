package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/givepool/givepool/internal/donation"
	"github.com/givepool/givepool/internal/filter"
	"github.com/givepool/givepool/internal/model"
)

// PoolView is a pool plus derived display fields.
type PoolView struct {
	model.Pool
	Progress float64 `json:"progress"`
}

// PoolsResponse is served at /v1/pools.
type PoolsResponse struct {
	Filter filterEcho `json:"filter"`
	Total  int        `json:"total"`
	Pools  []PoolView `json:"pools"`
}

type filterEcho struct {
	Query      string           `json:"query"`
	Categories []model.Category `json:"categories"`
	Statuses   []model.Status   `json:"statuses"`
}

// DonateRequest is the body of POST /v1/donations.
type DonateRequest struct {
	PoolID string `json:"pool_id"`
	Amount string `json:"amount"`
	Asset  string `json:"asset"`
}

// DonateResponse acknowledges an accepted intent.
type DonateResponse struct {
	Intent donation.Intent `json:"intent"`
	Quote  donation.Quote  `json:"quote"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handlePools(w http.ResponseWriter, r *http.Request) {
	state, err := StateFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results := filter.Apply(s.pools, state)
	views := make([]PoolView, 0, len(results))
	for _, p := range results {
		views = append(views, PoolView{Pool: p, Progress: p.Progress()})
	}

	writeJSON(w, http.StatusOK, PoolsResponse{
		Filter: filterEcho{
			Query:      state.Query(),
			Categories: nonNil(state.SelectedCategories()),
			Statuses:   nonNil(state.SelectedStatuses()),
		},
		Total: len(views),
		Pools: views,
	})
}

func (s *Service) handlePool(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, ok := model.FindPool(s.pools, id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %q", donation.ErrPoolNotFound, id))
		return
	}
	writeJSON(w, http.StatusOK, PoolView{Pool: p, Progress: p.Progress()})
}

func (s *Service) handleFacets(w http.ResponseWriter, r *http.Request) {
	state, err := StateFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, filter.FacetsFor(s.pools, state))
}

func (s *Service) handleQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	asset, err := parseAssetParam(q.Get("asset"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, donation.NewQuote(q.Get("amount"), asset, s.cfg.Fees))
}

func (s *Service) handleDonate(w http.ResponseWriter, r *http.Request) {
	var req DonateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}

	asset, err := parseAssetParam(req.Asset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	intent, err := donation.NewIntent(s.pools, req.PoolID, req.Amount, asset)
	switch {
	case errors.Is(err, donation.ErrPoolNotFound):
		writeError(w, http.StatusNotFound, err)
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.submitter.Submit(r.Context(), intent); err != nil {
		s.recordError(err)
		writeError(w, http.StatusBadGateway, fmt.Errorf("submitting donation: %w", err))
		return
	}
	s.recordDonation(intent)

	writeJSON(w, http.StatusAccepted, DonateResponse{
		Intent: intent,
		Quote:  donation.NewQuote(req.Amount, asset, s.cfg.Fees),
	})
}

func (s *Service) handleDonations(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Let the client know the stream is live before the first donation.
	writeSSE(w, Event{Type: "hello", Timestamp: time.Now()})
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-ch:
			if !open {
				return
			}
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

// StateFromQuery builds a filter state from `q`, `category` and `status`
// parameters. Category and status may repeat or hold comma-separated lists.
func StateFromQuery(v url.Values) (filter.State, error) {
	var categories []model.Category
	for _, name := range splitParams(v["category"]) {
		c, err := model.ParseCategory(name)
		if err != nil {
			return filter.State{}, err
		}
		categories = append(categories, c)
	}

	var statuses []model.Status
	for _, name := range splitParams(v["status"]) {
		st, err := model.ParseStatus(name)
		if err != nil {
			return filter.State{}, err
		}
		statuses = append(statuses, st)
	}

	// NewState builds a set, so repeated values collapse rather than toggle.
	return filter.NewState(v.Get("q"), categories, statuses), nil
}

func splitParams(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseAssetParam(s string) (model.Asset, error) {
	if strings.TrimSpace(s) == "" {
		return model.AssetXLM, nil
	}
	a, err := model.ParseAsset(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", donation.ErrUnknownAsset, s)
	}
	return a, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}
