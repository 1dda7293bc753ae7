// Package server exposes the pool browser as a small JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/givepool/givepool/internal/donation"
	"github.com/givepool/givepool/internal/model"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr         string
	SourceName   string
	EventsBuffer int
	Fees         donation.FeeSchedule
}

// Event is emitted whenever a donation intent is accepted.
type Event struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Intent    donation.Intent `json:"intent"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	Source          string    `json:"source"`
	Pools           int       `json:"pools"`
	Requests        int64     `json:"requests"`
	Donations       int64     `json:"donations"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service serves a fixed pool collection over HTTP.
type Service struct {
	cfg       Config
	pools     []model.Pool
	submitter donation.Submitter
	logger    *zap.Logger

	mu          sync.RWMutex
	startedAt   time.Time
	requests    int64
	donations   int64
	lastError   string
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a service over pools. The pool slice is shared read-only
// between requests and must not be modified afterwards.
func New(cfg Config, pools []model.Pool, submitter donation.Submitter, logger *zap.Logger) *Service {
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8788"
	}
	if cfg.Fees == nil {
		cfg.Fees = donation.DefaultFees()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if submitter == nil {
		submitter = donation.LogSubmitter{Logger: logger}
	}

	return &Service{
		cfg:       cfg,
		pools:     pools,
		submitter: submitter,
		logger:    logger,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Handler returns the routed HTTP handler.
func (s *Service) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.countRequests)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	api.HandleFunc("/pools", s.handlePools).Methods(http.MethodGet)
	api.HandleFunc("/pools/{id}", s.handlePool).Methods(http.MethodGet)
	api.HandleFunc("/facets", s.handleFacets).Methods(http.MethodGet)
	api.HandleFunc("/quote", s.handleQuote).Methods(http.MethodGet)
	api.HandleFunc("/donations", s.handleDonate).Methods(http.MethodPost)
	api.HandleFunc("/donations", s.handleDonations).Methods(http.MethodGet)
	api.HandleFunc("/stream", s.handleStream).Methods(http.MethodGet)

	return r
}

// Run serves HTTP until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("server listening",
		zap.String("addr", s.cfg.Addr),
		zap.String("source", s.cfg.SourceName),
		zap.Int("pools", len(s.pools)),
	)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.closeSubscribers()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

func (s *Service) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		s.mu.Unlock()
		s.logger.Debug("request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func (s *Service) recordDonation(in donation.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.donations++
	s.lastError = ""
	s.nextEventID++
	s.appendEventLocked(Event{
		ID:        s.nextEventID,
		Type:      "donation_intent",
		Timestamp: in.CreatedAt,
		Intent:    in,
	})
}

func (s *Service) recordError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendEventLocked(ev)
}

// appendEventLocked stores ev and fans it out. Callers hold s.mu so that
// event IDs reach the buffer and subscribers in the order they were issued.
func (s *Service) appendEventLocked(ev Event) {
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		Source:          s.cfg.SourceName,
		Pools:           len(s.pools),
		Requests:        s.requests,
		Donations:       s.donations,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

func (s *Service) closeSubscribers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
}
