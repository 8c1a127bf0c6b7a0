// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session tracks the trial and premium state that gates searches.
// A Session is created once, loaded from a Store, and saves after every
// mutation. Free users see a handful of results, a trial grants a fixed
// number of searches for a week, and premium lifts the result cap.
package session

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Trial terms.
const (
	TrialDuration = 7 * 24 * time.Hour
	TrialSearches = 20
)

// Result caps per tier.
const (
	FreeResultLimit    = 5
	TrialResultLimit   = 20
	PremiumResultLimit = 100
)

var (
	// ErrTrialUsed is returned when an email already had a trial.
	ErrTrialUsed = errors.New("this email has already been used for a free trial")

	// ErrNoSearchesRemaining is returned when an active trial has no
	// searches left.
	ErrNoSearchesRemaining = errors.New("no trial searches remaining")

	// ErrEmailRequired is returned when starting a trial without an email.
	ErrEmailRequired = errors.New("email is required to start a trial")
)

// Tier is the user's access level.
type Tier string

const (
	TierFree    Tier = "free"
	TierTrial   Tier = "trial"
	TierPremium Tier = "premium"
)

// State is the persisted session.
type State struct {
	TrialActive       bool      `json:"trial_active"`
	Premium           bool      `json:"premium"`
	TrialEndDate      time.Time `json:"trial_end_date,omitzero"`
	TrialEmail        string    `json:"trial_email,omitempty"`
	SearchesRemaining int       `json:"searches_remaining"`
	UsedTrialEmails   []string  `json:"used_trial_emails,omitempty"`
}

// Tier derives the access level. An active trial outranks premium.
func (s State) Tier() Tier {
	switch {
	case s.TrialActive:
		return TierTrial
	case s.Premium:
		return TierPremium
	default:
		return TierFree
	}
}

// ResultLimit returns how many places the tier may see.
func (s State) ResultLimit() int {
	switch s.Tier() {
	case TierTrial:
		return TrialResultLimit
	case TierPremium:
		return PremiumResultLimit
	default:
		return FreeResultLimit
	}
}

func (s State) clone() State {
	s.UsedTrialEmails = slices.Clone(s.UsedTrialEmails)
	return s
}

// Store persists State.
type Store interface {
	Load() (State, error)
	Save(State) error
}

// Grant is the outcome of a permitted search.
type Grant struct {
	Tier              Tier `json:"tier"`
	Limit             int  `json:"limit"`
	SearchesRemaining int  `json:"searches_remaining"`
}

// Session guards State with a mutex and persists every change. It is safe
// for concurrent use.
type Session struct {
	mu     sync.Mutex
	store  Store
	state  State
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets the logger for failures that have no caller to return to.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger.Named("session") }
}

// Open loads the session from store. An expired trial is ended and saved.
func Open(store Store, opts ...Option) (*Session, error) {
	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	s := &Session{store: store, state: state, now: time.Now, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.expireLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// State returns a copy of the current state. An expired trial reads as
// ended even when saving the expiry fails; the save is retried on the next
// call.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.expireLocked(); err != nil {
		s.logger.Warn("saving expired trial", zap.Error(err))
		return s.endedLocked()
	}
	return s.state.clone()
}

// HasUsedTrial reports whether email already had a trial.
func (s *Session) HasUsedTrial(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.state.UsedTrialEmails, normalizeEmail(email))
}

// StartTrial begins a trial for email. Each email gets one trial.
func (s *Session) StartTrial(email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrEmailRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.state.UsedTrialEmails, email) {
		return ErrTrialUsed
	}

	next := s.state.clone()
	next.TrialActive = true
	next.TrialEndDate = s.now().Add(TrialDuration)
	next.TrialEmail = email
	next.SearchesRemaining = TrialSearches
	next.UsedTrialEmails = append(next.UsedTrialEmails, email)
	return s.commitLocked(next)
}

// EndTrial returns the session to the free tier. Ending a trial also
// cancels premium. The trial email stays recorded as used.
func (s *Session) EndTrial() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(s.endedLocked())
}

// ActivatePremium upgrades the session. A running trial ends.
func (s *Session) ActivatePremium() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	next.Premium = true
	if next.TrialActive {
		next.TrialActive = false
		next.TrialEndDate = time.Time{}
		next.SearchesRemaining = 0
	}
	return s.commitLocked(next)
}

// RemainingDays returns the whole days left in the trial, rounded up.
func (s *Session) RemainingDays() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.TrialEndDate.IsZero() {
		return 0
	}
	days := math.Ceil(s.state.TrialEndDate.Sub(s.now()).Hours() / 24)
	return max(0, int(days))
}

// DecrementSearches uses one trial search. It never goes below zero.
func (s *Session) DecrementSearches() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.SearchesRemaining <= 0 {
		return nil
	}
	next := s.state.clone()
	next.SearchesRemaining--
	return s.commitLocked(next)
}

// UseSearch authorizes one search. Trial users spend a search and fail with
// ErrNoSearchesRemaining once none are left; free and premium users are
// never refused, only capped.
func (s *Session) UseSearch() (Grant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.expireLocked(); err != nil {
		return Grant{}, err
	}

	if s.state.TrialActive {
		if s.state.SearchesRemaining <= 0 {
			return Grant{Tier: TierTrial}, ErrNoSearchesRemaining
		}
		next := s.state.clone()
		next.SearchesRemaining--
		if err := s.commitLocked(next); err != nil {
			return Grant{}, err
		}
	}
	return Grant{
		Tier:              s.state.Tier(),
		Limit:             s.state.ResultLimit(),
		SearchesRemaining: s.state.SearchesRemaining,
	}, nil
}

func (s *Session) endedLocked() State {
	next := s.state.clone()
	if next.TrialActive && next.TrialEmail != "" && !slices.Contains(next.UsedTrialEmails, next.TrialEmail) {
		next.UsedTrialEmails = append(next.UsedTrialEmails, next.TrialEmail)
	}
	next.TrialActive = false
	next.TrialEndDate = time.Time{}
	next.TrialEmail = ""
	next.SearchesRemaining = 0
	next.Premium = false
	return next
}

// expireLocked ends a trial whose end date has passed.
func (s *Session) expireLocked() error {
	if !s.state.TrialActive || s.state.TrialEndDate.After(s.now()) {
		return nil
	}
	return s.commitLocked(s.endedLocked())
}

// commitLocked saves next and adopts it only if the save succeeds.
func (s *Session) commitLocked(next State) error {
	if err := s.store.Save(next); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	s.state = next
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
