package http

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-user rate limiters: username -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(username string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[username]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[username] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(username string, userRate rate.Limit, userBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[username] = rate.NewLimiter(userRate, userBurst)
}
