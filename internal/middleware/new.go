package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"proxy-jobs-export/pkg/log"
)

const (
	maxClients = 1000
	clientTTL  = 5 * time.Minute
)

// Middleware holds the shared state of the HTTP middlewares.
type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates the middleware set. requestsPerMin bounds how often one client
// may trigger a build; zero or less disables the limit.
func New(l log.Logger, requestsPerMin int) Middleware {
	m := Middleware{
		l:        l,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, clientTTL),
		rate:     rate.Inf,
		burst:    1,
	}
	if requestsPerMin > 0 {
		m.rate = rate.Limit(float64(requestsPerMin) / 60.0)
		m.burst = max(requestsPerMin/10, 1)
	}
	return m
}
