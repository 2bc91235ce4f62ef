// Package health provides liveness and readiness reporting for the
// evaluation service. The engine is stateless, so the built-in checks
// verify process health and that the engine still computes a known
// reference diagram correctly.
package health

import (
	"sync"
	"time"
)

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// Check is the outcome of a single named probe
type Check struct {
	Name        string        `json:"name"`
	Status      Status        `json:"status"`
	Message     string        `json:"message,omitempty"`
	LastChecked time.Time     `json:"last_checked"`
	Duration    time.Duration `json:"duration_ms"`
}

// CheckFunc performs one health check
type CheckFunc func() Check

// Checker runs registered probes and aggregates their status
type Checker struct {
	mu      sync.RWMutex
	checks  map[string]CheckFunc
	started time.Time
}

// NewChecker creates a checker with the engine self-test pre-registered
func NewChecker() *Checker {
	c := &Checker{
		checks:  make(map[string]CheckFunc),
		started: time.Now(),
	}
	c.Register("engine", EngineSelfTest)
	return c
}

// Register adds or replaces a named probe
func (c *Checker) Register(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// Response is the aggregate health report
type Response struct {
	Status    Status           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Checks    map[string]Check `json:"checks"`
}

// Check runs every registered probe. The worst individual status wins.
func (c *Checker) Check() Response {
	c.mu.RLock()
	defer c.mu.RUnlock()

	response := Response{
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Uptime:    time.Since(c.started).Round(time.Second).String(),
		Checks:    make(map[string]Check, len(c.checks)),
	}

	for name, checkFunc := range c.checks {
		start := time.Now()
		check := checkFunc()
		check.Name = name
		check.Duration = time.Since(start)
		check.LastChecked = start

		response.Checks[name] = check

		if check.Status == StatusUnhealthy {
			response.Status = StatusUnhealthy
		} else if check.Status == StatusDegraded && response.Status != StatusUnhealthy {
			response.Status = StatusDegraded
		}
	}

	return response
}
