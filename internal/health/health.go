// Package health aggregates liveness and readiness for the capture
// daemon: whether the hook is delivering events, whether the journal
// accepts writes, and whether the queue is shedding load.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Status is the health of one component or of the daemon overall.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
	StatusUnknown   Status = "unknown"
)

// CheckResult is the outcome of one check run.
type CheckResult struct {
	Status      Status         `json:"status"`
	Message     string         `json:"message,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
	LastChecked time.Time      `json:"last_checked"`
	Duration    time.Duration  `json:"duration_ns"`
	Error       string         `json:"error,omitempty"`
}

// Check probes one component.
type Check func(ctx context.Context) CheckResult

// Component is a named, registered check. A critical component that
// fails makes the whole daemon unhealthy; a non-critical one only
// degrades it.
type Component struct {
	Name     string
	Critical bool
	Check    Check
	Timeout  time.Duration
}

// Checker runs registered checks and aggregates their results.
type Checker struct {
	mu         sync.RWMutex
	components map[string]*Component
	results    map[string]CheckResult
	startTime  time.Time
	ready      bool
}

// NewChecker creates an empty checker. It reports not ready until
// SetReady(true).
func NewChecker() *Checker {
	return &Checker{
		components: make(map[string]*Component),
		results:    make(map[string]CheckResult),
		startTime:  time.Now(),
	}
}

// Register adds a component. A zero timeout defaults to 5s.
func (c *Checker) Register(component *Component) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if component.Timeout == 0 {
		component.Timeout = 5 * time.Second
	}
	c.components[component.Name] = component
	c.results[component.Name] = CheckResult{Status: StatusUnknown}
}

// RegisterFunc adds a component from a bare check function.
func (c *Checker) RegisterFunc(name string, critical bool, check Check) {
	c.Register(&Component{Name: name, Critical: critical, Check: check})
}

// SetReady flips the readiness state. The daemon sets it once the hook
// is installed and clears it during shutdown.
func (c *Checker) SetReady(ready bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ready = ready
}

// IsReady reports the readiness state.
func (c *Checker) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// RunChecks runs every registered check concurrently and returns the
// fresh results. A check that panics or outlives its timeout counts as
// unhealthy.
func (c *Checker) RunChecks(ctx context.Context) map[string]CheckResult {
	c.mu.RLock()
	components := make([]*Component, 0, len(c.components))
	for _, comp := range c.components {
		components = append(components, comp)
	}
	c.mu.RUnlock()

	results := make(map[string]CheckResult)
	var resultsMu sync.Mutex
	var wg sync.WaitGroup

	for _, comp := range components {
		wg.Add(1)
		go func(comp *Component) {
			defer wg.Done()

			start := time.Now()
			result := c.runOne(ctx, comp)
			result.LastChecked = start
			result.Duration = time.Since(start)

			c.mu.Lock()
			c.results[comp.Name] = result
			c.mu.Unlock()

			resultsMu.Lock()
			results[comp.Name] = result
			resultsMu.Unlock()
		}(comp)
	}

	wg.Wait()
	return results
}

func (c *Checker) runOne(ctx context.Context, comp *Component) CheckResult {
	checkCtx, cancel := context.WithTimeout(ctx, comp.Timeout)
	defer cancel()

	var result CheckResult
	done := make(chan struct{})
	go func() {
		defer func() {
			if r := recover(); r != nil {
				result = CheckResult{
					Status:  StatusUnhealthy,
					Message: "check panicked",
					Error:   fmt.Sprintf("%v", r),
				}
			}
			close(done)
		}()
		result = comp.Check(checkCtx)
	}()

	select {
	case <-done:
		return result
	case <-checkCtx.Done():
		return CheckResult{
			Status:  StatusUnhealthy,
			Message: "check timed out",
			Error:   checkCtx.Err().Error(),
		}
	}
}

// Results returns the last recorded result per component.
func (c *Checker) Results() map[string]CheckResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results := make(map[string]CheckResult, len(c.results))
	for name, result := range c.results {
		results[name] = result
	}
	return results
}

// OverallStatus folds the last results into one status.
func (c *Checker) OverallStatus() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	hasUnknown := false
	hasDegraded := false
	for name, result := range c.results {
		comp := c.components[name]
		if comp == nil {
			continue
		}
		switch result.Status {
		case StatusUnhealthy:
			if comp.Critical {
				return StatusUnhealthy
			}
			hasDegraded = true
		case StatusDegraded:
			hasDegraded = true
		case StatusUnknown:
			if comp.Critical {
				hasUnknown = true
			}
		}
	}

	if hasUnknown {
		return StatusUnknown
	}
	if hasDegraded {
		return StatusDegraded
	}
	return StatusHealthy
}

// Response is the body served by the health endpoint.
type Response struct {
	Status     Status                 `json:"status"`
	Ready      bool                   `json:"ready"`
	Uptime     string                 `json:"uptime"`
	Components map[string]CheckResult `json:"components,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}

// LivenessHandler answers 200 while the process runs. It deliberately
// checks nothing else: a wedged hook should fail readiness, not get the
// process restarted mid-recording.
func (c *Checker) LivenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "alive",
			"timestamp": time.Now(),
		})
	})
}

// ReadinessHandler runs all checks and answers 200 only when the
// daemon is ready and no critical component is failing.
func (c *Checker) ReadinessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		components := c.RunChecks(r.Context())
		resp := Response{
			Status:     c.OverallStatus(),
			Ready:      c.IsReady(),
			Uptime:     time.Since(c.startTime).Round(time.Second).String(),
			Components: components,
			Timestamp:  time.Now(),
		}

		if !resp.Ready || resp.Status == StatusUnhealthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(resp)
	})
}
