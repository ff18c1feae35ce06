package health

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inputtap/internal/store"
)

func TestOverallStatusAggregation(t *testing.T) {
	c := NewChecker()
	c.RegisterFunc("capture", true, func(context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy}
	})
	c.RegisterFunc("queue", false, func(context.Context) CheckResult {
		return CheckResult{Status: StatusDegraded}
	})

	c.RunChecks(context.Background())
	assert.Equal(t, StatusDegraded, c.OverallStatus())
}

func TestCriticalFailureIsUnhealthy(t *testing.T) {
	c := NewChecker()
	c.RegisterFunc("journal", true, func(context.Context) CheckResult {
		return CheckResult{Status: StatusUnhealthy, Message: "down"}
	})

	c.RunChecks(context.Background())
	assert.Equal(t, StatusUnhealthy, c.OverallStatus())
}

func TestNonCriticalFailureDegrades(t *testing.T) {
	c := NewChecker()
	c.RegisterFunc("queue", false, func(context.Context) CheckResult {
		return CheckResult{Status: StatusUnhealthy}
	})

	c.RunChecks(context.Background())
	assert.Equal(t, StatusDegraded, c.OverallStatus())
}

func TestUnregisteredChecksAreUnknown(t *testing.T) {
	c := NewChecker()
	c.RegisterFunc("capture", true, func(context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy}
	})

	// Never ran, so the critical component is still unknown.
	assert.Equal(t, StatusUnknown, c.OverallStatus())
}

func TestCheckTimeout(t *testing.T) {
	c := NewChecker()
	c.Register(&Component{
		Name:     "slow",
		Critical: true,
		Timeout:  10 * time.Millisecond,
		Check: func(ctx context.Context) CheckResult {
			<-ctx.Done()
			time.Sleep(5 * time.Millisecond)
			return CheckResult{Status: StatusHealthy}
		},
	})

	results := c.RunChecks(context.Background())
	assert.Equal(t, StatusUnhealthy, results["slow"].Status)
	assert.Equal(t, "check timed out", results["slow"].Message)
}

func TestCheckPanicIsUnhealthy(t *testing.T) {
	c := NewChecker()
	c.RegisterFunc("broken", true, func(context.Context) CheckResult {
		panic("boom")
	})

	results := c.RunChecks(context.Background())
	assert.Equal(t, StatusUnhealthy, results["broken"].Status)
	assert.Contains(t, results["broken"].Error, "boom")
}

func TestReadinessHandler(t *testing.T) {
	c := NewChecker()
	c.RegisterFunc("capture", true, CaptureCheck(func() bool { return true }))

	rec := httptest.NewRecorder()
	c.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/readyz", nil))
	assert.Equal(t, 503, rec.Code, "not ready until SetReady")

	c.SetReady(true)
	rec = httptest.NewRecorder()
	c.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/readyz", nil))
	require.Equal(t, 200, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Ready)
	assert.Equal(t, StatusHealthy, resp.Status)
	assert.Contains(t, resp.Components, "capture")
}

func TestLivenessHandlerAlwaysOK(t *testing.T) {
	c := NewChecker()
	c.RegisterFunc("journal", true, func(context.Context) CheckResult {
		return CheckResult{Status: StatusUnhealthy}
	})
	c.RunChecks(context.Background())

	rec := httptest.NewRecorder()
	c.LivenessHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, 200, rec.Code)
}

func TestCaptureCheck(t *testing.T) {
	running := false
	check := CaptureCheck(func() bool { return running })

	assert.Equal(t, StatusUnhealthy, check(context.Background()).Status)
	running = true
	assert.Equal(t, StatusHealthy, check(context.Background()).Status)
}

func TestJournalCheck(t *testing.T) {
	j, err := store.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)

	check := JournalCheck(j)
	assert.Equal(t, StatusHealthy, check(context.Background()).Status)

	j.Close()
	assert.Equal(t, StatusUnhealthy, check(context.Background()).Status)
}

func TestDropCheckReportsFreshDropsOnly(t *testing.T) {
	var dropped uint64
	check := DropCheck(func() uint64 { return dropped })

	assert.Equal(t, StatusHealthy, check(context.Background()).Status)

	dropped = 5
	result := check(context.Background())
	assert.Equal(t, StatusDegraded, result.Status)
	assert.Equal(t, uint64(5), result.Details["dropped_since_last_check"])

	// No new drops since the last check.
	assert.Equal(t, StatusHealthy, check(context.Background()).Status)
}
