package health

import (
	"context"
	"sync"

	"inputtap/internal/store"
)

// CaptureCheck reports whether the hook session is delivering events.
func CaptureCheck(running func() bool) Check {
	return func(_ context.Context) CheckResult {
		if !running() {
			return CheckResult{
				Status:  StatusUnhealthy,
				Message: "capture session not running",
			}
		}
		return CheckResult{Status: StatusHealthy}
	}
}

// JournalCheck reports whether the event journal accepts queries.
func JournalCheck(journal *store.Journal) Check {
	return func(ctx context.Context) CheckResult {
		if err := journal.Ping(ctx); err != nil {
			return CheckResult{
				Status:  StatusUnhealthy,
				Message: "journal unreachable",
				Error:   err.Error(),
			}
		}
		return CheckResult{Status: StatusHealthy}
	}
}

// DropCheck watches the session's drop counter. Capture keeps working
// when the queue sheds load, so new drops degrade rather than fail.
func DropCheck(dropped func() uint64) Check {
	var mu sync.Mutex
	var seen uint64
	return func(_ context.Context) CheckResult {
		mu.Lock()
		total := dropped()
		fresh := total - seen
		seen = total
		mu.Unlock()

		if fresh > 0 {
			return CheckResult{
				Status:  StatusDegraded,
				Message: "dispatch queue dropping events",
				Details: map[string]any{"dropped_since_last_check": fresh, "dropped_total": total},
			}
		}
		return CheckResult{Status: StatusHealthy, Details: map[string]any{"dropped_total": total}}
	}
}
