package schedule

import (
	"testing"
	"time"

	"github.com/robfig/cron/v3"

	"travel-weather-api/pkg/resource"
)

func TestShippedCronExpressionParses(t *testing.T) {
	expression := resource.GetString("app.prewarm.cron")
	if expression == "" {
		t.Fatal("app.prewarm.cron is not configured")
	}

	// cron.New() uses the standard 5-field parser, so the shipped
	// expression must satisfy it or AddFunc fails at startup.
	if _, err := cron.ParseStandard(expression); err != nil {
		t.Errorf("configured prewarm cron %q does not parse: %v", expression, err)
	}
}

func TestLockSettingsDefaults(t *testing.T) {
	s := NewPrewarmScheduler(nil, nil, &PrewarmSchedulerConfig{})

	if got := s.getLockTTL(); got != 10*time.Minute {
		t.Errorf("getLockTTL() = %v, want 10m", got)
	}
	if got := s.getRefreshInterval(); got != time.Minute {
		t.Errorf("getRefreshInterval() = %v, want 1m", got)
	}

	s = NewPrewarmScheduler(nil, nil, &PrewarmSchedulerConfig{
		LockTTL:         time.Hour,
		RefreshInterval: 5 * time.Minute,
	})
	if got := s.getLockTTL(); got != time.Hour {
		t.Errorf("getLockTTL() = %v, want 1h", got)
	}
	if got := s.getRefreshInterval(); got != 5*time.Minute {
		t.Errorf("getRefreshInterval() = %v, want 5m", got)
	}
}
