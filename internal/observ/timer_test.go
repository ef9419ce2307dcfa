package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	timer := NewTimer()

	idx := timer.Begin("lex")
	time.Sleep(time.Millisecond)
	timer.End(idx, "42 tokens")

	report := timer.Report()
	if len(report.Phases) != 1 {
		t.Fatalf("got %d phases", len(report.Phases))
	}
	phase := report.Phases[0]
	if phase.Name != "lex" || phase.Note != "42 tokens" {
		t.Errorf("phase = %+v", phase)
	}
	if phase.DurationMS <= 0 {
		t.Errorf("DurationMS = %v, want > 0", phase.DurationMS)
	}
	if report.TotalMS < phase.DurationMS {
		t.Errorf("TotalMS %v < phase %v", report.TotalMS, phase.DurationMS)
	}
}

func TestTimerEnd_BadIndex(t *testing.T) {
	timer := NewTimer()
	timer.End(-1, "")
	timer.End(5, "")
	if got := timer.Report(); len(got.Phases) != 0 {
		t.Errorf("Report = %+v, want empty", got)
	}
}

func TestTimerSummary(t *testing.T) {
	timer := NewTimer()
	idx := timer.Begin("load")
	timer.End(idx, "")

	summary := timer.Summary()
	if !strings.HasPrefix(summary, "timings:\n") {
		t.Errorf("summary = %q", summary)
	}
	if !strings.Contains(summary, "load") || !strings.Contains(summary, "total") {
		t.Errorf("summary missing phases: %q", summary)
	}
}
