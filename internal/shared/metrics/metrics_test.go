package metrics

import (
	"strings"
	"testing"
)

func TestRenderExposesCounters(t *testing.T) {
	IncParseStarted()
	IncParseCompleted()
	IncParseEmpty()
	ObserveParseDurationMs(42)
	ObserveParseDurationMs(-1) // clamped to zero

	out := Render()
	for _, want := range []string{
		"resume_parse_started_total",
		"resume_parse_completed_total",
		"resume_parse_empty_total",
		"resume_parse_duration_ms_bucket",
		"resume_parse_duration_ms_sum",
		"resume_parse_duration_ms_count",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}

func TestHistogramObserve(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("count: got %d, want 3", snap.count)
	}
	if snap.sum != 555 {
		t.Fatalf("sum: got %v, want 555", snap.sum)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 2 {
		t.Fatalf("bucket counts: got %v", snap.counts)
	}
}
