package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCollector_Lifecycle(t *testing.T) {
	c := NewCollector()

	c.JobStarted()
	c.JobStarted()
	c.JobCompleted()
	c.JobFailed()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	for metric, want := range map[string]string{
		"ytfetch_jobs_started_total":   "2",
		"ytfetch_jobs_completed_total": "1",
		"ytfetch_jobs_failed_total":    "1",
		"ytfetch_jobs_in_flight":       "0",
	} {
		found := false
		for _, line := range strings.Split(body, "\n") {
			if strings.HasPrefix(line, metric+" ") {
				found = true
				if !strings.HasSuffix(line, " "+want) {
					t.Errorf("Expected %s to be %s, got line %q", metric, want, line)
				}
			}
		}
		if !found {
			t.Errorf("Metric %s not exposed", metric)
		}
	}
}

func TestNewCollector_IndependentRegistries(t *testing.T) {
	// Two collectors must not clash on registration.
	first := NewCollector()
	second := NewCollector()

	first.JobStarted()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	second.Handler().ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), "ytfetch_jobs_started_total 1") {
		t.Error("Second collector observed first collector's counts")
	}
}
