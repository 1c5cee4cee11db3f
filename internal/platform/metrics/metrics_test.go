package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/deepthoughts/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStatus(t *testing.T) {
	t.Parallel()

	if got := metrics.Status(nil); got != metrics.StatusSuccess {
		t.Errorf("metrics.Status(nil) = %q, want: %q", got, metrics.StatusSuccess)
	}

	if got := metrics.Status(errors.New("x")); got != metrics.StatusFailure {
		t.Errorf("metrics.Status(err) = %q, want: %q", got, metrics.StatusFailure)
	}
}

func TestHandler(t *testing.T) {
	t.Parallel()

	counter := metrics.RequestAuthentications.WithLabelValues(metrics.OutcomeInvalid)
	before := testutil.ToFloat64(counter)
	counter.Inc()

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("counter = %v, want: %v", got, before+1)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("rec.Code = %d, want: %d", rec.Code, http.StatusOK)
	}

	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(body), "deepthoughts_request_authentications_total") {
		t.Error("exposition does not contain deepthoughts_request_authentications_total")
	}
}
