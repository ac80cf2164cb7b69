package ads

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(nopWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestFetchConvertsMicros(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("customer_id"); got != "9680382253" {
			t.Errorf("customer_id = %q", got)
		}
		if got := r.URL.Query().Get("start_date"); got != "2024-01-01" {
			t.Errorf("start_date = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"date":"2024-01-01","campaign_id":"11","campaign_name":"Campaign_A","cost_micros":1000000},
			{"date":"2024-01-02","campaign_id":"","campaign_name":"","cost_micros":0}
		]`))
	}))
	defer srv.Close()

	c := NewClient(NewHTTPClient(2*time.Second), srv.URL, discardLogger())
	rows, err := c.Fetch(context.Background(), "9680382253", "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Cost != 1.0 {
		t.Fatalf("1,000,000 micros should be exactly 1.0, got %v", rows[0].Cost)
	}
	if rows[1].Cost != 0 {
		t.Fatalf("0 micros should be 0, got %v", rows[1].Cost)
	}
	// centinelas para campos ausentes
	if rows[1].CampaignID != "NA" || rows[1].CampaignName != "NA" {
		t.Fatalf("missing identifiers should default to NA, got %+v", rows[1])
	}
}

func TestFetchAllConcatenatesWithoutDedup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// misma campaña+fecha para los dos accounts
		w.Write([]byte(`[{"date":"2024-01-01","campaign_id":"11","campaign_name":"Campaign_A","cost_micros":2000000}]`))
	}))
	defer srv.Close()

	c := NewClient(NewHTTPClient(2*time.Second), srv.URL, discardLogger())
	rows, err := c.FetchAll(context.Background(), []string{"9680382253", "4840834180"}, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected both account rows to survive, got %d", len(rows))
	}
}

func TestFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(NewHTTPClient(2*time.Second), srv.URL, discardLogger())
	if _, err := c.Fetch(context.Background(), "x", "2024-01-01", "2024-01-31"); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
	}))
	defer srv.Close()

	c := NewClient(NewHTTPClient(200*time.Millisecond), srv.URL, discardLogger())
	if _, err := c.Fetch(context.Background(), "x", "2024-01-01", "2024-01-31"); err == nil {
		t.Fatal("expected timeout error, got nil")
	}
}
