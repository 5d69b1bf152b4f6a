package ratefeed

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

const sampleFeed = `<?xml version="1.0" encoding="utf-8"?>
<rates>
	<rate lender="SBI" product="new-car">8.85</rate>
	<rate lender="HDFC Bank" product="new-car">8.75</rate>
	<rate lender="HDFC Bank" product="used-car">11.25</rate>
	<rate lender="Axis Bank" product="new-car">9.10</rate>
</rates>`

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestParseRates(t *testing.T) {
	rates, err := ParseRates([]byte(sampleFeed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rates) != 4 {
		t.Fatalf("expected 4 rates, got %d", len(rates))
	}
	if rates[1].Lender != "HDFC Bank" || rates[1].Percent != 8.75 {
		t.Errorf("unexpected rate: %+v", rates[1])
	}
}

func TestParseRates_Errors(t *testing.T) {
	bad := map[string]string{
		"malformed": `<rates><rate>`,
		"empty":     `<rates></rates>`,
		"nan":       `<rates><rate lender="X" product="new-car">cheap</rate></rates>`,
		"negative":  `<rates><rate lender="X" product="new-car">-1</rate></rates>`,
	}

	for name, doc := range bad {
		if _, err := ParseRates([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLowestRate(t *testing.T) {
	rates, _ := ParseRates([]byte(sampleFeed))

	best, ok := LowestRate(rates, NewCarProduct)
	if !ok || best.Lender != "HDFC Bank" || best.Percent != 8.75 {
		t.Errorf("unexpected lowest rate: %+v", best)
	}

	if _, ok := LowestRate(rates, "two-wheeler"); ok {
		t.Errorf("expected no rate for unknown product")
	}
}

func TestClient_ReferenceRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	client := NewClient(server.URL, quietLogger())

	got, err := client.ReferenceRate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Percent != 8.75 {
		t.Errorf("expected 8.75, got %v", got.Percent)
	}
}

func TestClient_ReferenceRate_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, quietLogger())

	if _, err := client.ReferenceRate(context.Background()); err == nil {
		t.Errorf("expected error on 503")
	}
}
