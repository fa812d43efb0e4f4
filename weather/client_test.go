package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const forecastJSON = `{"cod":"200","list":[
{"dt":1792540800,"dt_txt":"2026-10-13 21:00:00","clouds":{"all":20},"wind":{"speed":3.1},"weather":[{"description":"few clouds"}]},
{"dt":1792551600,"dt_txt":"2026-10-14 00:00:00","clouds":{"all":90},"wind":{"speed":4.2},"weather":[{"description":"overcast clouds"}]},
{"dt":1792562400,"dt_txt":"2026-10-14 03:00:00","clouds":{"all":10},"wind":{"speed":2.0},"weather":[{"description":"clear sky"}]},
{"dt":1792573200,"dt_txt":"2026-10-15 00:00:00","clouds":{"all":80},"wind":{"speed":15},"weather":[{"description":"broken clouds"}]},
{"dt":1792584000,"dt_txt":"2026-10-16 00:00:00","clouds":{"all":5},"wind":{"speed":15.5},"weather":[{"description":"clear sky"}]}
]}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(Config{APIKey: "secret", BaseURL: srv.URL, MaxCloudCover: 80, MaxWindSpeed: 15})
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func forecastHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "Cape Canaveral" || q.Get("appid") != "secret" || q.Get("units") != "metric" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastJSON))
	}
}

func TestAdvisory(t *testing.T) {
	client := testClient(t, forecastHandler(t))
	for _, tc := range []struct {
		date        string
		cloud, wind float64
		desc        string
		ok          bool
	}{
		// First entry of the day, not the clearest one.
		{"2026-10-14", 90, 4.2, "overcast clouds", false},
		{"2026-10-13", 20, 3.1, "few clouds", true},
		// Limits are inclusive.
		{"2026-10-15", 80, 15, "broken clouds", true},
		{"2026-10-16", 5, 15.5, "clear sky", false},
	} {
		date, _ := time.Parse("2006-01-02", tc.date)
		adv, err := client.Advisory(context.Background(), "Cape Canaveral", date)
		if err != nil {
			t.Fatalf("%s: %s", tc.date, err)
		}
		if adv.CloudCover != tc.cloud || adv.WindSpeed != tc.wind || adv.Description != tc.desc || adv.Go != tc.ok {
			t.Fatalf("%s: unexpected advisory %+v", tc.date, adv)
		}
		if adv.City != "Cape Canaveral" || adv.LaunchDate != tc.date {
			t.Fatalf("%s: unexpected advisory %+v", tc.date, adv)
		}
		if exp := map[bool]string{true: Acceptable, false: NotRecommended}[tc.ok]; adv.Recommendation != exp {
			t.Fatalf("%s: recommendation %q", tc.date, adv.Recommendation)
		}
	}
}

func TestAdvisoryNoForecast(t *testing.T) {
	client := testClient(t, forecastHandler(t))
	_, err := client.Advisory(context.Background(), "Cape Canaveral", time.Date(2027, time.February, 20, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrNoForecast) {
		t.Fatalf("expected ErrNoForecast, got %v", err)
	}
}

func TestAdvisoryErrors(t *testing.T) {
	date := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	unauthorized := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	if _, err := unauthorized.Advisory(context.Background(), "Kourou", date); err == nil || errors.Is(err, ErrNoForecast) {
		t.Fatalf("expected a status error, got %v", err)
	}
	garbage := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>"))
	})
	if _, err := garbage.Advisory(context.Background(), "Kourou", date); err == nil {
		t.Fatal("expected a decoding error")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := testClient(t, forecastHandler(t)).Advisory(ctx, "Cape Canaveral", date); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
