// Package weather provides launch site weather advisories from OpenWeatherMap forecasts.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNoForecast is returned when the forecast does not cover the requested date.
var ErrNoForecast = errors.New("weather forecast not available for the specified date")

const forecastTimeFormat = "2006-01-02 15:04:05"

// forecast is the subset of the OpenWeatherMap forecast response used for advisories.
type forecast struct {
	List []forecastEntry `json:"list"`
}

type forecastEntry struct {
	DtTxt  string `json:"dt_txt"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Client retrieves forecasts and turns them into launch advisories.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient returns a client for the provided configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Advisory returns the launch advisory for the city on the provided date, based on the first
// forecast entry of that day.
func (c *Client) Advisory(ctx context.Context, city string, date time.Time) (Advisory, error) {
	fc, err := c.fetch(ctx, city)
	if err != nil {
		return Advisory{}, err
	}
	y, m, d := date.Date()
	for _, entry := range fc.List {
		dt, err := time.Parse(forecastTimeFormat, entry.DtTxt)
		if err != nil {
			return Advisory{}, fmt.Errorf("parsing forecast time %q: %w", entry.DtTxt, err)
		}
		if ey, em, ed := dt.Date(); ey == y && em == m && ed == d {
			return c.advise(city, date, entry), nil
		}
	}
	return Advisory{}, fmt.Errorf("%w: %s in %s", ErrNoForecast, date.Format("2006-01-02"), city)
}

func (c *Client) fetch(ctx context.Context, city string) (forecast, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return forecast{}, fmt.Errorf("parsing forecast URL: %w", err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.cfg.APIKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return forecast{}, fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return forecast{}, fmt.Errorf("fetching forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return forecast{}, fmt.Errorf("unexpected status code %d from forecast service for %s", resp.StatusCode, city)
	}
	var fc forecast
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return forecast{}, fmt.Errorf("decoding forecast: %w", err)
	}
	return fc, nil
}
