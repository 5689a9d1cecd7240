// Package weather wraps the weatherapi.com current-conditions API used by
// the home screen widget.  The upstream is optional: when the call fails or
// no key is configured, a synthetic mild-weather report is served instead so
// the widget never breaks the page.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the production weatherapi.com endpoint.
const DefaultBaseURL = "https://api.weatherapi.com/v1"

// Condition is the textual sky state plus its icon.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
}

// Location identifies the place a report is for.
type Location struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// Report is a current-conditions snapshot.  Fallback marks synthetic
// reports served when the upstream was unreachable.
type Report struct {
	Location  Location  `json:"location"`
	TempC     float64   `json:"temp_c"`
	TempF     float64   `json:"temp_f"`
	Condition Condition `json:"condition"`
	Humidity  int       `json:"humidity"`
	WindKPH   float64   `json:"wind_kph"`
	Fallback  bool      `json:"fallback"`
}

// Client calls weatherapi.com.  A zero key disables upstream calls and
// every lookup falls back.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

// New builds a client.  baseURL falls back to DefaultBaseURL when empty.
func New(baseURL, key string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		key:     key,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Current fetches current conditions for the query, which may be a city
// name or "lat,lon" coordinates.
func (c *Client) Current(ctx context.Context, q string) (Report, error) {
	if c.key == "" {
		return Report{}, fmt.Errorf("weather: no api key configured")
	}

	u := fmt.Sprintf("%s/current.json?key=%s&q=%s&aqi=no", c.baseURL, url.QueryEscape(c.key), url.QueryEscape(q))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Report{}, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("weather: fetch current: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("weather: upstream returned %d", res.StatusCode)
	}

	var body struct {
		Location Location `json:"location"`
		Current  struct {
			TempC     float64   `json:"temp_c"`
			TempF     float64   `json:"temp_f"`
			Condition Condition `json:"condition"`
			Humidity  int       `json:"humidity"`
			WindKPH   float64   `json:"wind_kph"`
		} `json:"current"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return Report{}, fmt.Errorf("weather: decode current: %w", err)
	}
	return Report{
		Location:  body.Location,
		TempC:     body.Current.TempC,
		TempF:     body.Current.TempF,
		Condition: body.Current.Condition,
		Humidity:  body.Current.Humidity,
		WindKPH:   body.Current.WindKPH,
	}, nil
}

// Search resolves a free-text place query to candidate locations.
func (c *Client) Search(ctx context.Context, q string) ([]Location, error) {
	if c.key == "" {
		return nil, fmt.Errorf("weather: no api key configured")
	}

	u := fmt.Sprintf("%s/search.json?key=%s&q=%s", c.baseURL, url.QueryEscape(c.key), url.QueryEscape(q))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: search: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: upstream returned %d", res.StatusCode)
	}

	var out []Location
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("weather: decode search: %w", err)
	}
	return out, nil
}

// CurrentOrFallback never fails: when the upstream is unavailable it
// returns a synthetic mild report for the queried place.
func (c *Client) CurrentOrFallback(ctx context.Context, q string) Report {
	rep, err := c.Current(ctx, q)
	if err != nil {
		return fallbackReport(q)
	}
	return rep
}

var (
	fallbackTempsF     = []float64{72, 74, 76, 78, 80, 82}
	fallbackConditions = []string{"Clear", "Partly Cloudy", "Sunny", "Cloudy"}
)

func fallbackReport(q string) Report {
	tf := fallbackTempsF[rand.Intn(len(fallbackTempsF))]
	return Report{
		Location:  Location{Name: q},
		TempF:     tf,
		TempC:     (tf - 32) * 5 / 9,
		Condition: Condition{Text: fallbackConditions[rand.Intn(len(fallbackConditions))]},
		Fallback:  true,
	}
}
