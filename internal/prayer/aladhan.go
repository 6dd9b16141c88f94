package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const aladhanBaseURL = "https://api.aladhan.com/v1/timings"

// calculation method 2 = ISNA
const calculationMethod = 2

// Timings is the 24-hour subset of the AlAdhan response we store.
type Timings struct {
	Fajr    string
	Dhuhr   string
	Asr     string
	Maghrib string
	Isha    string
}

type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient() *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: aladhanBaseURL,
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// FetchTimings asks AlAdhan for today's timings at the given coordinates.
func (c *Client) FetchTimings(ctx context.Context, lat, lon float64) (Timings, error) {
	url := fmt.Sprintf("%s?latitude=%f&longitude=%f&method=%d", c.baseURL, lat, lon, calculationMethod)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Timings{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Timings{}, fmt.Errorf("aladhan request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Timings{}, fmt.Errorf("aladhan returned status %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Timings map[string]string `json:"timings"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Timings{}, fmt.Errorf("failed to decode aladhan response: %w", err)
	}

	t := payload.Data.Timings
	out := Timings{
		Fajr:    t["Fajr"],
		Dhuhr:   t["Dhuhr"],
		Asr:     t["Asr"],
		Maghrib: t["Maghrib"],
		Isha:    t["Isha"],
	}
	if out.Fajr == "" || out.Isha == "" {
		return Timings{}, fmt.Errorf("aladhan response missing timings")
	}
	return out, nil
}
