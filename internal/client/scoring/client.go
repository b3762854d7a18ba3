package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"oddsdesk/internal/models"
)

// Query carries the upstream query parameters. Zero values and nil pointers
// are omitted from the request.
type Query struct {
	Days             int
	SportKey         string
	SignalType       string
	Market           string
	MinStrength      *float64
	MinSamples       *int
	MinBooksAffected *int
	MaxDispersion    *float64
	WindowMinutesMax *int
	MinEdge          *float64
	MaxWidth         *float64
	IncludeStale     bool
	Limit            int
}

func (q Query) values() url.Values {
	vals := url.Values{}
	if q.Days > 0 {
		vals.Set("days", strconv.Itoa(q.Days))
	}
	if q.SportKey != "" {
		vals.Set("sport_key", q.SportKey)
	}
	if q.SignalType != "" && q.SignalType != models.FilterAll {
		vals.Set("signal_type", q.SignalType)
	}
	if q.Market != "" && q.Market != models.FilterAll {
		vals.Set("market", q.Market)
	}
	if q.MinStrength != nil {
		vals.Set("min_strength", strconv.FormatFloat(*q.MinStrength, 'f', -1, 64))
	}
	if q.MinSamples != nil {
		vals.Set("min_samples", strconv.Itoa(*q.MinSamples))
	}
	if q.MinBooksAffected != nil {
		vals.Set("min_books_affected", strconv.Itoa(*q.MinBooksAffected))
	}
	if q.MaxDispersion != nil {
		vals.Set("max_dispersion", strconv.FormatFloat(*q.MaxDispersion, 'f', -1, 64))
	}
	if q.WindowMinutesMax != nil {
		vals.Set("window_minutes_max", strconv.Itoa(*q.WindowMinutesMax))
	}
	if q.MinEdge != nil {
		vals.Set("min_edge", strconv.FormatFloat(*q.MinEdge, 'f', -1, 64))
	}
	if q.MaxWidth != nil {
		vals.Set("max_width", strconv.FormatFloat(*q.MaxWidth, 'f', -1, 64))
	}
	if q.IncludeStale {
		vals.Set("include_stale", "true")
	}
	if q.Limit > 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}
	return vals
}

// Client talks to the upstream scoring API. All score computation lives
// there; this client only fetches and decodes.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, vals url.Values, out any) error {
	u := c.baseURL + path
	if len(vals) > 0 {
		u += "?" + vals.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("scoring api %s: status %d: %s", path, resp.StatusCode, truncate(body, 200))
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("scoring api %s: decode envelope: %w", path, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("scoring api %s: decode data: %w", path, err)
	}
	return nil
}

func (c *Client) ListOpportunities(ctx context.Context, q Query) ([]models.OpportunityRecord, error) {
	var items []models.OpportunityRecord
	if err := c.get(ctx, "/api/v1/opportunities", q.values(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) ListQualityRows(ctx context.Context, q Query) ([]models.QualityRow, error) {
	var items []models.QualityRow
	if err := c.get(ctx, "/api/v1/quality", q.values(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetWeeklySummary(ctx context.Context, q Query) (*models.WeeklyQualitySummary, error) {
	var item models.WeeklyQualitySummary
	vals := url.Values{}
	if q.Days > 0 {
		vals.Set("days", strconv.Itoa(q.Days))
	}
	if q.SportKey != "" {
		vals.Set("sport_key", q.SportKey)
	}
	if err := c.get(ctx, "/api/v1/quality/weekly", vals, &item); err != nil {
		return nil, err
	}
	if item.CreatedAt.IsZero() && item.CLVSamples == 0 && item.SentRatePct == 0 {
		// Upstream returns null when the window has no data.
		return nil, nil
	}
	return &item, nil
}

func (c *Client) ListScorecards(ctx context.Context, signalIDs []string) ([]models.SignalScorecard, error) {
	if len(signalIDs) == 0 {
		return nil, nil
	}
	vals := url.Values{}
	vals.Set("signal_ids", strings.Join(signalIDs, ","))
	var items []models.SignalScorecard
	if err := c.get(ctx, "/api/v1/scorecards", vals, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
