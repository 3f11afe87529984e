package footballdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/logging"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/platform/resilience"
	"github.com/HoussemHfasa/afcon-2025-predictor/internal/usecase"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	apiKeyHeader   = "x-apisports-key"

	// AFCON on API-Football; the 2025 edition runs under the 2024 season.
	defaultLeagueID = 6
	defaultSeason   = 2024
)

var errFeedTransient = crerr.New("football data transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	LeagueID   int
	Season     int
	Timeout    time.Duration
	MaxRetries int
	DailyLimit int
	Logger     *logging.Logger
	Breaker    resilience.BreakerConfig
}

// Client talks to the API-Football fixtures endpoint. It owns the daily call
// budget and refuses to go upstream once it is spent.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	leagueID       int
	season         int
	maxRetries     int
	budget         *dailyBudget
	logger         *logging.Logger
	breaker        *resilience.Breaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	// Work on a copy so defaulting the timeout never mutates a client the
	// caller still owns.
	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.HTTPClient != nil {
		clone := *cfg.HTTPClient
		httpClient = &clone
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	leagueID := cfg.LeagueID
	if leagueID <= 0 {
		leagueID = defaultLeagueID
	}
	season := cfg.Season
	if season <= 0 {
		season = defaultSeason
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		leagueID:       leagueID,
		season:         season,
		maxRetries:     maxRetries,
		budget:         newDailyBudget(cfg.DailyLimit),
		logger:         logger,
		breaker:        resilience.NewBreaker(cfg.Breaker),
		circuitEnabled: cfg.Breaker.Enabled,
	}
}

// FetchAllFixtures pulls every tournament fixture of the season. This is the
// most expensive query and should be reserved for schedule reconciliation.
func (c *Client) FetchAllFixtures(ctx context.Context) ([]usecase.ExternalFixture, error) {
	query := url.Values{}
	query.Set("league", fmt.Sprintf("%d", c.leagueID))
	query.Set("season", fmt.Sprintf("%d", c.season))
	return c.fetchFixtures(ctx, query)
}

// FetchFixturesByDate pulls the fixtures of one calendar day.
func (c *Client) FetchFixturesByDate(ctx context.Context, day time.Time) ([]usecase.ExternalFixture, error) {
	query := url.Values{}
	query.Set("league", fmt.Sprintf("%d", c.leagueID))
	query.Set("season", fmt.Sprintf("%d", c.season))
	query.Set("date", day.Format("2006-01-02"))
	return c.fetchFixtures(ctx, query)
}

// FetchLiveFixtures pulls only currently playing fixtures, the cheapest way
// to track in-progress scores.
func (c *Client) FetchLiveFixtures(ctx context.Context) ([]usecase.ExternalFixture, error) {
	query := url.Values{}
	query.Set("live", "all")
	query.Set("league", fmt.Sprintf("%d", c.leagueID))
	return c.fetchFixtures(ctx, query)
}

func (c *Client) Usage() usecase.FeedUsage {
	return c.budget.usage()
}

func (c *Client) CanCall() bool {
	return c.budget.canCall()
}

func (c *Client) fetchFixtures(ctx context.Context, query url.Values) ([]usecase.ExternalFixture, error) {
	var envelope fixturesEnvelope
	if err := c.doJSON(ctx, "/fixtures", query, &envelope); err != nil {
		return nil, err
	}

	out := make([]usecase.ExternalFixture, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		parsed, err := time.Parse(time.RFC3339, item.Fixture.Date)
		if err != nil {
			c.logger.WarnContext(ctx, "skip fixture with unparseable date",
				"date", item.Fixture.Date,
				"home", item.Teams.Home.Name,
				"away", item.Teams.Away.Name,
			)
			continue
		}

		code := strings.TrimSpace(item.Fixture.Status.Short)
		out = append(out, usecase.ExternalFixture{
			Date:         parsed,
			StatusCode:   code,
			Status:       MapStatus(code),
			HomeTeamName: strings.TrimSpace(item.Teams.Home.Name),
			AwayTeamName: strings.TrimSpace(item.Teams.Away.Name),
			GoalsHome:    item.Goals.Home,
			GoalsAway:    item.Goals.Away,
			Venue:        strings.TrimSpace(item.Fixture.Venue.Name),
		})
	}

	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target any) error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: feed api key is not configured", usecase.ErrDependencyUnavailable)
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "feed circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: fixture provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	// Concurrent callers asking for the same query coalesce into one upstream
	// call, so the shared key bundles budget accounting with the request.
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		if !c.budget.acquire() {
			usage := c.budget.usage()
			return nil, fmt.Errorf("%w: %d/%d calls used on %s",
				usecase.ErrBudgetExhausted, usage.Used, usage.Limit, usage.Date)
		}

		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isFeedTransient(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set(apiKeyHeader, c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errFeedTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errFeedTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errFeedTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "football data request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isFeedTransient(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errFeedTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if key != "" {
		value = strings.ReplaceAll(value, key, "REDACTED")
	}
	return value
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

type fixturesEnvelope struct {
	Response []apiFixture `json:"response"`
}

type apiFixture struct {
	Fixture struct {
		ID     int64  `json:"id"`
		Date   string `json:"date"`
		Status struct {
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
		Venue struct {
			Name string `json:"name"`
			City string `json:"city"`
		} `json:"venue"`
	} `json:"fixture"`
	Teams struct {
		Home struct {
			Name string `json:"name"`
		} `json:"home"`
		Away struct {
			Name string `json:"name"`
		} `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}
