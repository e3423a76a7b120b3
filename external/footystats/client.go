package footystats

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/rakhafdl/goalstore/internal/platform/logging"
	"github.com/rakhafdl/goalstore/internal/platform/resilience"
	"github.com/rakhafdl/goalstore/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const defaultBaseURL = "https://api.football-data-api.com"

var keyParamRegex = regexp.MustCompile(`key=[^&\s"']+`)
var errFootyStatsTransient = crerr.New("footystats transient failure")

type ClientConfig struct {
	BaseURL        string
	Key            string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches season team listings and match records. Responses
// are deduplicated in flight and guarded by a circuit breaker.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	key            string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     &fasthttp.Client{ReadTimeout: timeout, WriteTimeout: timeout},
		baseURL:        baseURL,
		key:            strings.TrimSpace(cfg.Key),
		timeout:        timeout,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchLeagueTeams(ctx context.Context, seasonID int64) ([]usecase.ExternalTeam, error) {
	if seasonID <= 0 {
		return nil, fmt.Errorf("season id must be greater than zero")
	}

	var envelope struct {
		Success bool                    `json:"success"`
		Data    []usecase.ExternalTeam `json:"data"`
	}
	query := map[string]string{
		"season_id": strconv.FormatInt(seasonID, 10),
		"include":   "stats",
	}
	if err := c.doJSON(ctx, "/league-teams", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch league teams season_id=%d: %w", seasonID, err)
	}
	if !envelope.Success {
		return nil, crerr.Newf("provider reported failure for league teams season_id=%d", seasonID)
	}

	return envelope.Data, nil
}

func (c *Client) FetchLeagueMatches(ctx context.Context, seasonID int64) ([]usecase.ExternalMatch, error) {
	if seasonID <= 0 {
		return nil, fmt.Errorf("season id must be greater than zero")
	}

	var envelope struct {
		Success bool                     `json:"success"`
		Data    []usecase.ExternalMatch `json:"data"`
	}
	query := map[string]string{
		"season_id": strconv.FormatInt(seasonID, 10),
	}
	if err := c.doJSON(ctx, "/league-matches", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch league matches season_id=%d: %w", seasonID, err)
	}
	if !envelope.Success {
		return nil, crerr.Newf("provider reported failure for league matches season_id=%d", seasonID)
	}

	return envelope.Data, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "footystats circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: match data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	values.Set("key", c.key)

	fullURL := buildRequestURL(c.baseURL, path, values.Encode())

	flightKey := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(flightKey, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errFootyStatsTransient) {
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
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		raw, status, err := c.sendOnce(fullURL)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errFootyStatsTransient, sanitizeSensitiveText(err.Error(), c.key))
		} else if status >= 200 && status < 300 {
			return raw, nil
		} else if isRetryableStatus(status) {
			lastErr = fmt.Errorf("%w: provider status=%d body=%s", errFootyStatsTransient, status, abbreviateBody(raw))
		} else {
			return nil, fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(raw))
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
	c.logger.WarnContext(ctx, "footystats request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func (c *Client) sendOnce(fullURL string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("accept", "application/json")

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, 0, err
	}

	raw := append([]byte(nil), resp.Body()...)
	return raw, resp.StatusCode(), nil
}

func buildRequestURL(baseURL, path, encodedQuery string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(baseURL)
	_, _ = buf.WriteString(path)
	if encodedQuery != "" {
		_ = buf.WriteByte('?')
		_, _ = buf.WriteString(encodedQuery)
	}
	return buf.String()
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if key != "" {
		value = strings.ReplaceAll(value, key, "REDACTED")
	}
	return keyParamRegex.ReplaceAllString(value, "key=REDACTED")
}

func redactAPIURL(rawURL string) string {
	return keyParamRegex.ReplaceAllString(rawURL, "key=REDACTED")
}

func abbreviateBody(body []byte) string {
	const limit = 512
	text := strings.TrimSpace(string(body))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == fasthttp.StatusRequestTimeout ||
		statusCode == fasthttp.StatusTooManyRequests ||
		statusCode >= fasthttp.StatusInternalServerError
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
