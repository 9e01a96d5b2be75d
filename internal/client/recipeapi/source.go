// Package recipeapi is the HTTP client of the Spoonacular recipe API.
//
// Every request goes through a rate limiter that applies the API quota and a
// circuit breaker. While the breaker is open, calls fail fast with
// ErrNoConnectivity so callers fall back to the local cache.
package recipeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"github.com/dmitrijs2005/recipeplanner/internal/logging"
	"github.com/dmitrijs2005/recipeplanner/internal/netx"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.spoonacular.com"
	DefaultTimeout = 30 * time.Second

	defaultRPS              = 1
	defaultBurst            = 5
	breakerFailureThreshold = 5
	breakerOpenTimeout      = 30 * time.Second
)

// Source is the contract of the remote recipe source.
type Source interface {
	Search(ctx context.Context, query string, offset, pageSize int) (models.SearchResult, error)
	Detail(ctx context.Context, id int64) (models.RecipeDetail, error)
	Random(ctx context.Context, count int) ([]models.RecipeDetail, error)
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RPS is the sustained request rate. Zero means the default; a negative
	// value disables limiting.
	RPS   float64
	Burst int
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// Client implements Source over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]
	log     logging.Logger
}

func New(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RPS == 0 {
		cfg.RPS = defaultRPS
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}

	if cfg.RPS < 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 0)
	} else {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "recipe-api",
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return !tripsBreaker(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn(context.Background(), "circuit breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return c
}

// BreakerState returns the breaker state name ("closed", "half-open", "open").
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// Search runs a complex search. An empty query searches for "popular".
func (c *Client) Search(ctx context.Context, query string, offset, pageSize int) (models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		query = common.PopularQuery
	}
	if pageSize <= 0 {
		pageSize = common.DefaultPageSize
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("offset", strconv.Itoa(offset))
	params.Set("number", strconv.Itoa(pageSize))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")

	var resp searchResponse
	if err := c.get(ctx, "/recipes/complexSearch", params, &resp); err != nil {
		return models.SearchResult{}, err
	}

	result := models.SearchResult{
		Recipes:      make([]models.Recipe, 0, len(resp.Results)),
		Offset:       resp.Offset,
		Number:       resp.Number,
		TotalResults: resp.TotalResults,
	}
	for _, r := range resp.Results {
		result.Recipes = append(result.Recipes, r.toRecipe())
	}
	return result, nil
}

func (c *Client) Detail(ctx context.Context, id int64) (models.RecipeDetail, error) {
	params := url.Values{}
	params.Set("includeNutrition", "false")

	var resp recipeDTO
	if err := c.get(ctx, fmt.Sprintf("/recipes/%d/information", id), params, &resp); err != nil {
		return models.RecipeDetail{}, err
	}
	return resp.toDetail(), nil
}

func (c *Client) Random(ctx context.Context, count int) ([]models.RecipeDetail, error) {
	if count <= 0 {
		count = 1
	}
	params := url.Values{}
	params.Set("number", strconv.Itoa(count))

	var resp randomResponse
	if err := c.get(ctx, "/recipes/random", params, &resp); err != nil {
		return nil, err
	}

	out := make([]models.RecipeDetail, 0, len(resp.Recipes))
	for _, r := range resp.Recipes {
		out = append(out, r.toDetail())
	}
	return out, nil
}

func (c *Client) buildURL(path string, params url.Values) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base url %q must be absolute", c.baseURL)
	}
	u = u.JoinPath(path)
	params.Set("apiKey", c.apiKey)
	u.RawQuery = params.Encode()
	return u.String(), nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	target, err := c.buildURL(path, params)
	if err != nil {
		return &Error{Kind: KindInvalidRequest, Err: err}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return classifyTransport(err)
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.fetch(ctx, target)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &Error{Kind: KindNoConnectivity, Err: err}
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindDecodeFailure, Err: err}
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &Error{Kind: KindInvalidRequest, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Kind:       KindHTTPStatus,
			StatusCode: resp.StatusCode,
			Err:        errors.New(netx.ReadBodyForError(resp.Body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindInvalidResponse, Err: err}
	}
	return body, nil
}
