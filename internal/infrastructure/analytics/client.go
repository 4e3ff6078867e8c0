package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/analysis"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/budget"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/commentary"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/company"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/report"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/domain/shared"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/auth"
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/telemetry"
)

const (
	// maxResponseSize limits JSON response bodies to prevent memory exhaustion
	maxResponseSize = 10 * 1024 * 1024 // 10MB

	defaultTimeout       = 15 * time.Second
	defaultExportTimeout = 2 * time.Minute
	defaultBearerWait    = 10 * time.Second
)

// Config holds the connection settings for the analytical service.
type Config struct {
	BaseURL string
	// Timeout bounds interactive reads and mutations.
	Timeout time.Duration
	// ExportTimeout bounds the report download, which may wait on heavy
	// backend computation and deserves a conspicuously larger budget.
	ExportTimeout time.Duration
	// BearerWait bounds how long a request waits for the host to deliver
	// a credential before giving up.
	BearerWait time.Duration
}

// Validate checks the configuration and fills defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return shared.NewDomainError("INVALID_CONFIG", "Analytics base URL is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.ExportTimeout <= 0 {
		c.ExportTimeout = defaultExportTimeout
	}
	if c.BearerWait <= 0 {
		c.BearerWait = defaultBearerWait
	}
	return nil
}

// Client is the HTTP adapter for the remote analytical service. It
// implements every domain port this layer consumes: companies, years,
// scenarios, analysis snapshots, commentary and report export.
//
// Every request attaches the bearer credential the host pushed into the
// relay. A 401 asks the host for a fresh credential and retries exactly
// once; it never fails silently.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	exportClient *http.Client
	bearerWait   time.Duration
	relay        *auth.Relay
	logger       *zap.Logger
	metrics      UpstreamRecorder
}

// UpstreamRecorder observes the latency and outcome of each remote call.
// Operation names follow the {port}.{method} convention, e.g. "company.list".
type UpstreamRecorder interface {
	RecordUpstreamRequest(ctx context.Context, operation string, outcome telemetry.Outcome, duration time.Duration)
}

// ClientOption is a functional option for configuring the client
type ClientOption func(*Client)

// WithClientLogger sets the logger for the client
func WithClientLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClientMetrics sets the upstream metrics recorder for the client
func WithClientMetrics(metrics UpstreamRecorder) ClientOption {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// NewClient creates an analytics client bound to a credential relay
func NewClient(cfg Config, relay *auth.Relay, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:      cfg.BaseURL,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		exportClient: &http.Client{Timeout: cfg.ExportTimeout},
		bearerWait:   cfg.BearerWait,
		relay:        relay,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Company directory
// ---------------------------------------------------------------------------

// List returns every company visible to the current credential
func (c *Client) List(ctx context.Context) ([]company.Company, error) {
	var out []company.Company
	if err := c.doJSON(ctx, "company.list", http.MethodGet, "/companies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a new company
func (c *Client) Create(ctx context.Context, in company.Input) (*company.Company, error) {
	var out company.Company
	if err := c.doJSON(ctx, "company.create", http.MethodPost, "/companies", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the mutable fields of a company
func (c *Client) Update(ctx context.Context, id uuid.UUID, in company.Input) (*company.Company, error) {
	var out company.Company
	path := fmt.Sprintf("/companies/%s", id)
	if err := c.doJSON(ctx, "company.update", http.MethodPut, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a company
func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	path := fmt.Sprintf("/companies/%s", id)
	return c.doJSON(ctx, "company.delete", http.MethodDelete, path, nil, nil)
}

// ---------------------------------------------------------------------------
// Years and scenarios
// ---------------------------------------------------------------------------

// Years returns the fiscal years with recorded statements for a company
func (c *Client) Years(ctx context.Context, companyID uuid.UUID) ([]int, error) {
	var out []int
	path := fmt.Sprintf("/companies/%s/years", companyID)
	if err := c.doJSON(ctx, "scenario.years", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Scenarios returns every budget scenario of a company
func (c *Client) Scenarios(ctx context.Context, companyID uuid.UUID) ([]budget.BudgetScenario, error) {
	var out []budget.BudgetScenario
	path := fmt.Sprintf("/companies/%s/scenarios", companyID)
	if err := c.doJSON(ctx, "scenario.list", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateScenario forwards an opaque scenario mutation
func (c *Client) UpdateScenario(ctx context.Context, companyID, scenarioID uuid.UUID, payload map[string]any) error {
	path := fmt.Sprintf("/companies/%s/scenarios/%s", companyID, scenarioID)
	return c.doJSON(ctx, "scenario.update", http.MethodPut, path, payload, nil)
}

// SaveAssumptions forwards an opaque assumption-set mutation
func (c *Client) SaveAssumptions(ctx context.Context, companyID, scenarioID uuid.UUID, payload map[string]any) error {
	path := fmt.Sprintf("/companies/%s/scenarios/%s/assumptions", companyID, scenarioID)
	return c.doJSON(ctx, "scenario.assumptions", http.MethodPut, path, payload, nil)
}

// GenerateForecast asks the analytical service to recompute a scenario's
// forecast
func (c *Client) GenerateForecast(ctx context.Context, companyID, scenarioID uuid.UUID) error {
	path := fmt.Sprintf("/companies/%s/scenarios/%s/forecast", companyID, scenarioID)
	return c.doJSON(ctx, "scenario.forecast", http.MethodPost, path, nil, nil)
}

// ---------------------------------------------------------------------------
// Analysis snapshot
// ---------------------------------------------------------------------------

// Analysis returns the full snapshot for one (company, scenario) pair
func (c *Client) Analysis(ctx context.Context, companyID, scenarioID uuid.UUID) (*analysis.ScenarioAnalysis, error) {
	var out analysis.ScenarioAnalysis
	path := fmt.Sprintf("/companies/%s/scenarios/%s/analysis", companyID, scenarioID)
	if err := c.doJSON(ctx, "analysis.fetch", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	out.CompanyID = companyID
	out.ScenarioID = scenarioID
	return &out, nil
}

// ---------------------------------------------------------------------------
// Commentary
// ---------------------------------------------------------------------------

// Fetch returns the previously generated commentary for a scope
func (c *Client) Fetch(ctx context.Context, companyID, scenarioID uuid.UUID) (commentary.Map, error) {
	out := commentary.Empty()
	path := fmt.Sprintf("/companies/%s/scenarios/%s/commentary", companyID, scenarioID)
	if err := c.doJSON(ctx, "commentary.fetch", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Generate computes and stores fresh commentary, returning the updated map
func (c *Client) Generate(ctx context.Context, companyID, scenarioID uuid.UUID) (commentary.Map, error) {
	out := commentary.Empty()
	path := fmt.Sprintf("/companies/%s/scenarios/%s/commentary", companyID, scenarioID)
	if err := c.doJSON(ctx, "commentary.generate", http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Report export
// ---------------------------------------------------------------------------

// Export requests the rendered report binary. The caller owns the
// artifact's Content and must close it on every path.
func (c *Client) Export(ctx context.Context, companyID, scenarioID uuid.UUID) (*report.ExportArtifact, error) {
	start := time.Now()
	path := fmt.Sprintf("/companies/%s/scenarios/%s/report", companyID, scenarioID)
	resp, err := c.doRequest(ctx, c.exportClient, http.MethodGet, path, nil)
	if err != nil {
		c.observe(ctx, "report.export", start, err)
		return nil, err
	}
	if err := checkStatus(resp.StatusCode); err != nil {
		drainAndClose(resp.Body)
		c.observe(ctx, "report.export", start, err)
		return nil, err
	}

	// The recorded duration covers headers only; the body streams to the
	// caller afterwards.
	c.observe(ctx, "report.export", start, nil)
	return &report.ExportArtifact{
		Content:     resp.Body,
		ContentType: resp.Header.Get("Content-Type"),
		NameHint:    resp.Header.Get("Content-Disposition"),
		Size:        resp.ContentLength,
	}, nil
}

// ---------------------------------------------------------------------------
// Request plumbing
// ---------------------------------------------------------------------------

// doJSON runs a request and decodes the JSON response into out when out is
// non-nil.
func (c *Client) doJSON(ctx context.Context, op, method, path string, payload, out any) (err error) {
	start := time.Now()
	defer func() { c.observe(ctx, op, start, err) }()

	resp, err := c.doRequest(ctx, c.httpClient, method, path, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("analytics: failed to read response: %w", err)
	}
	if err := checkStatus(resp.StatusCode); err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("analytics: failed to parse response: %w", err)
	}
	return nil
}

// doRequest sends one authenticated request. A 401 requests a fresh
// credential from the host and retries exactly once; the response of the
// rejected attempt is always drained and closed.
func (c *Client) doRequest(ctx context.Context, client *http.Client, method, path string, payload any) (*http.Response, error) {
	token, err := c.credential(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, client, method, path, payload, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	drainAndClose(resp.Body)
	c.logger.Debug("credential rejected, asking host for a fresh one",
		zap.String("method", method),
		zap.String("path", path))

	c.relay.RequestRefresh()
	waitCtx, cancel := context.WithTimeout(ctx, c.bearerWait)
	defer cancel()
	fresh, err := c.relay.AwaitFresh(waitCtx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: no replacement credential arrived", shared.ErrUnauthorized)
	}

	resp, err = c.send(ctx, client, method, path, payload, fresh)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		drainAndClose(resp.Body)
		return nil, fmt.Errorf("%w: credential rejected twice", shared.ErrUnauthorized)
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, client *http.Client, method, path string, payload any, token string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("analytics: failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("analytics: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstreamUnavailable, err)
	}
	return resp, nil
}

// credential returns the bearer to attach, asking the host for one when
// none is usable.
func (c *Client) credential(ctx context.Context) (string, error) {
	if token, ok := c.relay.Token(); ok {
		return token, nil
	}

	c.relay.RequestRefresh()
	waitCtx, cancel := context.WithTimeout(ctx, c.bearerWait)
	defer cancel()
	token, err := c.relay.AwaitFresh(waitCtx, "")
	if err != nil {
		return "", fmt.Errorf("%w: host did not deliver a credential", shared.ErrCredentialMissing)
	}
	return token, nil
}

// observe reports one completed remote call to the metrics recorder
func (c *Client) observe(ctx context.Context, op string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := telemetry.OutcomeOK
	if err != nil {
		outcome = telemetry.OutcomeError
	}
	c.metrics.RecordUpstreamRequest(ctx, op, outcome, time.Since(start))
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: HTTP %d", shared.ErrNotFound, code)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: HTTP %d", shared.ErrUnauthorized, code)
	case code >= 500:
		return fmt.Errorf("%w: HTTP %d", shared.ErrUpstreamUnavailable, code)
	case code >= 400:
		return fmt.Errorf("%w: HTTP %d", shared.ErrUpstreamRejected, code)
	}
	return nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxResponseSize))
	_ = body.Close()
}

// Compile-time port assertions
var (
	_ company.CompanyAPI       = (*Client)(nil)
	_ budget.ScenarioAPI       = (*Client)(nil)
	_ analysis.AnalysisAPI     = (*Client)(nil)
	_ commentary.CommentaryAPI = (*Client)(nil)
	_ report.ExportAPI         = (*Client)(nil)
)
