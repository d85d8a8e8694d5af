package infisical

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/kbukum/envkit/httpclient"
	"github.com/kbukum/envkit/logger"
	"github.com/kbukum/envkit/provider"
	"github.com/kbukum/envkit/util"
)

var _ provider.Provider = (*Provider)(nil)

const (
	loginPath   = "api/v1/auth/universal-auth/login"
	secretsPath = "api/v3/secrets/raw"

	// tokenExpiryMargin is subtracted from the server-reported token
	// lifetime so a token is never used at the edge of its expiry.
	tokenExpiryMargin = 60 * time.Second
)

// Provider fetches secrets from an Infisical deployment.
//
// All state transitions (token refresh, cache fill) happen under an
// internal mutex, so concurrent callers never race to authenticate
// twice. The mutex is held across the HTTP calls; callers needing
// parallelism should front the provider with their own cache.
type Provider struct {
	cfg  Config
	http *httpclient.Client
	log  *logger.Logger

	mu         sync.Mutex
	token      string
	tokenExp   time.Time
	secrets    map[string]string
	secretsExp time.Time

	now func() time.Time
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger attaches a logger to the provider.
func WithLogger(log *logger.Logger) Option {
	return func(p *Provider) { p.log = log }
}

// New creates an Infisical provider from cfg. No network call is made
// until the first lookup.
func New(cfg Config, opts ...Option) (*Provider, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := httpclient.New(cfg.HTTP)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		cfg:  cfg,
		http: client,
		log:  logger.Nop(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.WithComponent("infisical")

	return p, nil
}

// Name returns the provider name.
func (p *Provider) Name() string { return "infisical" }

// Get returns the secret for key, fetching and caching the secret set
// if the cache is empty or stale.
func (p *Provider) Get(ctx context.Context, key string) (string, bool, error) {
	values, err := p.cachedSecrets(ctx)
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// GetAll returns a copy of the full secret set, fetching and caching it
// if the cache is empty or stale.
func (p *Provider) GetAll(ctx context.Context) (map[string]string, error) {
	values, err := p.cachedSecrets(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out, nil
}

// ClearCache invalidates the secret cache. The next lookup fetches
// fresh secrets. The access token is left untouched.
func (p *Provider) ClearCache() {
	p.mu.Lock()
	p.secrets = nil
	p.secretsExp = time.Time{}
	p.mu.Unlock()

	p.log.Debug("secret cache cleared")
}

// RefreshToken discards the cached access token and re-authenticates.
// The secret cache is left untouched.
func (p *Provider) RefreshToken(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.token = ""
	p.tokenExp = time.Time{}
	return p.authenticate(ctx)
}

// cachedSecrets returns the cached secret set, fetching it first if the
// cache is empty or past its TTL.
func (p *Provider) cachedSecrets(ctx context.Context) (map[string]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.secrets != nil && p.now().Before(p.secretsExp) {
		return p.secrets, nil
	}

	values, err := p.fetchSecrets(ctx)
	if err != nil {
		return nil, err
	}

	p.secrets = values
	p.secretsExp = p.now().Add(p.cfg.CacheTTL)
	return p.secrets, nil
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
	TokenType   string `json:"tokenType"`
}

// authenticate exchanges the client credentials for an access token.
// Callers must hold p.mu.
func (p *Provider) authenticate(ctx context.Context) error {
	resp, err := p.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   loginPath,
		Body: httpclient.FormBody{
			"clientId":     p.cfg.ClientID,
			"clientSecret": p.cfg.ClientSecret,
		},
	})
	if err != nil {
		if status, body, ok := statusError(err); ok {
			return &AuthError{Status: status, Body: body}
		}
		return fmt.Errorf("login: %w", err)
	}

	// Only 200 carries a token; any other success status is a protocol
	// violation.
	if resp.StatusCode != http.StatusOK {
		return &AuthError{Status: resp.StatusCode, Body: string(resp.Body)}
	}

	var login loginResponse
	if err := json.Unmarshal(resp.Body, &login); err != nil {
		return fmt.Errorf("%w: decode login response: %v", ErrInvalidResponse, err)
	}

	p.token = login.AccessToken
	p.tokenExp = p.now().Add(time.Duration(login.ExpiresIn)*time.Second - tokenExpiryMargin)

	p.log.Debug("authenticated", map[string]interface{}{
		"client_id":  util.MaskSecret(p.cfg.ClientID, 4),
		"expires_in": login.ExpiresIn,
	})
	return nil
}

// ensureToken authenticates if there is no token or it is past its
// safety-margin expiry. Callers must hold p.mu.
func (p *Provider) ensureToken(ctx context.Context) error {
	if p.token != "" && p.now().Before(p.tokenExp) {
		return nil
	}
	return p.authenticate(ctx)
}

type secretRecord struct {
	SecretKey   string `json:"secretKey"`
	SecretValue string `json:"secretValue"`
}

type secretsResponse struct {
	Secrets []secretRecord `json:"secrets"`
}

// statusError extracts the HTTP status and body from a classified
// client error. Connection-level failures have no status and report
// false.
func statusError(err error) (int, string, bool) {
	var herr *httpclient.Error
	if errors.As(err, &herr) && herr.StatusCode > 0 {
		return herr.StatusCode, string(herr.Body), true
	}
	return 0, "", false
}

// fetchSecrets retrieves the scoped secret set. Callers must hold p.mu.
func (p *Provider) fetchSecrets(ctx context.Context) (map[string]string, error) {
	if err := p.ensureToken(ctx); err != nil {
		return nil, err
	}

	resp, err := p.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   secretsPath,
		Query: map[string]string{
			"workspaceId": p.cfg.ProjectID,
			"environment": p.cfg.Environment,
			"secretPath":  p.cfg.SecretPath,
		},
		Auth: httpclient.BearerAuth(p.token),
	})
	if err != nil {
		if status, body, ok := statusError(err); ok {
			return nil, &FetchError{Status: status, Body: body}
		}
		return nil, fmt.Errorf("fetch secrets: %w", err)
	}

	var payload secretsResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode secrets response: %v", ErrInvalidResponse, err)
	}

	values := make(map[string]string, len(payload.Secrets))
	for _, s := range payload.Secrets {
		values[s.SecretKey] = s.SecretValue
	}

	p.log.Debug("secrets fetched", map[string]interface{}{
		"project":     p.cfg.ProjectID,
		"environment": p.cfg.Environment,
		"secret_path": p.cfg.SecretPath,
		"count":       len(values),
	})
	return values, nil
}
