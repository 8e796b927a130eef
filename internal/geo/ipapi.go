package geo

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"biolink/internal/model"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// ipAPIFields limits the ip-api.com response to what a visit record needs
const ipAPIFields = "status,message,country,city"

// IPAPIProvider implements Provider using the free ip-api.com JSON endpoint.
type IPAPIProvider struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
}

// ipAPIResponse is the subset of the ip-api.com response we consume
type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Country *string `json:"country"`
	City    *string `json:"city"`
}

// NewIPAPIProvider creates an ip-api.com provider.
// perMinute caps outbound lookups; zero disables the limit.
func NewIPAPIProvider(baseURL string, timeout time.Duration, perMinute int) *IPAPIProvider {
	limit := rate.Inf
	burst := 0
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
		burst = perMinute
	}

	return &IPAPIProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		baseURL: baseURL,
	}
}

// Name returns the provider name.
func (p *IPAPIProvider) Name() string {
	return "ip-api.com"
}

// Lookup queries ip-api.com for the country and city of ip.
func (p *IPAPIProvider) Lookup(ctx context.Context, ip string) (*model.Location, error) {
	if net.ParseIP(ip) == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIP, ip)
	}
	if !p.limiter.Allow() {
		return nil, ErrRateLimited
	}

	url := fmt.Sprintf("%s/%s?fields=%s", p.baseURL, ip, ipAPIFields)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: ip-api.com returned status %d", ErrLookupFailed, resp.StatusCode)
	}

	var result ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", ErrLookupFailed, err)
	}
	if result.Status != "success" {
		return nil, fmt.Errorf("%w: status %q: %s", ErrLookupFailed, result.Status, result.Message)
	}

	return &model.Location{
		Country: valueOrUnknown(result.Country),
		City:    valueOrUnknown(result.City),
	}, nil
}

// valueOrUnknown substitutes Unknown only for an absent field; an empty value is kept
func valueOrUnknown(s *string) string {
	if s == nil {
		return model.Unknown
	}
	return *s
}
