// Package github adapts the GitHub REST API to the repository ports of the domain.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// ClientFactory builds GitHub clients that share a single paced transport.
// A caller credential takes precedence over the service token.
type ClientFactory struct {
	transport    http.RoundTripper
	serviceToken string
	baseURL      *url.URL
}

// NewClientFactory creates a ClientFactory. An empty apiURL targets api.github.com.
func NewClientFactory(transport http.RoundTripper, serviceToken, apiURL string) (ClientFactory, error) {
	f := ClientFactory{
		transport:    transport,
		serviceToken: serviceToken,
	}
	if apiURL != "" {
		u, err := url.Parse(strings.TrimSuffix(apiURL, "/") + "/")
		if err != nil {
			return ClientFactory{}, fmt.Errorf("invalid GitHub API url: %w", err)
		}
		f.baseURL = u
	}
	return f, nil
}

// Client returns a GitHub client authenticated with credential, or with the service
// token when credential is empty. Without any token the client is anonymous.
func (f ClientFactory) Client(ctx context.Context, credential string) *github.Client {
	token := credential
	if token == "" {
		token = f.serviceToken
	}

	httpClient := &http.Client{Transport: f.transport}
	if token != "" {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}

	client := github.NewClient(httpClient)
	if f.baseURL != nil {
		client.BaseURL = f.baseURL
	}
	return client
}

// PacedTransport delays every request until the shared limiter grants a token.
type PacedTransport struct {
	limiter *rate.Limiter
	next    http.RoundTripper
}

// NewPacedTransport allows requestsPerSecond requests per second through next.
func NewPacedTransport(requestsPerSecond int, next http.RoundTripper) PacedTransport {
	if requestsPerSecond < 1 {
		requestsPerSecond = 1
	}
	if next == nil {
		next = http.DefaultTransport
	}
	return PacedTransport{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		next:    next,
	}
}

// RoundTrip implements http.RoundTripper.
func (t PacedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("github request pacing: %w", err)
	}
	return t.next.RoundTrip(req)
}

// asRateLimited converts the GitHub rate limit signals into a domain.RateLimitedErr.
// Primary limits surface as *github.RateLimitError, secondary limits as
// *github.AbuseRateLimitError; a bare 429, or a 403 mentioning the rate limit, counts too.
func asRateLimited(err error, resp *github.Response) (*domain.RateLimitedErr, bool) {
	var primary *github.RateLimitError
	if errors.As(err, &primary) {
		msg := "GitHub API rate limit exceeded. Please try again later or provide a GitHub token with a higher limit."
		if !primary.Rate.Reset.Time.IsZero() {
			msg = fmt.Sprintf("GitHub API rate limit exceeded. The limit resets at %s; provide a GitHub token with a higher limit or try again later.",
				primary.Rate.Reset.Time.UTC().Format(time.RFC3339))
		}
		return domain.NewRateLimitedErr(msg), true
	}

	var secondary *github.AbuseRateLimitError
	if errors.As(err, &secondary) {
		return domain.NewRateLimitedErr("GitHub secondary rate limit exceeded. Please wait a few minutes before trying again."), true
	}

	switch statusCode(resp) {
	case http.StatusTooManyRequests:
		return domain.NewRateLimitedErr("GitHub API rate limit exceeded. Please try again later or provide a GitHub token with a higher limit."), true
	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(err.Error()), "rate limit") {
			return domain.NewRateLimitedErr("GitHub API rate limit exceeded. Please try again later or provide a GitHub token with a higher limit."), true
		}
	}
	return nil, false
}

// statusCode safely extracts the HTTP status code from a GitHub response.
func statusCode(resp *github.Response) int {
	if resp != nil && resp.Response != nil {
		return resp.StatusCode
	}
	return 0
}
