package github

import (
	"context"
	"log"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// InitGitHub registers the GitHub backed repository ports.
type InitGitHub struct {
	Logger            *log.Logger `resolve:""`
	Token             string      `config:"GITHUB_TOKEN" default:"-"`
	APIURL            string      `config:"GITHUB_API_URL" default:"-"`
	RequestsPerSecond int         `config:"GITHUB_REQUESTS_PER_SECOND" default:"10"`
}

// Initialize builds the shared paced transport and registers the FileCounter and RepositoryLoader.
func (i InitGitHub) Initialize(ctx context.Context) (context.Context, error) {
	transport := otelhttp.NewTransport(
		NewPacedTransport(i.RequestsPerSecond, http.DefaultTransport),
		otelhttp.WithSpanNameFormatter(telemetry.SpanNameFormatter),
	)

	clients, err := NewClientFactory(transport, unset(i.Token), unset(i.APIURL))
	if err != nil {
		return ctx, err
	}

	depend.Register[domain.RepositoryFileCounter](NewFileCounter(clients))
	depend.Register[domain.RepositoryLoader](NewRepositoryLoader(clients, i.Logger))
	return ctx, nil
}

// unset maps the "-" placeholder used for optional settings to an empty value.
func unset(v string) string {
	if v == "-" {
		return ""
	}
	return v
}
