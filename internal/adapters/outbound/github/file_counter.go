package github

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/google/go-github/v57/github"
	"golang.org/x/sync/errgroup"
)

// FileCounter implements domain.RepositoryFileCounter with the contents API.
type FileCounter struct {
	clients ClientFactory
}

// NewFileCounter creates a new FileCounter.
func NewFileCounter(clients ClientFactory) FileCounter {
	return FileCounter{clients: clients}
}

// CountFiles lists path and recurses into every subdirectory in parallel. Only entries of
// type "file" are counted. Rate limits fail fast with a domain.RateLimitedErr; any other
// failure is wrapped in a domain.ContentFetchErr.
func (c FileCounter) CountFiles(ctx context.Context, repo domain.RepositoryRef, path string, credential string) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	count, err := c.count(spanCtx, c.clients.Client(spanCtx, credential), repo, path)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

func (c FileCounter) count(ctx context.Context, client *github.Client, repo domain.RepositoryRef, path string) (int, error) {
	file, entries, resp, err := client.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, nil)
	if err != nil {
		if rlErr, ok := asRateLimited(err, resp); ok {
			return 0, rlErr
		}
		return 0, domain.NewContentFetchErr(err)
	}
	if file != nil {
		return 1, nil
	}

	files := 0
	var dirs []string
	for _, entry := range entries {
		switch entry.GetType() {
		case "file":
			files++
		case "dir":
			dirs = append(dirs, entry.GetPath())
		}
	}
	if len(dirs) == 0 {
		return files, nil
	}

	counts := make([]int, len(dirs))
	g, gCtx := errgroup.WithContext(ctx)
	for i, dir := range dirs {
		g.Go(func() error {
			n, err := c.count(gCtx, client, repo, dir)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	for _, n := range counts {
		files += n
	}
	return files, nil
}
