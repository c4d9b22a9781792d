package github

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/telemetry"
	"github.com/google/go-github/v57/github"
	"golang.org/x/sync/errgroup"
)

const defaultLoaderConcurrency = 5

// RepositoryLoader implements domain.RepositoryLoader with the git trees and blobs API.
type RepositoryLoader struct {
	clients ClientFactory
	logger  *log.Logger
}

// NewRepositoryLoader creates a new RepositoryLoader.
func NewRepositoryLoader(clients ClientFactory, logger *log.Logger) RepositoryLoader {
	return RepositoryLoader{clients: clients, logger: logger}
}

// ResolveDefaultBranch implements domain.RepositoryLoader.
func (l RepositoryLoader) ResolveDefaultBranch(ctx context.Context, repo domain.RepositoryRef, credential string) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	branch, err := l.defaultBranch(spanCtx, l.clients.Client(spanCtx, credential), repo)
	if telemetry.RecordErrorAndStatus(span, err) {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return "", domain.NewNotFoundErr(fmt.Sprintf("repository %s not found or not accessible", repo))
		}
		return "", err
	}
	return branch, nil
}

// LoadDocuments lists the recursive tree of the branch and downloads every blob that is
// not ignored, with at most MaxConcurrency downloads in flight. Binary blobs are skipped.
// Documents keep the tree order.
func (l RepositoryLoader) LoadDocuments(ctx context.Context, req domain.RepositoryLoadRequest) ([]domain.Document, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	docs, err := l.load(spanCtx, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return docs, nil
}

func (l RepositoryLoader) load(ctx context.Context, req domain.RepositoryLoadRequest) ([]domain.Document, error) {
	client := l.clients.Client(ctx, req.Credential)
	repo := req.Repository

	branch := req.Branch
	if branch == "" {
		var err error
		branch, err = l.defaultBranch(ctx, client, repo)
		if err != nil {
			return nil, err
		}
	}

	tree, resp, err := client.Git.GetTree(ctx, repo.Owner, repo.Name, branch, true)
	if err != nil {
		return nil, upstreamErr(err, resp)
	}
	if tree.GetTruncated() {
		l.logger.Printf("RepositoryLoader: tree of %s@%s is truncated, some files will be missing", repo, branch)
	}

	var blobs []*github.TreeEntry
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" || req.IsIgnored(entry.GetPath()) {
			continue
		}
		blobs = append(blobs, entry)
	}

	limit := req.MaxConcurrency
	if limit < 1 {
		limit = defaultLoaderConcurrency
	}

	loaded := make([]*domain.Document, len(blobs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, entry := range blobs {
		g.Go(func() error {
			raw, resp, err := client.Git.GetBlobRaw(gCtx, repo.Owner, repo.Name, entry.GetSHA())
			if err != nil {
				return upstreamErr(err, resp)
			}
			if !domain.IsTextContent(raw) {
				l.logger.Printf("RepositoryLoader: skipping %s: unsupported binary content", entry.GetPath())
				return nil
			}
			loaded[i] = &domain.Document{Path: entry.GetPath(), Content: string(raw)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(loaded))
	for _, doc := range loaded {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	return docs, nil
}

func (l RepositoryLoader) defaultBranch(ctx context.Context, client *github.Client, repo domain.RepositoryRef) (string, error) {
	r, resp, err := client.Repositories.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		return "", upstreamErr(err, resp)
	}
	return r.GetDefaultBranch(), nil
}

// upstreamErr keeps loader errors undecorated, except rate limits which callers must
// be able to tell apart.
func upstreamErr(err error, resp *github.Response) error {
	if rlErr, ok := asRateLimited(err, resp); ok {
		return rlErr
	}
	return err
}
