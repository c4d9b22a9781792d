package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// DefaultIgnoredFiles lists the dependency-lock artifacts that are never ingested.
var DefaultIgnoredFiles = []string{
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"bun.lockb",
}

// githubHosts are the hosts a repository URL may point at.
var githubHosts = map[string]bool{
	"github.com":     true,
	"www.github.com": true,
}

// RepositoryRef identifies a repository on the hosting provider.
type RepositoryRef struct {
	Owner string
	Name  string
}

// String returns the owner/name form of the reference.
func (r RepositoryRef) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepositoryURL extracts the owner and repository name from a repository URL.
// Both "https://github.com/owner/name(.git)" and "github.com/owner/name" are accepted;
// any trailing path (tree/main/...) is ignored. Hosts other than github.com are rejected.
func ParseRepositoryURL(raw string) (RepositoryRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RepositoryRef{}, NewValidationErr("repository url cannot be empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return RepositoryRef{}, NewValidationErr(fmt.Sprintf("invalid repository url: %q", raw))
	}
	if !githubHosts[strings.ToLower(u.Hostname())] {
		return RepositoryRef{}, NewValidationErr(fmt.Sprintf("unsupported repository host %q: only github.com repositories can be indexed", u.Hostname()))
	}

	segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if len(segments) < 2 {
		return RepositoryRef{}, NewValidationErr("repository url must contain an owner and a repository name")
	}

	ref := RepositoryRef{
		Owner: segments[0],
		Name:  strings.TrimSuffix(segments[1], ".git"),
	}
	if ref.Owner == "" || ref.Name == "" {
		return RepositoryRef{}, NewValidationErr("repository url must contain an owner and a repository name")
	}
	return ref, nil
}

// Document is a file's path and raw text content retrieved from a repository.
type Document struct {
	Path    string
	Content string
}

// SummaryResult pairs a document path with its generated summary.
type SummaryResult struct {
	Path    string
	Summary string
}

// CostEstimate is the advisory number of files to process for a repository.
type CostEstimate struct {
	Repository RepositoryRef
	FileCount  int
}

// RepositoryLoadRequest describes which documents to fetch from a repository.
type RepositoryLoadRequest struct {
	Repository RepositoryRef
	// Credential is an optional access token; the service token is used when empty.
	Credential string
	// Branch defaults to the repository's primary branch when empty.
	Branch string
	// IgnoreFiles are base names that are excluded regardless of content.
	IgnoreFiles []string
	// MaxConcurrency caps concurrent file fetches.
	MaxConcurrency int
}

// IsIgnored reports whether the file at path matches one of the ignored base names.
func (r RepositoryLoadRequest) IsIgnored(path string) bool {
	base := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		base = path[i+1:]
	}
	for _, ignored := range r.IgnoreFiles {
		if base == ignored {
			return true
		}
	}
	return false
}

// RepositoryFileCounter counts the leaf files of a repository tree without downloading them.
type RepositoryFileCounter interface {
	// CountFiles returns how many files exist under path (the root when empty).
	CountFiles(ctx context.Context, repo RepositoryRef, path string, credential string) (int, error)
}

// RepositoryLoader fetches repository documents from the hosting provider.
type RepositoryLoader interface {
	// ResolveDefaultBranch returns the primary branch of the repository.
	ResolveDefaultBranch(ctx context.Context, repo RepositoryRef, credential string) (string, error)
	// LoadDocuments returns the documents of every non-ignored file.
	LoadDocuments(ctx context.Context, req RepositoryLoadRequest) ([]Document, error)
}
