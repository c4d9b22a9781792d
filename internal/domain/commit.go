package domain

import "strings"

// MaxCommitDiffInputChars is the number of characters of a diff sent to the summarization model.
const MaxCommitDiffInputChars = 40_000

// CommitSummary is the model's description of the changes in one git diff.
type CommitSummary struct {
	Summary      string
	ChangedFiles []string
	// Truncated is set when only the first MaxCommitDiffInputChars of the diff were summarized.
	Truncated bool
}

// ChangedFiles lists the files touched by a unified git diff, in diff order.
// Files are read from the "diff --git a/<path> b/<path>" headers.
func ChangedFiles(diff string) []string {
	files := []string{}
	seen := map[string]bool{}
	for _, line := range strings.Split(diff, "\n") {
		rest, ok := strings.CutPrefix(strings.TrimRight(line, "\r"), "diff --git ")
		if !ok {
			continue
		}
		i := strings.LastIndex(rest, " b/")
		if i < 0 {
			continue
		}
		path := strings.TrimSpace(rest[i+len(" b/"):])
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		files = append(files, path)
	}
	return files
}
