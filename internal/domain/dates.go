package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var agoRe = regexp.MustCompile(`^(\d+)\s+(hour|day|week)s?\s+ago$`)

// ParseSince converts a free-form "since" filter into an instant.
// It understands "today", "yesterday", "<n> hours|days|weeks ago" and any layout
// accepted by dateparse. An empty text returns nil.
func ParseSince(text string, ref time.Time, loc *time.Location) (*time.Time, error) {
	token := strings.ToLower(strings.TrimSpace(text))
	if token == "" {
		return nil, nil
	}

	if t, ok := resolveRelative(token, ref, loc); ok {
		return &t, nil
	}

	t, err := dateparse.ParseIn(token, loc)
	if err != nil {
		return nil, NewValidationErr(fmt.Sprintf("invalid since filter %q", text))
	}
	return &t, nil
}

func resolveRelative(token string, ref time.Time, loc *time.Location) (time.Time, bool) {
	ref = ref.In(loc)

	switch token {
	case "today":
		return dateOnly(ref), true
	case "yesterday":
		return dateOnly(ref).AddDate(0, 0, -1), true
	}

	m := agoRe.FindStringSubmatch(token)
	if len(m) != 3 {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	switch m[2] {
	case "hour":
		return ref.Add(-time.Duration(n) * time.Hour), true
	case "day":
		return ref.AddDate(0, 0, -n), true
	default:
		return ref.AddDate(0, 0, -7*n), true
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
