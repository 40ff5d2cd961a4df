package embed

import (
	"fmt"
	"net/url"
	"strings"
)

// CheckSource reports whether raw is safe to use as an iframe source when
// no provider recognized it. Markup is still rendered either way; callers
// use this to warn.
func CheckSource(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("source URL is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https":
	default:
		return fmt.Errorf("unexpected URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}
