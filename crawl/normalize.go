package crawl

import (
	"net/url"
	"strings"
)

// Normalize resolves href against base and returns the canonical string
// form used for visited-set membership. The second result is false when
// the href is malformed or uses a non-http(s) scheme (mailto:, tel:,
// javascript:, data:, ...).
//
// Canonicalization resolves relative references, strips the fragment
// (URLs differing only by fragment denote the same resource),
// lowercases the scheme and host, and gives bare-host URLs the root
// path. Normalize is pure and idempotent: re-normalizing its own
// output yields the same string.
func Normalize(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}

	resolved := ref
	if base != nil {
		resolved = base.ResolveReference(ref)
	}

	scheme := strings.ToLower(resolved.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", false
	}
	resolved.Scheme = scheme
	resolved.Host = strings.ToLower(resolved.Host)
	resolved.Fragment = ""

	// A bare host and a link to "/" name the same resource; give both
	// the root path so they share one visited-set entry.
	if resolved.Path == "" {
		resolved.Path = "/"
	}

	return resolved.String(), true
}
