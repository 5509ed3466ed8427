package search

import (
	"net/url"
	"strings"
)

// splitURL separates a URL into its host and its path for scoring; the
// query and fragment are not included in either. A malformed URL
// degrades to an empty host and
// the whole string treated as path, per spec §4.9's failure mode: never
// abort the search, just lose the host signal for that record.
//
// Corpus records commonly omit the scheme (a browsing-history entry
// like "console.cloud.google.com/api/zaar-api" rather than
// "https://console.cloud.google.com/api/zaar-api"); net/url.Parse
// treats a bare "host/path" string with no "://" as an opaque relative
// path rather than extracting a host. schemelessHost recovers the host
// in that common case so url-path-based scoring (e.g. split-field
// detection) doesn't mistake a host match for a path match.
func splitURL(rawURL string) (host, path string) {
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		return u.Host, u.Path
	}
	if h, p, ok := schemelessHost(rawURL); ok {
		return h, p
	}
	return "", rawURL
}

// schemelessHost recognizes a "host/path"-shaped string with no scheme
// by parsing it as a network-path reference ("//host/path"), the one
// case url.Parse needs help with.
func schemelessHost(rawURL string) (host, path string, ok bool) {
	if strings.Contains(rawURL, "://") {
		return "", "", false
	}
	first := rawURL
	if i := strings.IndexByte(rawURL, '/'); i >= 0 {
		first = rawURL[:i]
	}
	if first == "" || strings.ContainsAny(first, " \t") || !strings.Contains(first, ".") {
		return "", "", false
	}
	u, err := url.Parse("//" + rawURL)
	if err != nil || u.Host == "" {
		return "", "", false
	}
	return u.Host, u.Path, true
}

// normalizeURL builds the diversity filter's dedup key: protocol://host
// + path, lowercased, query and fragment dropped, trailing slash
// stripped unless it is the sole path character. Falls back to a
// string-only normalization when URL parsing fails.
func normalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fallbackNormalize(rawURL)
	}

	key := u.Scheme + "://" + u.Host + u.Path
	key = strings.ToLower(key)
	if len(u.Path) > 1 && strings.HasSuffix(key, "/") {
		key = strings.TrimSuffix(key, "/")
	}
	return key
}

func fallbackNormalize(rawURL string) string {
	s := strings.ToLower(rawURL)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if len(s) > 1 && strings.HasSuffix(s, "/") {
		s = strings.TrimSuffix(s, "/")
	}
	return s
}
