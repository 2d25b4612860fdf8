package db

import (
	"net/url"
	"regexp"
	"strings"
)

var kvPairs = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)

// NormalizeDSN accepts either a URL style DSN (postgres://...) or a lib/pq
// key=value list. Quotes and stray whitespace are trimmed; key=value form
// gains sslmode=disable when none is set.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}
	if !kvPairs.MatchString(s) {
		return s
	}
	cleaned := strings.Join(strings.Fields(s), " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// ToURLDSN rewrites a key=value DSN into URL form, which golang-migrate
// requires. URL input passes through; so does anything too sparse to build
// a URL from.
func ToURLDSN(kvDSN string) string {
	if kvDSN == "" || strings.HasPrefix(strings.ToLower(kvDSN), "postgres") {
		return kvDSN
	}
	parts := map[string]string{}
	for _, field := range strings.Fields(kvDSN) {
		kv := strings.SplitN(field, "=", 2)
		if len(kv) == 2 {
			parts[strings.ToLower(kv[0])] = kv[1]
		}
	}
	if parts["host"] == "" || parts["user"] == "" || parts["dbname"] == "" {
		return kvDSN
	}
	u := &url.URL{Scheme: "postgres", Host: parts["host"], Path: "/" + parts["dbname"]}
	if port := parts["port"]; port != "" {
		u.Host = parts["host"] + ":" + port
	}
	if pass := parts["password"]; pass != "" {
		u.User = url.UserPassword(parts["user"], pass)
	} else {
		u.User = url.User(parts["user"])
	}
	if sslmode := parts["sslmode"]; sslmode != "" {
		q := url.Values{}
		q.Set("sslmode", sslmode)
		u.RawQuery = q.Encode()
	}
	return u.String()
}
