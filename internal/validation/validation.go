package validation

import (
	"strings"
	"unicode/utf8"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// LongerThan requires strictly more than n characters.
func LongerThan(field, value string, n int, v Violations) {
	if utf8.RuneCountInString(value) <= n {
		v[field] = "too_short"
	}
}

// EmailDomain requires the part after '@' to equal domain, case-insensitive.
func EmailDomain(field, email, domain string, v Violations) {
	at := strings.LastIndex(email, "@")
	if at < 1 || !strings.EqualFold(email[at+1:], domain) {
		v[field] = "invalid_domain"
	}
}
