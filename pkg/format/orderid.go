package format

import (
	"regexp"
	"strings"
)

// DefaultOrderIDPrefixLength matches the backend's AAA-AAA purchase ids.
// Deployments that issue 4-character prefixes override this via
// ORDER_ID_PREFIX_LENGTH.
const DefaultOrderIDPrefixLength = 3

var orderIDPattern = regexp.MustCompile(`^[A-Z0-9]+-[A-Z0-9]+$`)

// OrderID normalizes raw keystrokes into the canonical order id form:
// non-alphanumerics stripped, uppercased, a dash inserted after prefixLen
// characters. Input shorter than the prefix is returned as-is.
func OrderID(raw string, prefixLen int) string {
	if prefixLen <= 0 {
		prefixLen = DefaultOrderIDPrefixLength
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	clean := b.String()

	if len(clean) <= prefixLen {
		return clean
	}
	return clean[:prefixLen] + "-" + clean[prefixLen:]
}

// ValidOrderID reports whether id already has the canonical PREFIX-SUFFIX
// shape, regardless of the configured prefix length.
func ValidOrderID(id string) bool {
	return orderIDPattern.MatchString(strings.TrimSpace(id))
}
