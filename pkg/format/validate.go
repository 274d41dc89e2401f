package format

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	skuPattern   = regexp.MustCompile(`^[A-Z0-9]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidSKU reports whether sku is a non-empty uppercase alphanumeric code.
func ValidSKU(sku string) bool {
	return skuPattern.MatchString(strings.TrimSpace(sku))
}

// ValidEmail reports whether email looks like a deliverable address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// CheckSKUs validates a product list's SKU column: every SKU present,
// uppercase alphanumeric, and unique. Returns one message per problem.
func CheckSKUs(skus []string) []string {
	var errs []string
	counts := make(map[string]int, len(skus))

	for i, sku := range skus {
		sku = strings.TrimSpace(sku)
		if sku == "" {
			errs = append(errs, fmt.Sprintf("row %d: SKU is required", i+1))
			continue
		}
		if !skuPattern.MatchString(sku) {
			errs = append(errs, fmt.Sprintf("row %d: SKU must contain only uppercase letters and numbers", i+1))
		}
		counts[sku]++
	}

	for sku, n := range counts {
		if n > 1 {
			errs = append(errs, fmt.Sprintf("duplicate SKU %q is used %d times", sku, n))
		}
	}
	return errs
}
