package services

import "strings"

// DefaultUnit is the terminal fallback when no source carries a unit.
const DefaultUnit = "KG"

// ResolveUnit returns the first non-blank candidate, in the order given,
// falling back to DefaultUnit. Callers encode the precedence explicitly:
// total_unit, then total_uom, then the first line item unit.
func ResolveUnit(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return strings.TrimSpace(c)
		}
	}
	return DefaultUnit
}

// ResolveDate returns the first non-blank candidate in the order given, or
// "" when none is set. Used for the today's-deliveries priority chain:
// dispatch_date, eta, delivery_date, expected_delivery.
func ResolveDate(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return strings.TrimSpace(c)
		}
	}
	return ""
}
