// Package strutil converts query-string values.
package strutil

import "strconv"

// ConvertToInt parses s as a base-10 int, returning 0 when s is not a number.
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToBool parses s as a bool, returning fallback when s is not a boolean literal.
func ConvertToBool(s string, fallback bool) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return v
}
