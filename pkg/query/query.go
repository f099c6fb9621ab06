package query

import "strconv"

// OptionalInt parses a query parameter that may be absent.
// It returns nil for empty or unparseable input.
func OptionalInt(val string) *int {
	if val == "" {
		return nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &i
}
