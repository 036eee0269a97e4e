package shared

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for report date parameters.
const DateLayout = "2006-01-02"

// ParseDate parses an optional ISO date parameter. An empty value means the
// bound is open and yields nil. A non-empty value that does not parse is an
// input error, never silently treated as open.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return &t, nil
}

// ParseAccountID parses a single account id path or query parameter.
func ParseAccountID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccountID, value)
	}
	return id, nil
}

// ParseAccountIDs parses a comma separated account id list.
func ParseAccountIDs(value string) ([]int64, error) {
	parts := strings.Split(value, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := ParseAccountID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: empty id list", ErrInvalidAccountID)
	}
	return ids, nil
}
