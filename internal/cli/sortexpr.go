package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/roster/internal/engine"
)

// sortPartsMax is the number of colon-separated parts in a sort expression.
const sortPartsMax = 2

// ParseSortExpression parses a sort expression in "field:order" format.
// Supports:
//   - "field" - defaults to ascending order
//   - "field:asc" - explicit ascending order
//   - "field:desc" - explicit descending order
//
// Valid fields are the engine sort keys (first_name, gender, age, email).
func ParseSortExpression(expr string) (engine.SortKey, engine.Direction, error) {
	if strings.TrimSpace(expr) == "" {
		return "", "", errors.New("empty sort expression")
	}

	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return "", "", fmt.Errorf("invalid format: too many colons in %q", expr)
	}

	key := engine.SortKey(strings.TrimSpace(parts[0]))
	if key == "" {
		return "", "", errors.New("empty sort expression")
	}
	if !engine.IsValidSortKey(key) {
		return "", "", fmt.Errorf("invalid sort field %q (valid: %s)",
			key, strings.Join(engine.ValidSortKeys(), ", "))
	}

	dir := engine.Ascending
	if len(parts) == sortPartsMax {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "asc":
			dir = engine.Ascending
		case "desc":
			dir = engine.Descending
		default:
			return "", "", fmt.Errorf("invalid sort order: %q (must be asc or desc)", parts[1])
		}
	}

	return key, dir, nil
}
