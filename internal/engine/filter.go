package engine

import (
	"strconv"
	"strings"
)

// genderExactQuery is the one query value that matches gender by equality
// instead of containment. "female" contains "male" as a substring, so a
// plain containment test would make a "male" search return every record.
const genderExactQuery = "male"

// Filter returns the records matching query. An empty query (after
// trimming) returns the input slice itself, so equal inputs stay
// referentially consistent for memoization.
//
// Matching is case-sensitive substring containment against the first name,
// last name, "first last", email, and the decimal form of age. Gender is
// special-cased for the exact query "male" (see genderExactQuery); every
// other query matches gender by ordinary containment.
func Filter(records []Record, query string) []Record {
	if strings.TrimSpace(query) == "" {
		return records
	}

	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if recordMatches(r, query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// recordMatches reports whether a single record matches the query.
func recordMatches(r Record, query string) bool {
	if strings.Contains(r.Name.First, query) ||
		strings.Contains(r.Name.Last, query) ||
		strings.Contains(r.FullName(), query) ||
		strings.Contains(r.Email, query) ||
		strings.Contains(strconv.Itoa(r.DOB.Age), query) {
		return true
	}

	if query == genderExactQuery {
		return r.Gender == genderExactQuery
	}
	return strings.Contains(r.Gender, query)
}
