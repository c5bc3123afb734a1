package engine

import (
	"sort"
	"strings"
)

// SortKey identifies the record field a sort orders by.
type SortKey string

// Valid sort keys.
const (
	SortByFirstName SortKey = "first_name"
	SortByGender    SortKey = "gender"
	SortByAge       SortKey = "age"
	SortByEmail     SortKey = "email"
)

// Direction is the sort direction.
type Direction string

// Sort directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// validSortKeys is the set of keys Sort accepts.
var validSortKeys = map[SortKey]bool{
	SortByFirstName: true,
	SortByGender:    true,
	SortByAge:       true,
	SortByEmail:     true,
}

// IsValidSortKey checks if the given field name is valid for sorting.
func IsValidSortKey(key SortKey) bool {
	return validSortKeys[key]
}

// ValidSortKeys returns the valid sort field names in consistent order.
func ValidSortKeys() []string {
	keys := make([]string, 0, len(validSortKeys))
	for key := range validSortKeys {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)
	return keys
}

// Sort orders records by key and direction and returns a new slice; the
// input is never mutated. String keys compare as lower-cased strings in
// code-point order, age compares numerically. The sort is stable: records
// with equal derived keys keep their relative input order in both
// directions. An empty direction returns the records in input order.
func Sort(records []Record, key SortKey, dir Direction) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	if dir == "" {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j in comparisons to maintain stability
		if dir == Descending {
			i, j = j, i
		}
		return recordLess(sorted[i], sorted[j], key)
	})

	return sorted
}

// recordLess is the ascending three-way comparison collapsed to a less
// predicate for the given key.
func recordLess(a, b Record, key SortKey) bool {
	switch key {
	case SortByAge:
		return a.DOB.Age < b.DOB.Age
	case SortByGender:
		return strings.ToLower(a.Gender) < strings.ToLower(b.Gender)
	case SortByEmail:
		return strings.ToLower(a.Email) < strings.ToLower(b.Email)
	case SortByFirstName:
		return strings.ToLower(a.Name.First) < strings.ToLower(b.Name.First)
	default:
		return false
	}
}
