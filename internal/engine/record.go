package engine

import "fmt"

// Name holds the name components of a fetched user record.
type Name struct {
	Title string `json:"title,omitempty"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// DOB holds date-of-birth data. Only the precomputed age is used for
// display and sorting.
type DOB struct {
	Date string `json:"date,omitempty"`
	Age  int    `json:"age"`
}

// Record is a single user entry from the fetched batch. Records are
// immutable once fetched; email doubles as the display key and is assumed
// unique within a batch. The JSON tags match the randomuser.me payload.
type Record struct {
	Gender string `json:"gender"`
	Name   Name   `json:"name"`
	Email  string `json:"email"`
	DOB    DOB    `json:"dob"`
}

// FullName returns the record's name as "first last" with a single space.
func (r Record) FullName() string {
	return fmt.Sprintf("%s %s", r.Name.First, r.Name.Last)
}
