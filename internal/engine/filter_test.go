package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/roster/internal/engine"
)

func sampleRecords() []engine.Record {
	return []engine.Record{
		{
			Gender: "female",
			Name:   engine.Name{First: "Amy", Last: "Pond"},
			Email:  "amy.pond@example.com",
			DOB:    engine.DOB{Age: 30},
		},
		{
			Gender: "male",
			Name:   engine.Name{First: "Bo", Last: "Diaz"},
			Email:  "bo.diaz@example.com",
			DOB:    engine.DOB{Age: 25},
		},
		{
			Gender: "female",
			Name:   engine.Name{First: "Cleo", Last: "Marsh"},
			Email:  "cleo.marsh@example.com",
			DOB:    engine.DOB{Age: 42},
		},
		{
			Gender: "male",
			Name:   engine.Name{First: "Drew", Last: "Klein"},
			Email:  "drew.klein@example.com",
			DOB:    engine.DOB{Age: 30},
		},
	}
}

func TestFilter_EmptyQueryReturnsInput(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name  string
		query string
	}{
		{name: "empty", query: ""},
		{name: "whitespace only", query: "   "},
		{name: "tab and newline", query: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Filter(records, tt.query)
			require.Len(t, got, len(records))
			// Same backing slice, not a copy: referential consistency
			// is what makes memoization on equal inputs possible.
			assert.Same(t, &records[0], &got[0])
		})
	}
}

func TestFilter_SubstringFields(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name   string
		query  string
		emails []string
	}{
		{
			name:   "first name",
			query:  "Amy",
			emails: []string{"amy.pond@example.com"},
		},
		{
			name:   "last name",
			query:  "Marsh",
			emails: []string{"cleo.marsh@example.com"},
		},
		{
			name:   "joined full name",
			query:  "Bo Diaz",
			emails: []string{"bo.diaz@example.com"},
		},
		{
			name:   "email",
			query:  "klein@",
			emails: []string{"drew.klein@example.com"},
		},
		{
			name:   "age as decimal string",
			query:  "30",
			emails: []string{"amy.pond@example.com", "drew.klein@example.com"},
		},
		{
			name:   "age digit substring",
			query:  "4",
			emails: []string{"cleo.marsh@example.com"},
		},
		{
			name:   "no match",
			query:  "zzz",
			emails: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Filter(records, tt.query)
			emails := make([]string, 0, len(got))
			for _, r := range got {
				emails = append(emails, r.Email)
			}
			assert.ElementsMatch(t, tt.emails, emails)
		})
	}
}

func TestFilter_CaseSensitive(t *testing.T) {
	records := sampleRecords()

	got := engine.Filter(records, "amy")
	// "amy" matches the email but not the capitalized first name.
	require.Len(t, got, 1)
	assert.Equal(t, "amy.pond@example.com", got[0].Email)

	got = engine.Filter(records, "AMY")
	assert.Empty(t, got)
}

func TestFilter_GenderExclusivity(t *testing.T) {
	records := sampleRecords()

	got := engine.Filter(records, "male")
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "male", r.Gender, "query \"male\" must never match female records")
	}

	// Any other query still matches gender by plain containment.
	got = engine.Filter(records, "fem")
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "female", r.Gender)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	records := sampleRecords()

	queries := []string{"", "male", "30", "example.com", "Amy"}
	for _, q := range queries {
		t.Run("query "+q, func(t *testing.T) {
			once := engine.Filter(records, q)
			twice := engine.Filter(once, q)
			assert.Equal(t, once, twice)
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	original := sampleRecords()

	_ = engine.Filter(records, "male")
	assert.Equal(t, original, records)
}
