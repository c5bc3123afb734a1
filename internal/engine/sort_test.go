package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/roster/internal/engine"
)

func TestSort_ValidKeys(t *testing.T) {
	for _, key := range []engine.SortKey{
		engine.SortByFirstName,
		engine.SortByGender,
		engine.SortByAge,
		engine.SortByEmail,
	} {
		t.Run(string(key), func(t *testing.T) {
			assert.True(t, engine.IsValidSortKey(key))
		})
	}

	assert.False(t, engine.IsValidSortKey("savings"))
	assert.False(t, engine.IsValidSortKey(""))
	assert.Equal(t, []string{"age", "email", "first_name", "gender"}, engine.ValidSortKeys())
}

func TestSort_ByAgeAscending(t *testing.T) {
	records := sampleRecords()

	sorted := engine.Sort(records, engine.SortByAge, engine.Ascending)

	require.Len(t, sorted, 4)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].DOB.Age, sorted[i].DOB.Age)
	}
	assert.Equal(t, "Bo", sorted[0].Name.First)
}

func TestSort_ByAgeDescending(t *testing.T) {
	records := sampleRecords()

	sorted := engine.Sort(records, engine.SortByAge, engine.Descending)

	require.Len(t, sorted, 4)
	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i-1].DOB.Age, sorted[i].DOB.Age)
	}
	assert.Equal(t, "Cleo", sorted[0].Name.First)
}

func TestSort_StringKeysCompareLowercased(t *testing.T) {
	records := []engine.Record{
		{Name: engine.Name{First: "bob"}, Email: "Z@x.com"},
		{Name: engine.Name{First: "Alice"}, Email: "a@x.com"},
	}

	byName := engine.Sort(records, engine.SortByFirstName, engine.Ascending)
	assert.Equal(t, "Alice", byName[0].Name.First, "lowercased comparison must ignore case")

	byEmail := engine.Sort(records, engine.SortByEmail, engine.Ascending)
	assert.Equal(t, "a@x.com", byEmail[0].Email)
}

func TestSort_Stability(t *testing.T) {
	// Two pairs share an age; each pair must keep its input order in both
	// directions.
	records := []engine.Record{
		{Name: engine.Name{First: "first-30"}, DOB: engine.DOB{Age: 30}},
		{Name: engine.Name{First: "first-25"}, DOB: engine.DOB{Age: 25}},
		{Name: engine.Name{First: "second-30"}, DOB: engine.DOB{Age: 30}},
		{Name: engine.Name{First: "second-25"}, DOB: engine.DOB{Age: 25}},
	}

	asc := engine.Sort(records, engine.SortByAge, engine.Ascending)
	require.Len(t, asc, 4)
	assert.Equal(t, "first-25", asc[0].Name.First)
	assert.Equal(t, "second-25", asc[1].Name.First)
	assert.Equal(t, "first-30", asc[2].Name.First)
	assert.Equal(t, "second-30", asc[3].Name.First)

	desc := engine.Sort(records, engine.SortByAge, engine.Descending)
	require.Len(t, desc, 4)
	assert.Equal(t, "first-30", desc[0].Name.First)
	assert.Equal(t, "second-30", desc[1].Name.First)
	assert.Equal(t, "first-25", desc[2].Name.First)
	assert.Equal(t, "second-25", desc[3].Name.First)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	original := sampleRecords()

	_ = engine.Sort(records, engine.SortByEmail, engine.Descending)
	assert.Equal(t, original, records)
}

func TestSort_EmptyDirectionKeepsOrder(t *testing.T) {
	records := sampleRecords()

	sorted := engine.Sort(records, engine.SortByAge, "")
	assert.Equal(t, records, sorted)
}
