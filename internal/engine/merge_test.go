package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramanasai/dayflow/internal/model"
)

func day(hours map[int][]string) *model.DayData {
	return &model.DayData{Hours: hours}
}

func TestMergePlannedEmptyRecurringIsIdentity(t *testing.T) {
	specific := day(map[int][]string{9: {"a", "b"}, 14: {"c"}})

	merged := MergePlanned(specific, nil)

	assert.Equal(t, specific.Hours, merged.Hours)
}

func TestMergePlannedUnionDedup(t *testing.T) {
	specific := day(map[int][]string{9: {"a", "b"}})
	recurring := map[int][]string{9: {"b", "c"}, 6: {"run"}}

	merged := MergePlanned(specific, recurring)

	assert.ElementsMatch(t, []string{"a", "b", "c"}, merged.Hours[9])
	assert.Equal(t, []string{"run"}, merged.Hours[6])

	// Union regardless of which side an id came from; no duplicates.
	flipped := MergePlanned(day(map[int][]string{9: {"b", "c"}}), map[int][]string{9: {"a", "b"}})
	assert.ElementsMatch(t, merged.Hours[9], flipped.Hours[9])
}

func TestMergePlannedNilDay(t *testing.T) {
	merged := MergePlanned(nil, map[int][]string{7: {"x"}})
	assert.Equal(t, []string{"x"}, merged.Hours[7])
	assert.Empty(t, merged.Hours[8])
}

func TestAssignHourCapEvictsOldest(t *testing.T) {
	d := day(map[int][]string{})
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		d.AssignHour(10, id)
	}

	assert.Equal(t, []string{"b", "c", "d", "e"}, d.Hours[10])

	// Re-assigning an existing id is a no-op, not a reorder.
	d.AssignHour(10, "c")
	assert.Equal(t, []string{"b", "c", "d", "e"}, d.Hours[10])
}
