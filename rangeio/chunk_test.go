package rangeio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanChunks(t *testing.T) {
	plan := planChunks(Range{Start: 0, End: 10}, 4)
	assert.Equal(t, 3, plan.Len())
	assert.Equal(t, Range{Start: 0, End: 4}, plan.PopFront())
	assert.Equal(t, Range{Start: 4, End: 8}, plan.PopFront())
	assert.Equal(t, Range{Start: 8, End: 10}, plan.PopFront())

	plan = planChunks(Range{Start: 16, End: 24}, 4)
	assert.Equal(t, 2, plan.Len())
	assert.Equal(t, Range{Start: 16, End: 20}, plan.PopFront())
	assert.Equal(t, Range{Start: 20, End: 24}, plan.PopFront())

	plan = planChunks(Range{Start: 5, End: 5}, 4)
	assert.Equal(t, 0, plan.Len())
}

func TestPlanChunksZeroSize(t *testing.T) {
	assert.Panics(t, func() {
		planChunks(Range{Start: 0, End: 10}, 0)
	})
}
