package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotCost(t *testing.T) {
	a := assert.New(t)

	for current, want := range map[int]int{1: 100, 2: 1000, 3: 10000, 4: 100000} {
		cost, ok := SlotCost(current)
		a.True(ok)
		a.Equal(want, cost, "slots: %d", current)
	}

	_, ok := SlotCost(MaxSlots)
	a.False(ok)
}
