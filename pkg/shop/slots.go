package shop

// MaxSlots is the most table slots a run may unlock
const MaxSlots = 5

const baseSlotCost = 100

// SlotCost returns the chips needed to unlock the next slot when owning {current} slots
// The cost grows tenfold per slot: 100, 1000, 10000, 100000
// Returns false if every slot is already unlocked
func SlotCost(current int) (int, bool) {
	if current >= MaxSlots {
		return 0, false
	}

	cost := baseSlotCost
	for i := 1; i < current; i++ {
		cost *= 10
	}

	return cost, true
}
