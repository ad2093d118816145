package poker

import "idlepoker-server/pkg/deck"

// the low-ace run once sorted by rank, Ace stays at 14
var wheel = []int{2, 3, 4, 5, deck.Ace}

// isStraight checks ranks sorted ascending for an unbroken run
// A duplicate rank breaks the run. The wheel (A-2-3-4-5) is matched against the tail of the ranks.
func isStraight(ranks []int) bool {
	if len(ranks) < madeHandSize {
		return false
	}

	consecutive := true
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1]+1 != ranks[i] {
			consecutive = false
			break
		}
	}

	if consecutive {
		return true
	}

	return hasWheelTail(ranks)
}

func hasWheelTail(ranks []int) bool {
	if len(ranks) < len(wheel) {
		return false
	}

	tail := ranks[len(ranks)-len(wheel):]
	for i, rank := range wheel {
		if tail[i] != rank {
			return false
		}
	}

	return true
}
