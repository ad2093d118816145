package main

import "idlepoker-server/pkg/game"

// step plays one round of greedy actions before a tick
// Rejected actions are expected and ignored
func step(e *game.Engine) {
	s := e.State()

	for slot := 0; slot < s.MaxSlots && len(s.Hand) > 0; slot++ {
		if s.Table[slot] == nil {
			_ = e.PlaceCard(0, slot)
		}
	}

	_ = e.BuySlot()

	if len(s.Jokers) < s.MaxJokers {
		for _, t := range e.Catalog().Jokers {
			if e.BuyJoker(t.ID) == nil {
				break
			}
		}
	}

	if len(s.Hand) == 0 {
		_ = e.Draw()
	}
}
