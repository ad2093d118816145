package deck

// Hand represents an ordered collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// RemoveAt removes the card at the specified position
// Returns nil if the index is out of range
func (h *Hand) RemoveAt(i int) *Card {
	if i < 0 || i >= len(*h) {
		return nil
	}

	card := (*h)[i]
	newHand := make(Hand, 0, len(*h)-1)
	newHand = append(newHand, (*h)[:i]...)
	newHand = append(newHand, (*h)[i+1:]...)
	*h = newHand

	return card
}

// LowestChipValue returns the lowest chip value in the hand
// The second return value is false if the hand is empty
func (h Hand) LowestChipValue() (int, bool) {
	if len(h) == 0 {
		return 0, false
	}

	lowest := h[0].ChipValue()
	for _, c := range h[1:] {
		if v := c.ChipValue(); v < lowest {
			lowest = v
		}
	}

	return lowest, true
}

// AllColor returns true if the hand is non-empty and every card is the color
func (h Hand) AllColor(color Color) bool {
	if len(h) == 0 {
		return false
	}

	for _, c := range h {
		if c.Color() != color {
			return false
		}
	}

	return true
}

// Count returns the number of non-nil cards
func (h Hand) Count() int {
	n := 0
	for _, c := range h {
		if c != nil {
			n++
		}
	}

	return n
}

func (h Hand) String() string {
	return CardsToString(h)
}
