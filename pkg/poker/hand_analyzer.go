package poker

import (
	"sort"

	"idlepoker-server/pkg/deck"
)

// madeHandSize is how many cards a straight or flush requires
const madeHandSize = 5

// HandAnalyzer can analyze the cards on the table
type HandAnalyzer struct {
	// occupied cards sorted ascending by rank
	cards  []*deck.Card
	counts []int

	flush    bool
	straight bool

	hand Hand
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// Empty (nil) slots are ignored
func NewHandAnalyzer(slots []*deck.Card) *HandAnalyzer {
	cards := make([]*deck.Card, 0, len(slots))
	for _, card := range slots {
		if card != nil {
			cards = append(cards, card)
		}
	}

	sort.Stable(sortByRank(cards))

	h := &HandAnalyzer{
		cards: cards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// analyzeHand calculates the flush, straight and rank groupings
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	if len(h.cards) == 0 {
		return
	}

	ranks := make([]int, len(h.cards))
	rankCounts := make(map[int]int)
	h.flush = len(h.cards) >= madeHandSize
	for i, card := range h.cards {
		ranks[i] = card.Rank
		rankCounts[card.Rank]++

		if card.Suit != h.cards[0].Suit {
			h.flush = false
		}
	}

	h.straight = isStraight(ranks)

	h.counts = make([]int, 0, len(rankCounts))
	for _, count := range rankCounts {
		h.counts = append(h.counts, count)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(h.counts)))
}

// count returns the nth largest rank group size, or 0
func (h *HandAnalyzer) count(n int) int {
	if n < len(h.counts) {
		return h.counts[n]
	}

	return 0
}

// calculateHand will determine the best hand
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if len(h.cards) == 0 {
		h.hand = None
	} else if h.flush && h.straight && h.highestRank() == deck.Ace {
		h.hand = RoyalFlush
	} else if h.flush && h.straight {
		h.hand = StraightFlush
	} else if h.count(0) == 4 {
		h.hand = FourOfAKind
	} else if h.count(0) == 3 && h.count(1) == 2 {
		h.hand = FullHouse
	} else if h.flush {
		h.hand = Flush
	} else if h.straight {
		h.hand = Straight
	} else if h.count(0) == 3 {
		h.hand = ThreeOfAKind
	} else if h.count(0) == 2 && h.count(1) == 2 {
		h.hand = TwoPair
	} else if h.count(0) == 2 {
		h.hand = OnePair
	} else {
		h.hand = HighCard
	}
}

func (h *HandAnalyzer) highestRank() int {
	return h.cards[len(h.cards)-1].Rank
}

// GetHand will return the best matching category
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetHighCard will return the highest ranked card, or nil if there are no cards
func (h *HandAnalyzer) GetHighCard() *deck.Card {
	if len(h.cards) == 0 {
		return nil
	}

	return h.cards[len(h.cards)-1]
}

// ScoringCards returns the cards that contribute to the hand
// High card only scores the highest card, every other category scores all of the cards
func (h *HandAnalyzer) ScoringCards() []*deck.Card {
	switch h.hand {
	case None:
		return []*deck.Card{}
	case HighCard:
		return []*deck.Card{h.GetHighCard()}
	}

	scoring := make([]*deck.Card, len(h.cards))
	copy(scoring, h.cards)
	return scoring
}
