package engine

import "fmt"

const (
	trumpBonus         = 12
	leadBonus          = 6
	leftBowerStrength  = 18
	rightBowerStrength = 19
)

// CardTable assigns a strength to each of the 24 cards for one (trump, lead)
// context. With trump set the strengths form a strict total order:
// right bower > left bower > trump by rank > lead suit by rank > rest by
// rank. A trick rebuilds the table the moment its first card is played.
type CardTable struct {
	strength map[Card]int
}

// NewCardTable builds the ranking for the given trump and lead suits. With no
// trump, plain rank order applies and no bonuses or bower overrides exist.
func NewCardTable(trump, lead *Suit) *CardTable {
	t := &CardTable{strength: make(map[Card]int, 24)}
	for s := Clubs; s <= Spades; s++ {
		for r := Nine; r <= Ace; r++ {
			v := int(r)
			if trump != nil {
				if s == *trump {
					v += trumpBonus
				}
				if lead != nil && *lead != *trump && s == *lead {
					v += leadBonus
				}
			}
			t.strength[Card{Rank: r, Suit: s}] = v
		}
	}
	if trump != nil {
		t.strength[Card{Rank: Jack, Suit: *trump}] = rightBowerStrength
		t.strength[Card{Rank: Jack, Suit: OppositeSuit(*trump)}] = leftBowerStrength
	}
	return t
}

// Compare returns the strength difference between a and b; positive means a
// is the stronger card.
func (t *CardTable) Compare(a, b Card) int {
	return t.strength[a] - t.strength[b]
}

// BestOf returns the strongest card of the collection. Ties resolve to the
// first-seen element.
func (t *CardTable) BestOf(cards []Card) (Card, error) {
	if len(cards) == 0 {
		return Card{}, fmt.Errorf("best of nothing: %w", ErrEmptyCollection)
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if t.Compare(best, c) < 0 {
			best = c
		}
	}
	return best, nil
}

// WorstOf returns the weakest card of the collection. Ties resolve to the
// last-seen element.
func (t *CardTable) WorstOf(cards []Card) (Card, error) {
	if len(cards) == 0 {
		return Card{}, fmt.Errorf("worst of nothing: %w", ErrEmptyCollection)
	}
	worst := cards[0]
	for _, c := range cards[1:] {
		if t.Compare(worst, c) >= 0 {
			worst = c
		}
	}
	return worst, nil
}
