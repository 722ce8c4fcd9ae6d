package engine

func isRed(s Suit) bool {
	return s == Diamonds || s == Hearts
}

// SameColor reports whether two suits share a color (♦♥ red, ♣♠ black).
func SameColor(a, b Suit) bool {
	return isRed(a) == isRed(b)
}

// OppositeSuit returns the other suit of the same color.
func OppositeSuit(s Suit) Suit {
	switch s {
	case Clubs:
		return Spades
	case Spades:
		return Clubs
	case Diamonds:
		return Hearts
	default:
		return Diamonds
	}
}

// IsRightBower reports whether c is the trump-suit jack, the highest card of
// the hand.
func IsRightBower(c Card, trump Suit) bool {
	return c.Rank == Jack && c.Suit == trump
}

// IsLeftBower reports whether c is the same-color off-suit jack, which plays
// as trump.
func IsLeftBower(c Card, trump Suit) bool {
	return c.Rank == Jack && c.Suit != trump && SameColor(c.Suit, trump)
}

// EffectiveSuit returns the suit a card counts as under the given trump: the
// left bower counts as trump, every other card as its printed suit.
func EffectiveSuit(c Card, trump *Suit) Suit {
	if trump != nil && IsLeftBower(c, *trump) {
		return *trump
	}
	return c.Suit
}
