package engine

import (
	"fmt"
	"math/rand"
)

const (
	deckSize = 24
	handSize = 5
	numSeats = 4
)

// Deck holds the cards not yet dealt.
type Deck struct {
	cards []Card
}

// NewDeck returns the full 24-card Euchre deck in canonical order.
func NewDeck() *Deck {
	cards := make([]Card, 0, deckSize)
	for s := Clubs; s <= Spades; s++ {
		for r := Nine; r <= Ace; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle permutes the deck in place. The permutation is fully determined by
// the state of rng, which makes deals reproducible from a seed.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes five cards per seat in round-robin order, one card to each
// seat per round, then one more as the up-card. Exactly three cards stay
// undealt. Dealing from a deck with fewer than 21 cards fails.
func (d *Deck) Deal() ([numSeats][]Card, Card, error) {
	var hands [numSeats][]Card
	if len(d.cards) < numSeats*handSize+1 {
		return hands, Card{}, fmt.Errorf("deal from %d cards: %w", len(d.cards), ErrInsufficientCards)
	}
	for i := range hands {
		hands[i] = make([]Card, 0, handSize)
	}
	for round := 0; round < handSize; round++ {
		for p := 0; p < numSeats; p++ {
			hands[p] = append(hands[p], d.pop())
		}
	}
	return hands, d.pop(), nil
}

func (d *Deck) pop() Card {
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
