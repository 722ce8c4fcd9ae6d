package player

import (
	"fmt"
	"math/rand"

	"euchre/internal/engine"
)

// RandomBot picks uniformly among whatever it is offered. It is the baseline
// opponent and a cheap way to exercise every protocol path.
type RandomBot struct {
	name string
	rng  *rand.Rand
}

// NewRandomBot returns a random player with its own seeded RNG.
func NewRandomBot(seat int, seed int64) *RandomBot {
	return &RandomBot{
		name: fmt.Sprintf("random-%d", seat),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (b *RandomBot) Name() string { return b.name }

func (b *RandomBot) ChooseBid(_ engine.Observation, actions []engine.Action) (engine.Action, error) {
	if len(actions) == 0 {
		return "", fmt.Errorf("no actions offered: %w", engine.ErrEmptyCollection)
	}
	return actions[b.rng.Intn(len(actions))], nil
}

func (b *RandomBot) ChooseSuit(_ engine.Observation, suits []engine.Suit) (engine.Suit, error) {
	if len(suits) == 0 {
		return 0, fmt.Errorf("no suits offered: %w", engine.ErrEmptyCollection)
	}
	return suits[b.rng.Intn(len(suits))], nil
}

func (b *RandomBot) ChooseDiscard(_ engine.Observation, cards []engine.Card) (engine.Card, error) {
	if len(cards) == 0 {
		return engine.Card{}, fmt.Errorf("no cards offered: %w", engine.ErrEmptyCollection)
	}
	return cards[b.rng.Intn(len(cards))], nil
}

func (b *RandomBot) ChooseCard(_ engine.Observation, legal []engine.Card) (engine.Card, error) {
	if len(legal) == 0 {
		return engine.Card{}, fmt.Errorf("no legal plays offered: %w", engine.ErrEmptyCollection)
	}
	return legal[b.rng.Intn(len(legal))], nil
}
