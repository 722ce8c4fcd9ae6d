package player

import (
	"euchre/internal/engine"
)

// Player is a decision-making seat at the table. Each method receives a
// snapshot of the visible state plus the options the protocol allows right
// now, and must return one of them. The driver rejects anything else.
type Player interface {
	Name() string

	// ChooseBid picks one of the offered bidding actions. It is consulted
	// in both bidding rounds and for the dealer's swap decision.
	ChooseBid(obs engine.Observation, actions []engine.Action) (engine.Action, error)

	// ChooseSuit names trump from the callable suits during round two.
	ChooseSuit(obs engine.Observation, suits []engine.Suit) (engine.Suit, error)

	// ChooseDiscard picks the card the dealer swaps out for the up-card.
	ChooseDiscard(obs engine.Observation, cards []engine.Card) (engine.Card, error)

	// ChooseCard picks the card to lay into the current trick.
	ChooseCard(obs engine.Observation, legal []engine.Card) (engine.Card, error)
}

// Factory builds a player for a seat. Used by the match runner to fill the
// table from configuration.
type Factory func(seat int) Player
