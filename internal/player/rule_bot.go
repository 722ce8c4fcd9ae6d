package player

import (
	"fmt"

	"euchre/internal/engine"
)

// RuleBot plays simple fixed heuristics: it never bids, calls its longest
// suit when forced, sheds its weakest cards, and wins tricks as cheaply as it
// can.
type RuleBot struct {
	name string
}

// NewRuleBot returns a heuristic player for the seat.
func NewRuleBot(seat int) *RuleBot {
	return &RuleBot{name: fmt.Sprintf("rule-%d", seat)}
}

func (b *RuleBot) Name() string { return b.name }

// ChooseBid passes or leaves the up-card turned down whenever allowed.
func (b *RuleBot) ChooseBid(_ engine.Observation, actions []engine.Action) (engine.Action, error) {
	if len(actions) == 0 {
		return "", fmt.Errorf("no actions offered: %w", engine.ErrEmptyCollection)
	}
	for _, a := range actions {
		if a == engine.ActionPass || a == engine.ActionDown {
			return a, nil
		}
	}
	return actions[0], nil
}

// ChooseSuit calls the offered suit the hand holds the most cards of,
// counting the same-color jack toward its candidate trump.
func (b *RuleBot) ChooseSuit(obs engine.Observation, suits []engine.Suit) (engine.Suit, error) {
	if len(suits) == 0 {
		return 0, fmt.Errorf("no suits offered: %w", engine.ErrEmptyCollection)
	}
	hand := obs.Hands[obs.Seat]
	best := suits[0]
	bestCount := -1
	for _, s := range suits {
		trump := s
		count := 0
		for _, c := range hand {
			if engine.EffectiveSuit(c, &trump) == s {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = s, count
		}
	}
	return best, nil
}

// ChooseDiscard sheds the weakest card under the declared trump.
func (b *RuleBot) ChooseDiscard(obs engine.Observation, cards []engine.Card) (engine.Card, error) {
	table := engine.NewCardTable(obs.Trump, nil)
	return table.WorstOf(cards)
}

// ChooseCard leads its strongest card. Following, it plays the cheapest card
// that still heads the trick, or sheds its weakest when it cannot win.
func (b *RuleBot) ChooseCard(obs engine.Observation, legal []engine.Card) (engine.Card, error) {
	if len(legal) == 0 {
		return engine.Card{}, fmt.Errorf("no legal plays offered: %w", engine.ErrEmptyCollection)
	}
	trick := obs.CurrentTrick()
	if len(trick.Plays) == 0 {
		table := engine.NewCardTable(obs.Trump, nil)
		return table.BestOf(legal)
	}

	lead := trick.Plays[0].Card.Suit
	table := engine.NewCardTable(obs.Trump, &lead)
	heading, err := table.BestOf(trickCards(trick))
	if err != nil {
		return engine.Card{}, err
	}

	var winners []engine.Card
	for _, c := range legal {
		if table.Compare(c, heading) > 0 {
			winners = append(winners, c)
		}
	}
	if len(winners) > 0 {
		return table.WorstOf(winners)
	}
	return table.WorstOf(legal)
}

func trickCards(t engine.Trick) []engine.Card {
	cards := make([]engine.Card, 0, len(t.Plays))
	for _, p := range t.Plays {
		cards = append(cards, p.Card)
	}
	return cards
}
