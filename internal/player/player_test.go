package player

import (
	"errors"
	"testing"

	"euchre/internal/engine"
)

func c(r engine.Rank, s engine.Suit) engine.Card {
	return engine.Card{Rank: r, Suit: s}
}

func suitPtr(s engine.Suit) *engine.Suit { return &s }

func obsWithTrick(trump *engine.Suit, plays ...engine.Play) engine.Observation {
	obs := engine.Observation{Trump: trump}
	if len(plays) > 0 {
		obs.Tricks = []engine.Trick{{Plays: plays}}
	}
	return obs
}

func TestRandomBotPicksFromOffer(t *testing.T) {
	b := NewRandomBot(0, 11)
	actions := []engine.Action{engine.ActionPass, engine.ActionOrder, engine.ActionAlone}
	for i := 0; i < 20; i++ {
		got, err := b.ChooseBid(engine.Observation{}, actions)
		if err != nil {
			t.Fatalf("ChooseBid: %v", err)
		}
		found := false
		for _, a := range actions {
			if a == got {
				found = true
			}
		}
		if !found {
			t.Fatalf("ChooseBid returned %q, not among the offer", got)
		}
	}

	cards := []engine.Card{c(engine.Nine, engine.Clubs), c(engine.Ace, engine.Hearts)}
	for i := 0; i < 20; i++ {
		got, err := b.ChooseCard(engine.Observation{}, cards)
		if err != nil {
			t.Fatalf("ChooseCard: %v", err)
		}
		if got != cards[0] && got != cards[1] {
			t.Fatalf("ChooseCard returned %s, not among the offer", got)
		}
	}
}

func TestRandomBotRejectsEmptyOffer(t *testing.T) {
	b := NewRandomBot(1, 3)
	if _, err := b.ChooseBid(engine.Observation{}, nil); !errors.Is(err, engine.ErrEmptyCollection) {
		t.Fatalf("ChooseBid(nil): %v, want ErrEmptyCollection", err)
	}
	if _, err := b.ChooseSuit(engine.Observation{}, nil); !errors.Is(err, engine.ErrEmptyCollection) {
		t.Fatalf("ChooseSuit(nil): %v, want ErrEmptyCollection", err)
	}
	if _, err := b.ChooseCard(engine.Observation{}, nil); !errors.Is(err, engine.ErrEmptyCollection) {
		t.Fatalf("ChooseCard(nil): %v, want ErrEmptyCollection", err)
	}
}

func TestRuleBotPrefersNotToBid(t *testing.T) {
	b := NewRuleBot(2)
	cases := []struct {
		offer []engine.Action
		want  engine.Action
	}{
		{[]engine.Action{engine.ActionPass, engine.ActionOrder, engine.ActionAlone}, engine.ActionPass},
		{[]engine.Action{engine.ActionDown, engine.ActionUp}, engine.ActionDown},
		{[]engine.Action{engine.ActionMake, engine.ActionAlone}, engine.ActionMake},
	}
	for _, tc := range cases {
		got, err := b.ChooseBid(engine.Observation{}, tc.offer)
		if err != nil {
			t.Fatalf("ChooseBid(%v): %v", tc.offer, err)
		}
		if got != tc.want {
			t.Fatalf("ChooseBid(%v) = %q, want %q", tc.offer, got, tc.want)
		}
	}
}

func TestRuleBotCallsLongestSuit(t *testing.T) {
	b := NewRuleBot(0)
	obs := engine.Observation{Seat: 0}
	obs.Hands[0] = []engine.Card{
		c(engine.Nine, engine.Hearts),
		c(engine.Ten, engine.Hearts),
		c(engine.Jack, engine.Diamonds), // left bower if hearts are trump
		c(engine.Ace, engine.Clubs),
		c(engine.Nine, engine.Spades),
	}
	got, err := b.ChooseSuit(obs, []engine.Suit{engine.Diamonds, engine.Hearts, engine.Spades})
	if err != nil {
		t.Fatalf("ChooseSuit: %v", err)
	}
	if got != engine.Hearts {
		t.Fatalf("ChooseSuit = %s, want ♥ (three cards counting the jack)", got)
	}
}

func TestRuleBotDiscardsWeakest(t *testing.T) {
	b := NewRuleBot(0)
	obs := engine.Observation{Trump: suitPtr(engine.Hearts)}
	got, err := b.ChooseDiscard(obs, []engine.Card{
		c(engine.Jack, engine.Diamonds), // left bower, keep
		c(engine.Nine, engine.Spades),
		c(engine.Ace, engine.Clubs),
		c(engine.Nine, engine.Hearts),
	})
	if err != nil {
		t.Fatalf("ChooseDiscard: %v", err)
	}
	if got != c(engine.Nine, engine.Spades) {
		t.Fatalf("ChooseDiscard = %s, want 9♠", got)
	}
}

func TestRuleBotLeadsStrongest(t *testing.T) {
	b := NewRuleBot(0)
	obs := obsWithTrick(suitPtr(engine.Hearts))
	got, err := b.ChooseCard(obs, []engine.Card{
		c(engine.Nine, engine.Spades),
		c(engine.Ace, engine.Clubs),
		c(engine.Nine, engine.Hearts),
	})
	if err != nil {
		t.Fatalf("ChooseCard: %v", err)
	}
	if got != c(engine.Nine, engine.Hearts) {
		t.Fatalf("lead = %s, want the trump nine", got)
	}
}

func TestRuleBotWinsCheaply(t *testing.T) {
	b := NewRuleBot(0)
	obs := obsWithTrick(suitPtr(engine.Spades),
		engine.Play{Seat: 0, Card: c(engine.Ten, engine.Diamonds)},
	)
	got, err := b.ChooseCard(obs, []engine.Card{
		c(engine.Nine, engine.Diamonds),
		c(engine.Queen, engine.Diamonds),
		c(engine.King, engine.Diamonds),
	})
	if err != nil {
		t.Fatalf("ChooseCard: %v", err)
	}
	if got != c(engine.Queen, engine.Diamonds) {
		t.Fatalf("follow = %s, want the cheapest winner Q♦", got)
	}
}

func TestRuleBotShedsWhenBeaten(t *testing.T) {
	b := NewRuleBot(0)
	obs := obsWithTrick(suitPtr(engine.Spades),
		engine.Play{Seat: 0, Card: c(engine.Ace, engine.Diamonds)},
	)
	got, err := b.ChooseCard(obs, []engine.Card{
		c(engine.Nine, engine.Diamonds),
		c(engine.King, engine.Diamonds),
	})
	if err != nil {
		t.Fatalf("ChooseCard: %v", err)
	}
	if got != c(engine.Nine, engine.Diamonds) {
		t.Fatalf("shed = %s, want 9♦", got)
	}
}
