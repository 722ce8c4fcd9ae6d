package engine

import (
	"errors"
	"testing"
)

func allCards() []Card {
	cards := make([]Card, 0, deckSize)
	for s := Clubs; s <= Spades; s++ {
		for r := Nine; r <= Ace; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// Within a trick only trump and the led suit can win; those cards must carry
// pairwise distinct strengths for every trump/lead combination, with the right
// bower on top and the left bower just under it.
func TestTableOrdersContenders(t *testing.T) {
	for trump := Clubs; trump <= Spades; trump++ {
		for lead := Clubs; lead <= Spades; lead++ {
			tr, ld := trump, lead
			table := NewCardTable(&tr, &ld)

			seen := map[int]Card{}
			for _, c := range allCards() {
				if EffectiveSuit(c, &tr) != tr && c.Suit != ld {
					continue
				}
				v := table.strength[c]
				if prev, dup := seen[v]; dup {
					t.Fatalf("trump %s lead %s: %s and %s both at strength %d", tr, ld, prev, c, v)
				}
				seen[v] = c
			}

			right := card(Jack, tr)
			left := card(Jack, OppositeSuit(tr))
			if table.strength[right] != rightBowerStrength {
				t.Fatalf("trump %s: right bower strength %d", tr, table.strength[right])
			}
			if table.strength[left] != leftBowerStrength {
				t.Fatalf("trump %s: left bower strength %d", tr, table.strength[left])
			}
			for _, c := range allCards() {
				if c != right && table.strength[c] >= table.strength[right] {
					t.Fatalf("trump %s lead %s: %s outranks the right bower", tr, ld, c)
				}
			}
		}
	}
}

func TestTableBonuses(t *testing.T) {
	trump, lead := Spades, Hearts
	table := NewCardTable(&trump, &lead)

	if got := table.strength[card(Nine, Spades)]; got != int(Nine)+trumpBonus {
		t.Fatalf("trump nine strength = %d", got)
	}
	if got := table.strength[card(Nine, Hearts)]; got != int(Nine)+leadBonus {
		t.Fatalf("lead nine strength = %d", got)
	}
	if got := table.strength[card(Ace, Diamonds)]; got != int(Ace) {
		t.Fatalf("off-suit ace strength = %d", got)
	}

	// When the trump suit is led there is no separate lead bonus.
	sameLead := Spades
	table = NewCardTable(&trump, &sameLead)
	if got := table.strength[card(Nine, Spades)]; got != int(Nine)+trumpBonus {
		t.Fatalf("trump-led nine strength = %d", got)
	}
}

func TestTableWithoutTrump(t *testing.T) {
	table := NewCardTable(nil, nil)
	if table.Compare(card(Jack, Spades), card(Ace, Clubs)) >= 0 {
		t.Fatalf("without trump a jack must not beat an ace")
	}
	if table.Compare(card(Ten, Hearts), card(Ten, Diamonds)) != 0 {
		t.Fatalf("without bonuses equal ranks must tie")
	}
}

func TestBestOfAndWorstOfTieBreaks(t *testing.T) {
	table := NewCardTable(nil, nil)
	tied := []Card{card(Nine, Clubs), card(Nine, Diamonds)}

	best, err := table.BestOf(tied)
	if err != nil {
		t.Fatalf("BestOf: %v", err)
	}
	if best != card(Nine, Clubs) {
		t.Fatalf("BestOf tie = %s, want the first seen", best)
	}

	worst, err := table.WorstOf(tied)
	if err != nil {
		t.Fatalf("WorstOf: %v", err)
	}
	if worst != card(Nine, Diamonds) {
		t.Fatalf("WorstOf tie = %s, want the last seen", worst)
	}

	if _, err := table.BestOf(nil); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("BestOf(nil): %v, want ErrEmptyCollection", err)
	}
	if _, err := table.WorstOf(nil); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("WorstOf(nil): %v, want ErrEmptyCollection", err)
	}
}

func TestBestOfPicksTheTrickTaker(t *testing.T) {
	trump, lead := Hearts, Clubs
	table := NewCardTable(&trump, &lead)
	cards := []Card{card(Ace, Clubs), card(Nine, Hearts), card(Ace, Spades)}
	best, err := table.BestOf(cards)
	if err != nil {
		t.Fatalf("BestOf: %v", err)
	}
	if best != card(Nine, Hearts) {
		t.Fatalf("best = %s, want the low trump", best)
	}

	worst, err := table.WorstOf(cards)
	if err != nil {
		t.Fatalf("WorstOf: %v", err)
	}
	if worst != card(Ace, Spades) {
		t.Fatalf("worst = %s, want the off-suit ace", worst)
	}
}
