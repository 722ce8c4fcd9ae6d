package engine

import (
	"fmt"
	"math/rand"
)

const winningScore = 10

// Engine owns one hand-round's mutable state and every rule that touches it.
// It knows nothing about protocol sequencing; the Game state machine decides
// when each operation may run. Operations validate before they mutate, so a
// returned error always leaves the engine untouched.
//
// The engine is not safe for concurrent use; an embedding process must
// serialize calls per instance.
type Engine struct {
	rng *rand.Rand

	points [2]int
	dealer int

	hands       [numSeats][]Card
	finished    []Trick
	current     Trick
	trump       *Suit
	maker       int
	upcard      *Card
	downcard    *Card
	discard     *Card
	alone       []int
	tricksTaken [2]int
	order       []int
	seat        int
	table       *CardTable
}

// NewEngine creates an engine owning the given RNG. The RNG is never shared
// or global: seeding it makes every deal of this engine reproducible.
func NewEngine(rng *rand.Rand) *Engine {
	e := &Engine{rng: rng}
	e.clear()
	return e
}

// clear resets all hand-round state. Match state (points, dealer) survives.
func (e *Engine) clear() {
	e.hands = [numSeats][]Card{}
	e.finished = nil
	e.current = Trick{}
	e.trump = nil
	e.maker = NoMaker
	e.upcard = nil
	e.downcard = nil
	e.discard = nil
	e.alone = nil
	e.tricksTaken = [2]int{}
	e.SetOrder(e.dealer + 1)
	e.table = NewCardTable(nil, nil)
}

// StartHand resets the hand-round state and deals from a freshly shuffled
// deck. The up-card is turned; three cards stay hidden.
func (e *Engine) StartHand() error {
	e.clear()
	deck := NewDeck()
	deck.Shuffle(e.rng)
	hands, up, err := deck.Deal()
	if err != nil {
		return err
	}
	e.hands = hands
	e.upcard = &up
	return nil
}

// Seat returns the seat whose turn it is.
func (e *Engine) Seat() int { return e.seat }

// SetSeat moves the turn to the given seat.
func (e *Engine) SetSeat(seat int) {
	e.seat = ((seat % numSeats) + numSeats) % numSeats
}

// Dealer returns the dealer's seat.
func (e *Engine) Dealer() int { return e.dealer }

// Maker returns the seat that declared trump, or NoMaker.
func (e *Engine) Maker() int { return e.maker }

// Trump returns the declared trump suit, or nil while undeclared.
func (e *Engine) Trump() *Suit { return copySuit(e.trump) }

// Upcard returns the card turned face up after the deal, if still up.
func (e *Engine) Upcard() *Card { return copyCard(e.upcard) }

// Downcard returns the turned-down card, once round-one bidding is exhausted.
func (e *Engine) Downcard() *Card { return copyCard(e.downcard) }

// Discard returns the card the dealer swapped out, if any.
func (e *Engine) Discard() *Card { return copyCard(e.discard) }

// Points returns the cumulative team points.
func (e *Engine) Points() [2]int { return e.points }

// TricksTaken returns the per-team trick counters for the current hand.
func (e *Engine) TricksTaken() [2]int { return e.tricksTaken }

// TricksPlayed returns the number of completed tricks this hand.
func (e *Engine) TricksPlayed() int { return len(e.finished) }

// Hand returns a copy of a seat's current cards.
func (e *Engine) Hand(seat int) []Card {
	return append([]Card(nil), e.hands[((seat%numSeats)+numSeats)%numSeats]...)
}

// PlayerOrder returns a copy of the active turn order.
func (e *Engine) PlayerOrder() []int {
	return append([]int(nil), e.order...)
}

// CurrentTrick returns a copy of the trick in progress.
func (e *Engine) CurrentTrick() Trick {
	return copyTrick(e.current)
}

// OrderUp declares the up-card's suit as trump with the current seat as
// maker.
func (e *Engine) OrderUp() error {
	if e.upcard == nil {
		return fmt.Errorf("order up with no up-card: %w", ErrIllegalAction)
	}
	s := e.upcard.Suit
	e.trump = &s
	e.maker = e.seat
	return nil
}

// SetTrump names trump directly during round-two bidding. Naming the suit of
// the turned-down card is against the rules.
func (e *Engine) SetTrump(suit Suit) error {
	if e.downcard != nil && suit == e.downcard.Suit {
		return fmt.Errorf("cannot declare %s, same suit as down-card %s: %w", suit, e.downcard, ErrInvalidTrump)
	}
	s := suit
	e.trump = &s
	e.maker = e.seat
	return nil
}

// TurnDownCard flips the up-card face down, ending round-one bidding.
func (e *Engine) TurnDownCard() {
	e.downcard = e.upcard
	e.upcard = nil
}

// PickUp swaps the given card out of the dealer's hand for the up-card. The
// swapped-out card is recorded as the discard and never enters play.
func (e *Engine) PickUp(card Card) error {
	if e.upcard == nil {
		return fmt.Errorf("pick up with no up-card: %w", ErrIllegalAction)
	}
	hand := e.hands[e.dealer]
	idx, ok := indexOfCard(hand, card)
	if !ok {
		return fmt.Errorf("discard %s is not in the dealer's hand: %w", card, ErrIllegalPlay)
	}
	e.hands[e.dealer] = append(hand[:idx], hand[idx+1:]...)
	c := card
	e.discard = &c
	e.hands[e.dealer] = append(e.hands[e.dealer], *e.upcard)
	return nil
}

// GoAlone marks the current seat as playing a lone hand and sits their
// partner out, shrinking the active order to three seats.
func (e *Engine) GoAlone() {
	e.alone = append(e.alone, e.seat)
	e.order = removeSeat(e.order, PartnerOf(e.seat))
}

// IsAlone reports whether the seat declared a lone hand.
func (e *Engine) IsAlone(seat int) bool {
	for _, a := range e.alone {
		if a == seat {
			return true
		}
	}
	return false
}

// IsTeamAlone reports whether either member of the team declared a lone hand.
func (e *Engine) IsTeamAlone(team int) bool {
	for _, a := range e.alone {
		if TeamOf(a) == team {
			return true
		}
	}
	return false
}

// SetOrder rotates the active player order to begin at the given seat. Seats
// sitting out for a lone hand stay out. The first seat of the order becomes
// the current seat.
func (e *Engine) SetOrder(startAt int) {
	order := make([]int, 0, numSeats)
	for i := 0; i < numSeats; i++ {
		s := ((startAt+i)%numSeats + numSeats) % numSeats
		if !e.sitsOut(s) {
			order = append(order, s)
		}
	}
	e.order = order
	e.seat = order[0]
}

func (e *Engine) sitsOut(seat int) bool {
	for _, a := range e.alone {
		if PartnerOf(a) == seat {
			return true
		}
	}
	return false
}

// NextPlayer advances the current seat one position within the active order,
// wrapping around.
func (e *Engine) NextPlayer() {
	for i, s := range e.order {
		if s == e.seat {
			e.seat = e.order[(i+1)%len(e.order)]
			return
		}
	}
	e.seat = e.order[0]
}

// PlayableCards returns the legal plays for the current seat: the whole hand
// on a fresh trick, cards matching the led card's effective suit otherwise,
// or again the whole hand when the seat cannot follow.
func (e *Engine) PlayableCards() []Card {
	if e.IsHandFinished() {
		return nil
	}
	hand := e.hands[e.seat]
	if len(e.current.Plays) == 0 {
		return append([]Card(nil), hand...)
	}
	lead := EffectiveSuit(e.current.Plays[0].Card, e.trump)
	var playable []Card
	for _, c := range hand {
		if EffectiveSuit(c, e.trump) == lead {
			playable = append(playable, c)
		}
	}
	if len(playable) > 0 {
		return playable
	}
	return append([]Card(nil), hand...)
}

// PlayCard validates and lays the current seat's card into the active trick.
// The first card of a trick fixes the lead suit and rebuilds the ranking
// table for trick resolution.
func (e *Engine) PlayCard(card Card) error {
	hand := e.hands[e.seat]
	idx, ok := indexOfCard(hand, card)
	if !ok {
		return fmt.Errorf("card %s is not in seat %d's hand: %w", card, e.seat, ErrIllegalPlay)
	}
	if _, legal := indexOfCard(e.PlayableCards(), card); !legal {
		return fmt.Errorf("card %s is not a legal play: %w", card, ErrIllegalPlay)
	}
	if len(e.current.Plays) == 0 {
		lead := card.Suit
		e.table = NewCardTable(e.trump, &lead)
	}
	e.hands[e.seat] = append(hand[:idx], hand[idx+1:]...)
	e.current.Plays = append(e.current.Plays, Play{Seat: e.seat, Card: card})
	return nil
}

// TrickWinner resolves the trick in progress using the table built when its
// first card was led. The first card seen with strictly greater strength
// becomes the running winner; the table's total order rules out ties.
func (e *Engine) TrickWinner() (int, error) {
	if len(e.current.Plays) == 0 {
		return 0, fmt.Errorf("winner of an empty trick: %w", ErrEmptyCollection)
	}
	best := e.current.Plays[0]
	for _, p := range e.current.Plays[1:] {
		if e.table.Compare(best.Card, p.Card) < 0 {
			best = p
		}
	}
	return best.Seat, nil
}

// FinishTrick freezes the active trick onto the completed list and opens a
// fresh one.
func (e *Engine) FinishTrick() {
	e.finished = append(e.finished, e.current)
	e.current = Trick{}
}

// AddTrickTaken credits a completed trick to the team.
func (e *Engine) AddTrickTaken(team int) {
	e.tricksTaken[team]++
}

// IsTrickFinished reports whether the active trick holds one card per active
// player.
func (e *Engine) IsTrickFinished() bool {
	return len(e.current.Plays) > 0 && len(e.current.Plays) == len(e.order)
}

// IsHandFinished reports whether all five tricks are complete.
func (e *Engine) IsHandFinished() bool {
	return len(e.finished) >= handSize
}

// ScoreHand awards the completed hand's points: 2 to the defenders for a
// euchre (4 when defending alone), 1 to the makers for three or four tricks,
// 2 for a five-trick sweep (4 when alone).
func (e *Engine) ScoreHand() {
	makers := TeamOf(e.maker)
	defenders := (makers + 1) % 2

	switch {
	case e.tricksTaken[defenders] > e.tricksTaken[makers]:
		if e.IsTeamAlone(defenders) {
			e.points[defenders] += 4
		} else {
			e.points[defenders] += 2
		}
	case e.tricksTaken[makers] < handSize:
		e.points[makers]++
	default:
		if e.IsTeamAlone(makers) {
			e.points[makers] += 4
		} else {
			e.points[makers] += 2
		}
	}
}

// IsGameOver reports whether either team reached the winning score.
func (e *Engine) IsGameOver() bool {
	return e.points[0] >= winningScore || e.points[1] >= winningScore
}

// IncDealer rotates the deal to the next seat.
func (e *Engine) IncDealer() {
	e.dealer = (e.dealer + 1) % numSeats
}

func indexOfCard(cards []Card, target Card) (int, bool) {
	for i, c := range cards {
		if c == target {
			return i, true
		}
	}
	return -1, false
}

func removeSeat(order []int, seat int) []int {
	out := make([]int, 0, len(order))
	for _, s := range order {
		if s != seat {
			out = append(out, s)
		}
	}
	return out
}
