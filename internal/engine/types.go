//go:generate stringer -type=State,Suit,Rank -linecomment

package engine

// Suit represents a card suit.
type Suit int

const (
	Clubs    Suit = iota // ♣
	Diamonds             // ♦
	Hearts               // ♥
	Spades               // ♠
)

// Rank represents a card rank. The enum value is the card's base trick
// strength (9 lowest, ace highest).
type Rank int

const (
	Nine  Rank = iota // 9
	Ten               // 10
	Jack              // J
	Queen             // Q
	King              // K
	Ace               // A
)

// Card represents a playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Play is one card laid into a trick by a seat.
type Play struct {
	Seat int
	Card Card
}

// Trick is an ordered sequence of plays. It is complete when its length
// equals the number of active players for the hand (4, or 3 during a lone
// hand).
type Trick struct {
	Plays []Play
}

// State identifies a protocol phase of the Game state machine. The numeric
// value is the phase id exposed in observations.
type State int

const (
	StatePreStart       State = iota // pre-start
	StateBidRound1                   // round-1 bid
	StateDealerSwap                  // dealer swap
	StateBidRound2                   // round-2 bid
	StateDealerMustCall              // dealer must call
	StatePlay                        // trick play
	StateTrickDone                   // trick scored
	StateHandDone                    // hand scored
	StateGameOver                    // game over
)

// Action is an input verb accepted by Game.Input.
type Action string

const (
	ActionStart    Action = "start"
	ActionPass     Action = "pass"
	ActionOrder    Action = "order"
	ActionAlone    Action = "alone"
	ActionDown     Action = "down"
	ActionUp       Action = "up"
	ActionMake     Action = "make"
	ActionPlay     Action = "play"
	ActionContinue Action = "continue"
)

// NoMaker marks an undeclared maker seat.
const NoMaker = -1

// TeamOf returns the team (0 or 1) a seat belongs to.
func TeamOf(seat int) int {
	return seat % 2
}

// PartnerOf returns the seat across the table.
func PartnerOf(seat int) int {
	return (seat + 2) % 4
}
