package engine

// Observation is a read-only snapshot of hand-round and match state, the sole
// data handed to a decision-making player. Every slice and pointer is a copy;
// mutating a snapshot cannot touch the engine.
//
// Legality is deliberately not embedded here: PlayableCards on the engine is
// the authoritative source, and the driver layer derives its action masks
// from it together with State.
type Observation struct {
	State       int
	LastAction  Action
	LastData    string
	Seat        int
	Dealer      int
	Maker       int
	PlayerOrder []int
	Hands       [numSeats][]Card
	Trump       *Suit
	Upcard      *Card
	Downcard    *Card
	Discard     *Card
	Tricks      []Trick
	TricksTaken [2]int
	Points      [2]int
}

// CurrentTrick returns the trick in progress, or an empty trick between
// tricks.
func (o Observation) CurrentTrick() Trick {
	done := o.TricksTaken[0] + o.TricksTaken[1]
	if len(o.Tricks) > done {
		return o.Tricks[len(o.Tricks)-1]
	}
	return Trick{}
}

// Observation snapshots the engine's state. Tricks holds the completed tricks
// followed by the trick in progress, when one is.
func (e *Engine) Observation() Observation {
	obs := Observation{
		Seat:        e.seat,
		Dealer:      e.dealer,
		Maker:       e.maker,
		PlayerOrder: append([]int(nil), e.order...),
		Trump:       copySuit(e.trump),
		Upcard:      copyCard(e.upcard),
		Downcard:    copyCard(e.downcard),
		Discard:     copyCard(e.discard),
		TricksTaken: e.tricksTaken,
		Points:      e.points,
	}
	for i := range e.hands {
		obs.Hands[i] = append([]Card(nil), e.hands[i]...)
	}
	for _, t := range e.finished {
		obs.Tricks = append(obs.Tricks, copyTrick(t))
	}
	if len(e.current.Plays) > 0 {
		obs.Tricks = append(obs.Tricks, copyTrick(e.current))
	}
	return obs
}

func copyTrick(t Trick) Trick {
	return Trick{Plays: append([]Play(nil), t.Plays...)}
}

func copySuit(s *Suit) *Suit {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyCard(c *Card) *Card {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
