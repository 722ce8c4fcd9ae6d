package engine

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Game sequences the bidding and trick-play protocol for one table. It owns
// no card state: every rule lives in the Engine, the Game only validates the
// incoming action against the current state's accepted set and invokes engine
// operations. A rejected action leaves state unchanged.
type Game struct {
	engine *Engine
	state  State
	log    zerolog.Logger

	lastAction Action
	lastData   string
}

// NewGame wraps an engine in the protocol state machine. The logger only
// reports accepted transitions and scoring; pass zerolog.Nop() to silence it.
func NewGame(engine *Engine, log zerolog.Logger) *Game {
	return &Game{engine: engine, state: StatePreStart, log: log}
}

// State returns the current protocol state.
func (g *Game) State() State { return g.state }

// Engine exposes the engine for legality queries such as PlayableCards.
func (g *Game) Engine() *Engine { return g.engine }

// Observation composes the protocol state and last accepted action onto the
// engine's snapshot.
func (g *Game) Observation() Observation {
	obs := g.engine.Observation()
	obs.State = int(g.state)
	obs.LastAction = g.lastAction
	obs.LastData = g.lastData
	return obs
}

// Input validates the action against the current state and advances the
// protocol. The payload carries a Card for up/play and a Suit for make and
// for alone in the second bidding round; every other action takes nil. Only
// play and make payloads are echoed through the observation's last-data
// field.
func (g *Game) Input(action Action, data any) error {
	var err error
	switch g.state {
	case StatePreStart:
		err = g.inputPreStart(action)
	case StateBidRound1:
		err = g.inputBidRound1(action)
	case StateDealerSwap:
		err = g.inputDealerSwap(action, data)
	case StateBidRound2:
		err = g.inputBidRound2(action, data)
	case StateDealerMustCall:
		err = g.inputDealerMustCall(action, data)
	case StatePlay:
		err = g.inputPlay(action, data)
	case StateTrickDone:
		err = g.inputTrickDone(action)
	case StateHandDone:
		err = g.inputHandDone(action)
	default:
		err = g.reject(action)
	}
	if err != nil {
		return err
	}

	g.lastAction = action
	switch action {
	case ActionPlay, ActionMake:
		g.lastData = fmt.Sprint(data)
	default:
		g.lastData = ""
	}
	g.log.Debug().Str("action", string(action)).Stringer("state", g.state).Int("seat", g.engine.Seat()).Msg("input accepted")
	return nil
}

func (g *Game) reject(action Action) error {
	return fmt.Errorf("action %q not accepted in state %s: %w", action, g.state, ErrIllegalAction)
}

func (g *Game) inputPreStart(action Action) error {
	if action != ActionStart {
		return g.reject(action)
	}
	return g.enterBidRound1()
}

// enterBidRound1 shuffles and deals a new hand; bidding opens left of the
// dealer.
func (g *Game) enterBidRound1() error {
	if err := g.engine.StartHand(); err != nil {
		return err
	}
	g.state = StateBidRound1
	return nil
}

// inputBidRound1 lets each seat left of the dealer pass, order the up-card,
// or order it and go alone. Once passing wraps around to the dealer the card
// is turned down and round two opens.
func (g *Game) inputBidRound1(action Action) error {
	switch action {
	case ActionPass:
		g.engine.NextPlayer()
		if g.engine.Seat() == g.engine.Dealer() {
			g.engine.TurnDownCard()
			g.state = StateBidRound2
		}
	case ActionOrder:
		if err := g.engine.OrderUp(); err != nil {
			return err
		}
		g.enterDealerSwap()
	case ActionAlone:
		if err := g.engine.OrderUp(); err != nil {
			return err
		}
		g.engine.GoAlone()
		g.enterDealerSwap()
	default:
		return g.reject(action)
	}
	return nil
}

func (g *Game) enterDealerSwap() {
	g.engine.SetSeat(g.engine.Dealer())
	g.state = StateDealerSwap
}

// inputDealerSwap lets the dealer swap a card for the ordered-up card or
// leave their hand as dealt. Either way trick play begins left of the dealer.
func (g *Game) inputDealerSwap(action Action, data any) error {
	switch action {
	case ActionDown:
	case ActionUp:
		card, err := cardData(data)
		if err != nil {
			return err
		}
		if err := g.engine.PickUp(card); err != nil {
			return err
		}
	default:
		return g.reject(action)
	}
	g.enterPlay()
	return nil
}

// enterPlay rotates the active order to start left of the dealer and begins
// trick play.
func (g *Game) enterPlay() {
	g.engine.SetOrder(g.engine.Dealer() + 1)
	g.state = StatePlay
}

// inputBidRound2 lets each seat, dealer first, name any trump but the
// down-card's suit, pass, or name trump and go alone. Going alone names trump
// exactly as make does.
func (g *Game) inputBidRound2(action Action, data any) error {
	switch action {
	case ActionPass:
		g.engine.NextPlayer()
		if g.engine.Seat() == g.engine.Dealer() {
			g.state = StateDealerMustCall
		}
	case ActionMake:
		suit, err := suitData(data)
		if err != nil {
			return err
		}
		if err := g.engine.SetTrump(suit); err != nil {
			return err
		}
		g.enterPlay()
	case ActionAlone:
		suit, err := suitData(data)
		if err != nil {
			return err
		}
		if err := g.engine.SetTrump(suit); err != nil {
			return err
		}
		g.engine.GoAlone()
		g.enterPlay()
	default:
		return g.reject(action)
	}
	return nil
}

// inputDealerMustCall forces the dealer to name trump once every seat has
// passed twice; the turned-down suit stays off limits.
func (g *Game) inputDealerMustCall(action Action, data any) error {
	switch action {
	case ActionMake:
		suit, err := suitData(data)
		if err != nil {
			return err
		}
		if err := g.engine.SetTrump(suit); err != nil {
			return err
		}
		g.enterPlay()
	case ActionAlone:
		suit, err := suitData(data)
		if err != nil {
			return err
		}
		if err := g.engine.SetTrump(suit); err != nil {
			return err
		}
		g.engine.GoAlone()
		g.enterPlay()
	default:
		return g.reject(action)
	}
	return nil
}

// inputPlay lays one card per turn; a completed trick waits for continue.
func (g *Game) inputPlay(action Action, data any) error {
	if action != ActionPlay {
		return g.reject(action)
	}
	card, err := cardData(data)
	if err != nil {
		return err
	}
	if err := g.engine.PlayCard(card); err != nil {
		return err
	}
	if g.engine.IsTrickFinished() {
		g.state = StateTrickDone
	} else {
		g.engine.NextPlayer()
	}
	return nil
}

// inputTrickDone resolves the completed trick: the winner's team is credited,
// the winner leads the next trick, and the fifth trick triggers hand scoring.
func (g *Game) inputTrickDone(action Action) error {
	if action != ActionContinue {
		return g.reject(action)
	}
	winner, err := g.engine.TrickWinner()
	if err != nil {
		return err
	}
	g.engine.AddTrickTaken(TeamOf(winner))
	g.engine.FinishTrick()
	g.engine.SetOrder(winner)
	if !g.engine.IsHandFinished() {
		g.state = StatePlay
		return nil
	}
	g.engine.ScoreHand()
	g.state = StateHandDone
	points := g.engine.Points()
	g.log.Info().Int("maker", g.engine.Maker()).Ints("points", points[:]).Msg("hand scored")
	return nil
}

// inputHandDone either ends the match or rotates the deal and starts the next
// hand.
func (g *Game) inputHandDone(action Action) error {
	if action != ActionContinue {
		return g.reject(action)
	}
	if g.engine.IsGameOver() {
		g.state = StateGameOver
		points := g.engine.Points()
		g.log.Info().Ints("points", points[:]).Msg("game over")
		return nil
	}
	g.engine.IncDealer()
	return g.enterBidRound1()
}

func cardData(data any) (Card, error) {
	card, ok := data.(Card)
	if !ok {
		return Card{}, fmt.Errorf("action needs a card, got %T: %w", data, ErrIllegalAction)
	}
	return card, nil
}

func suitData(data any) (Suit, error) {
	suit, ok := data.(Suit)
	if !ok {
		return 0, fmt.Errorf("action needs a suit, got %T: %w", data, ErrIllegalAction)
	}
	return suit, nil
}
