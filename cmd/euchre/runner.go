package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"euchre/internal/engine"
	"euchre/internal/player"
)

func errBotSpec(spec string) error {
	return fmt.Errorf("BOTS must list four of random|rule, got %q", spec)
}

// Runner drives one match: it asks the seated player for a decision whenever
// the protocol is waiting on one and feeds it back as input.
type Runner struct {
	Game    *engine.Game
	Players [4]player.Player
	Render  bool
	Log     zerolog.Logger
}

// Run plays the match to completion.
func (r *Runner) Run() error {
	matchID := uuid.NewString()
	r.Log.Info().Str("match_id", matchID).Msg("match started")

	if err := r.Game.Input(engine.ActionStart, nil); err != nil {
		return err
	}
	for r.Game.State() != engine.StateGameOver {
		if err := r.step(); err != nil {
			return err
		}
	}

	points := r.Game.Engine().Points()
	winner := 0
	if points[1] > points[0] {
		winner = 1
	}
	if r.Render {
		renderGameOver(winner, points)
	}
	r.Log.Info().Str("match_id", matchID).Int("winner", winner).Ints("points", points[:]).Msg("match finished")
	return nil
}

func (r *Runner) step() error {
	obs := r.Game.Observation()
	p := r.Players[obs.Seat]

	switch r.Game.State() {
	case engine.StateBidRound1:
		action, err := p.ChooseBid(obs, []engine.Action{engine.ActionPass, engine.ActionOrder, engine.ActionAlone})
		if err != nil {
			return err
		}
		return r.Game.Input(action, nil)

	case engine.StateDealerSwap:
		action, err := p.ChooseBid(obs, []engine.Action{engine.ActionDown, engine.ActionUp})
		if err != nil {
			return err
		}
		if action == engine.ActionDown {
			return r.Game.Input(action, nil)
		}
		discard, err := p.ChooseDiscard(obs, obs.Hands[obs.Seat])
		if err != nil {
			return err
		}
		return r.Game.Input(engine.ActionUp, discard)

	case engine.StateBidRound2:
		action, err := p.ChooseBid(obs, []engine.Action{engine.ActionPass, engine.ActionMake, engine.ActionAlone})
		if err != nil {
			return err
		}
		if action == engine.ActionPass {
			return r.Game.Input(action, nil)
		}
		return r.inputWithSuit(p, obs, action)

	case engine.StateDealerMustCall:
		action, err := p.ChooseBid(obs, []engine.Action{engine.ActionMake, engine.ActionAlone})
		if err != nil {
			return err
		}
		return r.inputWithSuit(p, obs, action)

	case engine.StatePlay:
		legal := r.Game.Engine().PlayableCards()
		card, err := p.ChooseCard(obs, legal)
		if err != nil {
			return err
		}
		return r.Game.Input(engine.ActionPlay, card)

	case engine.StateTrickDone:
		if r.Render {
			renderTable(obs, r.Players)
		}
		return r.Game.Input(engine.ActionContinue, nil)

	case engine.StateHandDone:
		if r.Render {
			renderTable(obs, r.Players)
		}
		return r.Game.Input(engine.ActionContinue, nil)
	}
	return fmt.Errorf("no decision defined for state %s: %w", r.Game.State(), engine.ErrIllegalAction)
}

// inputWithSuit resolves a round-two make or lone call, which both need a
// trump suit. Any suit but the turned-down card's is callable.
func (r *Runner) inputWithSuit(p player.Player, obs engine.Observation, action engine.Action) error {
	suit, err := p.ChooseSuit(obs, callableSuits(obs))
	if err != nil {
		return err
	}
	return r.Game.Input(action, suit)
}

func callableSuits(obs engine.Observation) []engine.Suit {
	var suits []engine.Suit
	for s := engine.Clubs; s <= engine.Spades; s++ {
		if obs.Downcard == nil || s != obs.Downcard.Suit {
			suits = append(suits, s)
		}
	}
	return suits
}
