package main

import (
	"github.com/pterm/pterm"

	"euchre/internal/engine"
	"euchre/internal/player"
)

func seatPanel(obs engine.Observation, seat int, p player.Player) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).WithTopPadding(1).WithBottomPadding(1)
	title := p.Name()
	if seat == obs.Dealer {
		title += pterm.LightYellow(" (dealer)")
	}
	if seat == obs.Maker {
		title += pterm.LightGreen(" (maker)")
	}

	hand := ""
	for _, c := range obs.Hands[seat] {
		hand += c.String() + " "
	}
	body := pterm.Sprintfln("Team %d", engine.TeamOf(seat))
	body += pterm.Sprintfln("%s", hand)
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopLeft().Sprintf(body)}
}

func tablePanel(obs engine.Observation) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	trump := "undeclared"
	if obs.Trump != nil {
		trump = obs.Trump.String()
	}
	trick := ""
	if len(obs.Tricks) > 0 {
		for _, p := range obs.Tricks[len(obs.Tricks)-1].Plays {
			trick += pterm.Sprintf("seat %d: %s  ", p.Seat, p.Card)
		}
	}

	body := pterm.Sprintfln("Trump: %s", trump)
	body += pterm.Sprintfln("Trick: %s", trick)
	body += pterm.Sprintfln("Tricks taken: %d - %d", obs.TricksTaken[0], obs.TricksTaken[1])
	body += pterm.Sprintfln("Points: %d - %d", obs.Points[0], obs.Points[1])
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightCyan("|TABLE|")).WithTitleTopCenter().Sprintf(body)}
}

func renderTable(obs engine.Observation, players [4]player.Player) {
	top := []pterm.Panel{seatPanel(obs, 1, players[1]), seatPanel(obs, 2, players[2])}
	bottom := []pterm.Panel{seatPanel(obs, 0, players[0]), seatPanel(obs, 3, players[3])}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		top,
		{tablePanel(obs)},
		bottom,
	}).Render()
}

func renderGameOver(winner int, points [2]int) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("Team %d wins %d - %d", winner, points[winner], points[(winner+1)%2])
	pterm.Println(pbox.WithTitle(pterm.LightGreen("|GAME OVER|")).WithTitleTopCenter().Sprintf(body))
}
