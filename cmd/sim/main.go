package main

import (
	"errors"
	"log/slog"
	"math/rand"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"rummy/internal/app"
	"rummy/internal/domain"
	"rummy/internal/players"
)

type simConfig struct {
	Players  int    `env:"RUMMY_SIM_PLAYERS" envDefault:"4"`
	Rounds   int    `env:"RUMMY_SIM_ROUNDS" envDefault:"7"`
	Seed     int64  `env:"RUMMY_SIM_SEED" envDefault:"0"`
	BotLevel string `env:"RUMMY_SIM_BOT_LEVEL" envDefault:"greedy"`
	Verbose  bool   `env:"RUMMY_SIM_VERBOSE" envDefault:"false"`
}

func main() {
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	var cfg simConfig
	if err := env.Parse(&cfg); err != nil {
		logger.Error("failed to parse environment", "error", err.Error())
		os.Exit(1)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("R", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ummy", pterm.FgDarkGray.ToStyle()),
	).Render()

	rules := domain.DefaultRules()
	level, err := players.ParseLevel(cfg.BotLevel)
	if err != nil {
		logger.Error("unknown bot level", "level", cfg.BotLevel)
		os.Exit(1)
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	service := app.NewService(rng, rules)

	table := make([]app.Player, cfg.Players)
	for i := range table {
		table[i], err = players.New(level, rules)
		if err != nil {
			logger.Error("failed to create player", "seat", i, "error", err.Error())
			os.Exit(1)
		}
	}

	pterm.Info.Printfln("Simulating %d rounds with %d %s players", cfg.Rounds, cfg.Players, cfg.BotLevel)

	wins := make([]int, cfg.Players)
	for round := 1; round <= cfg.Rounds; round++ {
		contract, err := domain.ContractForRound(round)
		if err != nil {
			logger.Error("bad round", "round", round, "error", err.Error())
			os.Exit(1)
		}
		pterm.DefaultSection.Printfln("Round %d: contract %s, %d cards", round, contract, contract.HandSize)

		result, err := service.RunHand(table, round, func(ev app.Event) {
			renderEvent(ev, cfg.Verbose)
		})
		if err != nil {
			if errors.Is(err, app.ErrEmptyPile) {
				pterm.Warning.Printfln("Round %d drawn: the deck ran out before anyone went out", round)
				continue
			}
			logger.Error("round aborted", "round", round, "error", err.Error())
			os.Exit(1)
		}

		wins[result.WinnerSeat]++
		pterm.Success.Printfln("Round %d won by seat %d in %d turns", round, result.WinnerSeat, result.Turns)
	}

	rows := pterm.TableData{{"Seat", "Rounds won"}}
	for seat, n := range wins {
		rows = append(rows, []string{strconv.Itoa(seat), strconv.Itoa(n)})
	}
	pterm.Println()
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func renderEvent(ev app.Event, verbose bool) {
	switch ev.Kind {
	case app.EventHandStarted:
		p := ev.Payload.(app.HandStartedPayload)
		pterm.Info.Printfln("Hand %s dealt to %d seats, upcard %s%s",
			p.HandID, p.Seats, p.Upcard.Rank, p.Upcard.Suit)
	case app.EventPlayerLaidDown:
		p := ev.Payload.(app.PlayerLaidDownPayload)
		pterm.Success.Printfln("Seat %d laid down the contract", p.Seat)
	case app.EventCardDiscarded:
		if verbose {
			p := ev.Payload.(app.CardDiscardedPayload)
			pterm.Debug.Printfln("Seat %d discarded %s%s, next seat %d",
				p.Seat, p.Card.Rank, p.Card.Suit, p.NextSeat)
		}
	case app.EventTurnCommitted:
		if verbose {
			p := ev.Payload.(app.TurnCommittedPayload)
			pterm.Debug.Printfln("Seat %d committed %d moves", p.Seat, len(p.Moves))
		}
	case app.EventHandEnded:
		p := ev.Payload.(app.HandEndedPayload)
		pterm.Info.Printfln("Hand %s over after %d turns", p.HandID, p.Turns)
	}
}
