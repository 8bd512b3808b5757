package app

import (
	"fmt"

	"github.com/google/uuid"
)

// HandResult summarizes a completed hand.
type HandResult struct {
	HandID     uuid.UUID
	Round      int
	WinnerSeat int
	Turns      int
}

// RunHand plays one full round synchronously: deal, then draw / turn / commit
// / discard per seat until a hand empties. Events are pushed to sink when it
// is non-nil. A player error or a rules violation aborts the hand and
// propagates; the engine never substitutes a default decision.
func (s *Service) RunHand(players []Player, roundNumber int, sink func(Event)) (*HandResult, error) {
	round, events, err := s.Deal(len(players), roundNumber)
	if err != nil {
		return nil, err
	}
	emitAll(sink, events)
	for seat, p := range players {
		p.Notify(BuildView(round, seat))
	}
	return s.runLoop(round, players, sink)
}

// runLoop drives the per-turn cycle on an already dealt round.
func (s *Service) runLoop(round *Round, players []Player, sink func(Event)) (*HandResult, error) {
	for round.Phase == PhasePlaying {
		seat := round.CurrentSeat

		view := BuildView(round, seat)
		source := players[seat].DecideDraw(view)
		_, events, err := s.Draw(round, seat, source)
		if err != nil {
			return nil, fmt.Errorf("seat %d draw: %w", seat, err)
		}
		emitAll(sink, events)

		// Rebuild so the decision sees the drawn card.
		view = BuildView(round, seat)
		turn, err := players[seat].PlayTurn(view)
		if err != nil {
			return nil, fmt.Errorf("seat %d turn: %w", seat, err)
		}

		if events, err = s.PlayTurn(round, seat, turn); err != nil {
			return nil, fmt.Errorf("seat %d turn: %w", seat, err)
		}
		emitAll(sink, events)

		for i, p := range players {
			p.Notify(BuildView(round, i))
		}
	}

	return &HandResult{
		HandID:     round.ID,
		Round:      round.Contract.Round,
		WinnerSeat: round.Winner,
		Turns:      round.Turns,
	}, nil
}

func emitAll(sink func(Event), events []Event) {
	if sink == nil {
		return
	}
	for _, ev := range events {
		sink(ev)
	}
}
