package app

import (
	"fmt"

	"rummy/internal/domain"
)

// PlayTurn validates the seat's move ledger and discard as a dry run, then
// commits all of it. On any validation failure the registry is untouched.
func (s *Service) PlayTurn(r *Round, seat int, turn Turn) ([]Event, error) {
	if r.Phase != PhasePlaying {
		return nil, ErrHandOver
	}
	if seat != r.CurrentSeat {
		return nil, fmt.Errorf("%w: seat %d, current is %d", ErrNotYourTurn, seat, r.CurrentSeat)
	}
	if !r.Drawn {
		return nil, ErrDrawFirst
	}

	laysDown, err := validateTurn(r, seat, turn)
	if err != nil {
		return nil, err
	}

	// Commit. Validation passed, so failures here would mean registry
	// corruption and are surfaced as-is.
	for _, m := range turn.Moves {
		if err := r.Registry.Move(m.Card, m.To); err != nil {
			return nil, err
		}
	}
	if err := r.Registry.Move(turn.Discard, domain.DiscardContainer()); err != nil {
		return nil, err
	}

	events := make([]Event, 0, 3)
	if len(turn.Moves) > 0 {
		events = append(events, Event{
			Kind:    EventTurnCommitted,
			Payload: TurnCommittedPayload{Seat: seat, Moves: turn.Moves},
		})
	}
	if laysDown {
		r.LaidDown[seat] = true
		events = append(events, Event{
			Kind:    EventPlayerLaidDown,
			Payload: PlayerLaidDownPayload{Seat: seat},
		})
	}

	r.Turns++
	r.Drawn = false

	if r.Registry.Count(domain.HandOf(seat)) == 0 {
		r.Phase = PhaseEnded
		r.Winner = seat
		events = append(events,
			Event{
				Kind:    EventCardDiscarded,
				Payload: CardDiscardedPayload{Seat: seat, Card: turn.Discard.View(), NextSeat: seat},
			},
			Event{
				Kind:    EventHandEnded,
				Payload: HandEndedPayload{HandID: r.ID, WinnerSeat: seat, Turns: r.Turns},
			})
		return events, nil
	}

	r.CurrentSeat = (r.CurrentSeat + 1) % r.Seats
	events = append(events, Event{
		Kind:    EventCardDiscarded,
		Payload: CardDiscardedPayload{Seat: seat, Card: turn.Discard.View(), NextSeat: r.CurrentSeat},
	})
	return events, nil
}

// validateTurn dry-runs the whole ledger against a simulated overlay of card
// locations. It reports whether committing the ledger constitutes the seat's
// lay-down. No registry state is modified.
func validateTurn(r *Round, seat int, turn Turn) (bool, error) {
	overlay := make(map[domain.CardID]domain.Container, len(turn.Moves))
	locate := func(card domain.CardID) (domain.Container, error) {
		if loc, ok := overlay[card]; ok {
			return loc, nil
		}
		return r.Registry.Locate(card)
	}

	laid := r.LaidDown[seat]
	hand := domain.HandOf(seat)
	scratch := r.Registry.Count(domain.ScratchContainer())
	touched := make(map[domain.Container]bool)

	for _, m := range turn.Moves {
		cur, err := locate(m.Card)
		if err != nil {
			return false, err
		}

		// Source: own hand always; scratch for cards this ledger staged
		// there; own table melds only after lay-down.
		switch {
		case cur == hand:
		case cur.Kind == domain.KindScratch:
		case laid && cur.IsMeldOf(seat):
		default:
			return false, fmt.Errorf("%w: card %s held in %s", ErrInvalidMoveSource, m.Card, cur)
		}

		// Target: never a hand or a pile; scratch always; own melds with
		// the pre-lay-down emptiness restriction.
		switch {
		case m.To.Kind == domain.KindHand || m.To.IsPile():
			return false, fmt.Errorf("%w: %s", ErrInvalidMoveTarget, m.To)
		case m.To.Kind == domain.KindScratch:
		case m.To.IsMeldOf(seat):
			if !laid && r.Registry.Count(m.To) > 0 {
				return false, fmt.Errorf("%w: %s is not empty before lay-down", ErrInvalidMoveTarget, m.To)
			}
		default:
			return false, fmt.Errorf("%w: %s", ErrInvalidMoveTarget, m.To)
		}

		if cur.Kind == domain.KindScratch {
			scratch--
		}
		if m.To.Kind == domain.KindScratch {
			scratch++
		}
		if cur.IsMeld() {
			touched[cur] = true
		}
		if m.To.IsMeld() {
			touched[m.To] = true
		}
		overlay[m.Card] = m.To
	}

	if scratch != 0 {
		return false, fmt.Errorf("%w: %d cards left in scratch", ErrDanglingScratch, scratch)
	}

	// The discard must still sit in the hand once the ledger has run.
	loc, err := locate(turn.Discard)
	if err != nil {
		return false, err
	}
	if loc != hand {
		return false, fmt.Errorf("%w: card %s is in %s", ErrInvalidDiscard, turn.Discard, loc)
	}

	// Simulated final content of a container.
	final := func(c domain.Container) []domain.CardView {
		var out []domain.CardView
		for _, id := range r.Registry.CardsIn(c) {
			if _, moved := overlay[id]; !moved {
				out = append(out, id.View())
			}
		}
		for id, dst := range overlay {
			if dst == c {
				out = append(out, id.View())
			}
		}
		return out
	}

	if laid {
		// Rearrangement must leave every touched meld valid and occupied.
		for c := range touched {
			cards := final(c)
			if len(cards) == 0 {
				return false, fmt.Errorf("%w: %s would be emptied", ErrBrokenMeld, c)
			}
			if !validMeld(r.Rules, c, cards) {
				return false, fmt.Errorf("%w: %s is not a valid %s", ErrBrokenMeld, c, meldName(c))
			}
		}
		return false, nil
	}

	if len(touched) == 0 {
		return false, nil
	}

	// Pre-lay-down: the ledger must assemble the full contract in one shot.
	groups, runs := 0, 0
	for c := range touched {
		cards := final(c)
		if len(cards) == 0 {
			continue
		}
		if !validMeld(r.Rules, c, cards) {
			return false, fmt.Errorf("%w: %s is not a valid %s", ErrContractNotMet, c, meldName(c))
		}
		if c.Kind == domain.KindGroup {
			groups++
		} else {
			runs++
		}
	}
	if groups != r.Contract.Groups || runs != r.Contract.Runs {
		return false, fmt.Errorf("%w: contract %s, ledger lays %d groups and %d runs",
			ErrContractNotMet, r.Contract, groups, runs)
	}
	return true, nil
}

func validMeld(rules domain.Rules, c domain.Container, cards []domain.CardView) bool {
	if c.Kind == domain.KindGroup {
		return rules.IsValidGroup(cards)
	}
	return rules.IsValidRun(cards)
}

func meldName(c domain.Container) string {
	if c.Kind == domain.KindGroup {
		return "group"
	}
	return "run"
}
