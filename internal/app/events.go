package app

import (
	"github.com/google/uuid"

	"rummy/internal/domain"
)

// EventKind identifies emitted engine events for port dispatch.
type EventKind string

const (
	EventHandStarted    EventKind = "hand_started"
	EventHandDealt      EventKind = "hand_dealt"
	EventCardDrawn      EventKind = "card_drawn"
	EventTurnCommitted  EventKind = "turn_committed"
	EventPlayerLaidDown EventKind = "player_laid_down"
	EventCardDiscarded  EventKind = "card_discarded"
	EventHandEnded      EventKind = "hand_ended"
)

// Event is an engine event with optional targeted recipient seats.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int // seat numbers; empty means broadcast
}

type HandStartedPayload struct {
	HandID    uuid.UUID
	Round     int
	Contract  domain.Contract
	Seats     int
	FirstSeat int
	Upcard    domain.CardView
}

type HandDealtPayload struct {
	Seat int
	Hand []domain.CardView
}

type CardDrawnPayload struct {
	Seat   int
	Source DrawSource
	Card   domain.CardView // zero in the public copy; the drawing seat gets a targeted copy carrying the card
}

type TurnCommittedPayload struct {
	Seat  int
	Moves []CardMove
}

type PlayerLaidDownPayload struct {
	Seat int
}

type CardDiscardedPayload struct {
	Seat     int
	Card     domain.CardView
	NextSeat int
}

type HandEndedPayload struct {
	HandID     uuid.UUID
	WinnerSeat int
	Turns      int
}
