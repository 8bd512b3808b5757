package app

import "rummy/internal/domain"

// DrawSource selects which pile the acting seat draws from.
type DrawSource int

const (
	DrawFromDeck DrawSource = iota
	DrawFromDiscard
)

func (d DrawSource) String() string {
	if d == DrawFromDiscard {
		return "discard"
	}
	return "deck"
}

// CardMove is a single-card relocation inside a turn's move ledger.
type CardMove struct {
	Card domain.CardID    `json:"card"`
	To   domain.Container `json:"to"`
}

// Turn is a seat's full proposal for its turn: an ordered move ledger plus
// exactly one discard.
type Turn struct {
	Moves   []CardMove    `json:"moves"`
	Discard domain.CardID `json:"discard"`
}

// Player is the capability the turn engine drives for each seat. Decisions
// are data; a player never mutates the registry directly. Calls are
// synchronous and issued one at a time.
type Player interface {
	// DecideDraw picks the draw source for the seat's turn.
	DecideDraw(view View) DrawSource

	// PlayTurn produces the seat's move ledger and discard. An error aborts
	// the hand.
	PlayTurn(view View) (Turn, error)

	// CheckNunu is the reserved steal-the-discard hook. The current turn
	// loop never invokes it.
	CheckNunu(view View, discarded domain.CardView) bool

	// Notify is a fire-and-forget state update after each committed turn.
	Notify(view View)
}
