package nakama

import (
	"rummy/internal/app"
	"rummy/internal/domain"
)

// Op codes for client messages and server events. All payloads are JSON.
const (
	// Client -> Server
	OpStartHand int64 = 1
	OpDrawCard  int64 = 2
	OpPlayTurn  int64 = 3

	// Server -> Client events
	OpMatchState     int64 = 101
	OpHandStarted    int64 = 102
	OpHandDealt      int64 = 103 // sent privately
	OpCardDrawn      int64 = 104 // sent privately
	OpTurnCommitted  int64 = 105
	OpPlayerLaidDown int64 = 106
	OpCardDiscarded  int64 = 107
	OpHandEnded      int64 = 108
	OpGameError      int64 = 110
)

// MatchLabel is the JSON match listing label.
type MatchLabel struct {
	Open  int    `json:"open"`
	State string `json:"state"`
}

// StartHandRequest asks the owner to deal. Round 0 means the table's next
// scheduled round.
type StartHandRequest struct {
	Round int `json:"round"`
}

// DrawCardRequest chooses the pile for the turn's draw.
type DrawCardRequest struct {
	Source string `json:"source"` // "deck" or "discard"
}

// MoveDTO is one ledger entry; container addresses travel as {kind, seat, index}.
type MoveDTO struct {
	Card domain.CardID    `json:"card"`
	To   domain.Container `json:"to"`
}

// PlayTurnRequest carries the seat's complete turn: the move ledger and the
// closing discard.
type PlayTurnRequest struct {
	Moves   []MoveDTO     `json:"moves"`
	Discard domain.CardID `json:"discard"`
}

// PlayerStateDTO is one seat's public lobby state.
type PlayerStateDTO struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	IsOwner     bool   `json:"is_owner"`
	IsBot       bool   `json:"is_bot"`
	DisplayName string `json:"display_name"`
}

// MatchStateDTO is the lobby snapshot broadcast on join, leave and auto-fill.
type MatchStateDTO struct {
	Seats     []string         `json:"seats"`
	OwnerSeat int              `json:"owner_seat"`
	Round     int              `json:"round"`
	Players   []PlayerStateDTO `json:"players"`
}

type HandStartedDTO struct {
	HandID    string          `json:"hand_id"`
	Round     int             `json:"round"`
	Contract  string          `json:"contract"`
	HandSize  int             `json:"hand_size"`
	Seats     int             `json:"seats"`
	FirstSeat int             `json:"first_seat"`
	Upcard    domain.CardView `json:"upcard"`
}

type HandDealtDTO struct {
	Seat int               `json:"seat"`
	Hand []domain.CardView `json:"hand"`
}

type CardDrawnDTO struct {
	Seat   int             `json:"seat"`
	Source string          `json:"source"`
	Card   domain.CardView `json:"card"`
}

type TurnCommittedDTO struct {
	Seat  int       `json:"seat"`
	Moves []MoveDTO `json:"moves"`
}

type PlayerLaidDownDTO struct {
	Seat int `json:"seat"`
}

type CardDiscardedDTO struct {
	Seat     int             `json:"seat"`
	Card     domain.CardView `json:"card"`
	NextSeat int             `json:"next_seat"`
}

type HandEndedDTO struct {
	HandID     string `json:"hand_id"`
	WinnerSeat int    `json:"winner_seat"`
	Turns      int    `json:"turns"`
	NextRound  int    `json:"next_round"`
}

type GameErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toMoveDTOs(moves []app.CardMove) []MoveDTO {
	out := make([]MoveDTO, len(moves))
	for i, m := range moves {
		out[i] = MoveDTO{Card: m.Card, To: m.To}
	}
	return out
}

func toTurn(req PlayTurnRequest) app.Turn {
	turn := app.Turn{Discard: req.Discard}
	for _, m := range req.Moves {
		turn.Moves = append(turn.Moves, app.CardMove{Card: m.Card, To: m.To})
	}
	return turn
}

func parseDrawSource(s string) (app.DrawSource, bool) {
	switch s {
	case "", "deck":
		return app.DrawFromDeck, true
	case "discard":
		return app.DrawFromDiscard, true
	default:
		return app.DrawFromDeck, false
	}
}
