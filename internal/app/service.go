package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"rummy/internal/domain"
)

// DeckCount is the number of physical decks shuffled together.
const DeckCount = 2

// TotalCards is the number of identities in play.
const TotalCards = DeckCount * domain.CardsPerDeck

// MaxMeldIndex bounds the group/run slot indices scanned per seat. Contracts
// require at most three melds of a kind.
const MaxMeldIndex = 5

// MinSeats is the smallest playable table.
const MinSeats = 2

// maxScanSeats bounds the seat range scanned when discovering the table
// population from the registry.
const maxScanSeats = 8

var (
	ErrTooFewSeats       = errors.New("not enough seats to deal")
	ErrInsufficientCards = errors.New("not enough cards to deal")
	ErrEmptyPile         = errors.New("draw pile is empty")
	ErrNotYourTurn       = errors.New("not this seat's turn")
	ErrAlreadyDrawn      = errors.New("seat already drew this turn")
	ErrDrawFirst         = errors.New("seat must draw before playing")
	ErrHandOver          = errors.New("hand already ended")
	ErrInvalidMoveSource = errors.New("invalid move source")
	ErrInvalidMoveTarget = errors.New("invalid move target")
	ErrDanglingScratch   = errors.New("scratch not drained by ledger")
	ErrInvalidDiscard    = errors.New("discard not in hand")
	ErrContractNotMet    = errors.New("lay-down does not satisfy contract")
	ErrBrokenMeld        = errors.New("ledger breaks a table meld")
)

// Phase is the lifecycle stage of a round.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseEnded   Phase = "ended"
)

// Round holds one hand's state: the registry, the contract, turn bookkeeping
// and the per-seat lay-down flags. It lives for exactly one round.
type Round struct {
	ID          uuid.UUID
	Registry    *domain.Registry
	Contract    domain.Contract
	Rules       domain.Rules
	Seats       int
	CurrentSeat int
	LaidDown    []bool
	Drawn       bool
	Phase       Phase
	Turns       int
	Winner      int
}

// Service contains the rules-engine use-cases operating on round state.
type Service struct {
	rng   *rand.Rand
	rules domain.Rules
}

// NewService constructs a Service with the provided rng and variant rules.
// A nil rng falls back to a time-seeded source.
func NewService(rng *rand.Rand, rules domain.Rules) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, rules: rules}
}

func (s *Service) shuffle(cards []domain.CardID) {
	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Deal creates the round state for the given round number: shuffles the
// double deck, deals hands round-robin, flips one card to the discard pile
// and leaves the remainder as the draw pile. The deal is checked against the
// card count before any mutation.
func (s *Service) Deal(seats, roundNumber int) (*Round, []Event, error) {
	contract, err := domain.ContractForRound(roundNumber)
	if err != nil {
		return nil, nil, err
	}
	if seats < MinSeats {
		return nil, nil, fmt.Errorf("%w: %d seats", ErrTooFewSeats, seats)
	}
	if need := seats*contract.HandSize + 1; need > TotalCards {
		return nil, nil, fmt.Errorf("%w: need %d of %d", ErrInsufficientCards, need, TotalCards)
	}

	registry := domain.NewRegistry()
	all := registry.InitializeDecks(DeckCount)
	s.shuffle(all)

	idx := 0
	for i := 0; i < contract.HandSize; i++ {
		for seat := 0; seat < seats; seat++ {
			if err := registry.Move(all[idx], domain.HandOf(seat)); err != nil {
				return nil, nil, err
			}
			idx++
		}
	}

	upcard := all[idx]
	if err := registry.Move(upcard, domain.DiscardContainer()); err != nil {
		return nil, nil, err
	}
	idx++

	// Re-append the remainder so the draw pile pops in shuffled order.
	for _, id := range all[idx:] {
		if err := registry.Move(id, domain.DeckContainer()); err != nil {
			return nil, nil, err
		}
	}

	round := &Round{
		ID:       uuid.New(),
		Registry: registry,
		Contract: contract,
		Rules:    s.rules,
		Seats:    seats,
		LaidDown: make([]bool, seats),
		Phase:    PhasePlaying,
		Winner:   -1,
	}

	events := make([]Event, 0, seats+1)
	events = append(events, Event{
		Kind: EventHandStarted,
		Payload: HandStartedPayload{
			HandID:    round.ID,
			Round:     roundNumber,
			Contract:  contract,
			Seats:     seats,
			FirstSeat: round.CurrentSeat,
			Upcard:    upcard.View(),
		},
	})
	for seat := 0; seat < seats; seat++ {
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				Seat: seat,
				Hand: registry.ViewOf(domain.HandOf(seat)),
			},
			Recipients: []int{seat},
		})
	}

	return round, events, nil
}

// Draw moves the top of the chosen pile into the acting seat's hand.
func (s *Service) Draw(r *Round, seat int, source DrawSource) (domain.CardView, []Event, error) {
	if r.Phase != PhasePlaying {
		return domain.CardView{}, nil, ErrHandOver
	}
	if seat != r.CurrentSeat {
		return domain.CardView{}, nil, fmt.Errorf("%w: seat %d, current is %d", ErrNotYourTurn, seat, r.CurrentSeat)
	}
	if r.Drawn {
		return domain.CardView{}, nil, ErrAlreadyDrawn
	}

	pile := domain.DeckContainer()
	if source == DrawFromDiscard {
		pile = domain.DiscardContainer()
	}
	card, ok := r.Registry.Top(pile)
	if !ok {
		return domain.CardView{}, nil, fmt.Errorf("%w: %s", ErrEmptyPile, pile)
	}
	if err := r.Registry.Move(card, domain.HandOf(seat)); err != nil {
		return domain.CardView{}, nil, err
	}
	r.Drawn = true

	// The draw itself is public; only the drawing seat learns the card.
	events := []Event{
		{
			Kind:    EventCardDrawn,
			Payload: CardDrawnPayload{Seat: seat, Source: source},
		},
		{
			Kind:       EventCardDrawn,
			Payload:    CardDrawnPayload{Seat: seat, Source: source, Card: card.View()},
			Recipients: []int{seat},
		},
	}
	return card.View(), events, nil
}
