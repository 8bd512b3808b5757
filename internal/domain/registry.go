package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownCard is returned when a card identity was never initialized into
// the registry. It signals a programming error, not a rules violation.
var ErrUnknownCard = errors.New("card not in registry")

// CardsPerDeck is the number of identities one physical deck contributes.
const CardsPerDeck = 54

// Registry is the ground truth for card locations. Every initialized card is
// in exactly one container at all times. Per-container membership keeps
// insertion order, so the last appended card is the top of a pile.
type Registry struct {
	locations map[CardID]Container
	members   map[Container][]CardID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		locations: make(map[CardID]Container),
		members:   make(map[Container][]CardID),
	}
}

// InitializeDecks populates deckCount full decks into the deck container and
// returns all identities in canonical order.
func (r *Registry) InitializeDecks(deckCount int) []CardID {
	all := make([]CardID, 0, deckCount*CardsPerDeck)
	for deck := 1; deck <= deckCount; deck++ {
		for base := 1; base <= CardsPerDeck; base++ {
			id := NewCardID(uint8(base), uint8(deck))
			r.locations[id] = DeckContainer()
			r.members[DeckContainer()] = append(r.members[DeckContainer()], id)
			all = append(all, id)
		}
	}
	return all
}

// Move relocates a card to the target container. Moving a card within its
// current container re-appends it, which reorders the pile. Move does not
// check game legality; that is the turn engine's job.
func (r *Registry) Move(card CardID, target Container) error {
	from, ok := r.locations[card]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCard, card)
	}
	r.remove(card, from)
	r.locations[card] = target
	r.members[target] = append(r.members[target], card)
	return nil
}

func (r *Registry) remove(card CardID, from Container) {
	cards := r.members[from]
	for i, c := range cards {
		if c == card {
			r.members[from] = append(cards[:i], cards[i+1:]...)
			return
		}
	}
}

// Locate returns the container currently holding the card.
func (r *Registry) Locate(card CardID) (Container, error) {
	c, ok := r.locations[card]
	if !ok {
		return Container{}, fmt.Errorf("%w: %s", ErrUnknownCard, card)
	}
	return c, nil
}

// CardsIn returns the container's membership in insertion order. The returned
// slice is a copy.
func (r *Registry) CardsIn(container Container) []CardID {
	cards := r.members[container]
	out := make([]CardID, len(cards))
	copy(out, cards)
	return out
}

// Count returns the number of cards in the container.
func (r *Registry) Count(container Container) int {
	return len(r.members[container])
}

// Top returns the most recently appended card of the container, if any.
func (r *Registry) Top(container Container) (CardID, bool) {
	cards := r.members[container]
	if len(cards) == 0 {
		return 0, false
	}
	return cards[len(cards)-1], true
}

// ViewOf materializes the container's cards for display and decisioning.
func (r *Registry) ViewOf(container Container) []CardView {
	cards := r.members[container]
	views := make([]CardView, len(cards))
	for i, c := range cards {
		views[i] = c.View()
	}
	return views
}

// Size returns the total number of initialized identities.
func (r *Registry) Size() int {
	return len(r.locations)
}
