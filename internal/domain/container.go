package domain

import "fmt"

// ContainerKind enumerates the logical card locations.
type ContainerKind int

const (
	KindDeck ContainerKind = iota
	KindDiscard
	KindScratch
	KindHand
	KindGroup
	KindRun
)

// Container addresses a logical card location. It is a comparable value type:
// two containers are the same location iff they are equal. Hand containers
// carry a seat; group and run containers carry a seat and an index.
type Container struct {
	Kind  ContainerKind `json:"kind"`
	Seat  int           `json:"seat"`
	Index int           `json:"index"`
}

// DeckContainer addresses the face-down draw pile.
func DeckContainer() Container { return Container{Kind: KindDeck} }

// DiscardContainer addresses the face-up discard pile.
func DiscardContainer() Container { return Container{Kind: KindDiscard} }

// ScratchContainer addresses the shared, turn-scoped staging area.
func ScratchContainer() Container { return Container{Kind: KindScratch} }

// HandOf addresses a seat's hand.
func HandOf(seat int) Container { return Container{Kind: KindHand, Seat: seat} }

// GroupOf addresses a seat's group meld slot.
func GroupOf(seat, index int) Container { return Container{Kind: KindGroup, Seat: seat, Index: index} }

// RunOf addresses a seat's run meld slot.
func RunOf(seat, index int) Container { return Container{Kind: KindRun, Seat: seat, Index: index} }

// IsMeld reports whether the container is a table meld slot (group or run).
func (c Container) IsMeld() bool {
	return c.Kind == KindGroup || c.Kind == KindRun
}

// IsMeldOf reports whether the container is a table meld slot owned by seat.
func (c Container) IsMeldOf(seat int) bool {
	return c.IsMeld() && c.Seat == seat
}

// IsPile reports whether the container is the deck or the discard pile.
func (c Container) IsPile() bool {
	return c.Kind == KindDeck || c.Kind == KindDiscard
}

func (c Container) String() string {
	switch c.Kind {
	case KindDeck:
		return "deck"
	case KindDiscard:
		return "discard"
	case KindScratch:
		return "scratch"
	case KindHand:
		return fmt.Sprintf("seat_%d_hand", c.Seat)
	case KindGroup:
		return fmt.Sprintf("seat_%d_group_%d", c.Seat, c.Index)
	case KindRun:
		return fmt.Sprintf("seat_%d_run_%d", c.Seat, c.Index)
	default:
		return fmt.Sprintf("container(%d)", int(c.Kind))
	}
}
