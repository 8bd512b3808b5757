package domain

import "fmt"

// CardID uniquely identifies one physical card across the double deck.
// Encoding: deck*100 + base, deck in {1,2}, base in 1..54.
// Base positions: 1-13 Hearts, 14-26 Diamonds, 27-39 Clubs, 40-52 Spades,
// 53-54 the two jokers.
type CardID uint16

// NewCardID builds the identity for a base position in the given deck.
func NewCardID(base, deck uint8) CardID {
	return CardID(uint16(deck)*100 + uint16(base))
}

// Deck returns which physical deck (1 or 2) the card belongs to.
func (id CardID) Deck() uint8 {
	return uint8(id / 100)
}

// Base returns the deck-relative position 1..54.
func (id CardID) Base() uint8 {
	return uint8(id % 100)
}

// Rank is a card rank with Ace low by default. Jokers carry their own rank.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Joker
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Joker:
		return "Joker"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Suit of a card. Jokers have NoSuit.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
	NoSuit
)

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "-"
	}
}

// Rank derives the rank from the card's base position.
func (id CardID) Rank() Rank {
	base := id.Base()
	switch {
	case base >= 53:
		return Joker
	default:
		r := (base-1)%13 + 1
		return Rank(r)
	}
}

// Suit derives the suit from the card's base position.
func (id CardID) Suit() Suit {
	base := id.Base()
	switch {
	case base >= 53:
		return NoSuit
	case base >= 40:
		return Spades
	case base >= 27:
		return Clubs
	case base >= 14:
		return Diamonds
	default:
		return Hearts
	}
}

// Score returns the card's point value: aces and twos 20, jokers 50,
// ten through king 10, everything else its numeric rank.
func (id CardID) Score() int {
	switch r := id.Rank(); r {
	case Ace, Two:
		return 20
	case Joker:
		return 50
	case Ten, Jack, Queen, King:
		return 10
	default:
		return int(r)
	}
}

func (id CardID) String() string {
	if id.Rank() == Joker {
		return fmt.Sprintf("Joker(%d)", id.Deck())
	}
	return fmt.Sprintf("%s%s", id.Rank(), id.Suit())
}

// CardView is the materialized, render-ready form of a card identity.
type CardView struct {
	ID    CardID `json:"id"`
	Rank  Rank   `json:"rank"`
	Suit  Suit   `json:"suit"`
	Score int    `json:"score"`
}

// View materializes the card's derived attributes.
func (id CardID) View() CardView {
	return CardView{ID: id, Rank: id.Rank(), Suit: id.Suit(), Score: id.Score()}
}
