package domain

import "testing"

func cv(r Rank, s Suit) CardView {
	return CardView{Rank: r, Suit: s}
}

func joker() CardView {
	return CardView{Rank: Joker, Suit: NoSuit}
}

func TestIsValidGroup(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		cards []CardView
		valid bool
	}{
		{
			name:  "three aces distinct suits",
			cards: []CardView{cv(Ace, Hearts), cv(Ace, Diamonds), cv(Ace, Clubs)},
			valid: true,
		},
		{
			name:  "duplicate suit from second deck",
			cards: []CardView{cv(Ace, Hearts), cv(Ace, Diamonds), cv(Ace, Hearts)},
			valid: false,
		},
		{
			name:  "joker fills third slot",
			cards: []CardView{cv(Ace, Hearts), cv(Ace, Diamonds), joker()},
			valid: true,
		},
		{
			name:  "below minimum size",
			cards: []CardView{cv(Ace, Hearts), cv(Ace, Diamonds)},
			valid: false,
		},
		{
			name:  "mixed ranks",
			cards: []CardView{cv(Ace, Hearts), cv(King, Diamonds), cv(Ace, Clubs)},
			valid: false,
		},
		{
			name:  "four of a kind",
			cards: []CardView{cv(Nine, Hearts), cv(Nine, Diamonds), cv(Nine, Clubs), cv(Nine, Spades)},
			valid: true,
		},
		{
			name:  "all wild",
			cards: []CardView{joker(), joker(), joker()},
			valid: true,
		},
		{
			name:  "all wild below minimum",
			cards: []CardView{joker(), joker()},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.IsValidGroup(tt.cards); got != tt.valid {
				t.Errorf("expected %v, got %v", tt.valid, got)
			}
		})
	}
}

func TestIsValidRun(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		cards []CardView
		valid bool
	}{
		{
			name:  "four consecutive spades",
			cards: []CardView{cv(Four, Spades), cv(Five, Spades), cv(Six, Spades), cv(Seven, Spades)},
			valid: true,
		},
		{
			name:  "joker fills interior gap",
			cards: []CardView{cv(Four, Spades), cv(Six, Spades), cv(Seven, Spades), joker()},
			valid: true,
		},
		{
			name:  "no wraparound past king",
			cards: []CardView{cv(King, Spades), cv(Ace, Spades), cv(Two, Spades), cv(Three, Spades)},
			valid: false,
		},
		{
			name:  "below minimum size",
			cards: []CardView{cv(Four, Spades), cv(Five, Spades), cv(Six, Spades)},
			valid: false,
		},
		{
			name:  "mixed suits",
			cards: []CardView{cv(Four, Spades), cv(Five, Hearts), cv(Six, Spades), cv(Seven, Spades)},
			valid: false,
		},
		{
			name:  "duplicate rank claims one slot",
			cards: []CardView{cv(Four, Spades), cv(Four, Spades), cv(Five, Spades), cv(Six, Spades)},
			valid: false,
		},
		{
			name:  "leftover joker extends low end",
			cards: []CardView{cv(Jack, Spades), cv(Queen, Spades), cv(King, Spades), joker()},
			valid: true,
		},
		{
			name:  "ace low run",
			cards: []CardView{cv(Ace, Hearts), cv(Two, Hearts), cv(Three, Hearts), cv(Four, Hearts)},
			valid: true,
		},
		{
			name:  "ace high rejected by default",
			cards: []CardView{cv(Jack, Spades), cv(Queen, Spades), cv(King, Spades), cv(Ace, Spades)},
			valid: false,
		},
		{
			name:  "two jokers cover two gaps",
			cards: []CardView{cv(Three, Clubs), cv(Five, Clubs), cv(Seven, Clubs), joker(), joker()},
			valid: true,
		},
		{
			name:  "not enough jokers for gaps",
			cards: []CardView{cv(Three, Clubs), cv(Seven, Clubs), cv(Nine, Clubs), joker()},
			valid: false,
		},
		{
			name:  "all wild",
			cards: []CardView{joker(), joker(), joker(), joker()},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.IsValidRun(tt.cards); got != tt.valid {
				t.Errorf("expected %v, got %v", tt.valid, got)
			}
		})
	}
}

func TestAceHighRuns(t *testing.T) {
	rules := Rules{AceHighRuns: true}

	high := []CardView{cv(Jack, Spades), cv(Queen, Spades), cv(King, Spades), cv(Ace, Spades)}
	if !rules.IsValidRun(high) {
		t.Error("expected ace-high run to be valid when enabled")
	}

	low := []CardView{cv(Ace, Hearts), cv(Two, Hearts), cv(Three, Hearts), cv(Four, Hearts)}
	if !rules.IsValidRun(low) {
		t.Error("expected ace-low run to stay valid when ace-high is enabled")
	}

	wrap := []CardView{cv(King, Spades), cv(Ace, Spades), cv(Two, Spades), cv(Three, Spades)}
	if rules.IsValidRun(wrap) {
		t.Error("expected wraparound to stay invalid with ace-high enabled")
	}
}

func TestConfiguredWildRanks(t *testing.T) {
	rules := Rules{WildRanks: []Rank{Two}}

	if !rules.IsWild(Joker) {
		t.Error("joker must always be wild")
	}
	if !rules.IsWild(Two) {
		t.Error("expected configured rank to be wild")
	}

	// A wild two fills a run gap regardless of its printed suit.
	run := []CardView{cv(Four, Spades), cv(Six, Spades), cv(Seven, Spades), cv(Two, Hearts)}
	if !rules.IsValidRun(run) {
		t.Error("expected wild two to fill the gap")
	}

	group := []CardView{cv(Nine, Hearts), cv(Nine, Diamonds), cv(Two, Clubs)}
	if !rules.IsValidGroup(group) {
		t.Error("expected wild two to complete the group")
	}
}
