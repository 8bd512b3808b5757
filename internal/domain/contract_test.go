package domain

import "testing"

func TestContractForRound(t *testing.T) {
	tests := []struct {
		round    int
		groups   int
		runs     int
		handSize int
		letters  string
	}{
		{round: 1, groups: 2, runs: 0, handSize: 10, letters: "GG"},
		{round: 2, groups: 1, runs: 1, handSize: 10, letters: "GR"},
		{round: 3, groups: 0, runs: 2, handSize: 10, letters: "RR"},
		{round: 4, groups: 3, runs: 0, handSize: 10, letters: "GGG"},
		{round: 5, groups: 2, runs: 1, handSize: 12, letters: "GGR"},
		{round: 6, groups: 1, runs: 2, handSize: 12, letters: "GRR"},
		{round: 7, groups: 0, runs: 3, handSize: 12, letters: "RRR"},
	}

	for _, tt := range tests {
		t.Run(tt.letters, func(t *testing.T) {
			c, err := ContractForRound(tt.round)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Groups != tt.groups || c.Runs != tt.runs || c.HandSize != tt.handSize {
				t.Errorf("round %d: expected %d groups, %d runs, hand %d; got %+v",
					tt.round, tt.groups, tt.runs, tt.handSize, c)
			}
			if c.String() != tt.letters {
				t.Errorf("expected %q, got %q", tt.letters, c.String())
			}
		})
	}
}

func TestContractForRoundOutOfRange(t *testing.T) {
	for _, round := range []int{0, 8, -1} {
		if _, err := ContractForRound(round); err == nil {
			t.Errorf("expected error for round %d", round)
		}
	}
}
