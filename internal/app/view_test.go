package app

import (
	"testing"

	"rummy/internal/domain"
)

func fourSeatRound(t *testing.T) *Round {
	t.Helper()
	round := newTestRound(t, 4, 1)
	place(t, round, domain.HandOf(0), aceHearts, kingSpades)
	place(t, round, domain.HandOf(1), aceDiamonds)
	place(t, round, domain.HandOf(2), aceClubs)
	place(t, round, domain.HandOf(3), aceSpades)
	return round
}

func TestViewRelativeSeat(t *testing.T) {
	round := fourSeatRound(t)
	round.CurrentSeat = 2

	tests := []struct {
		viewer   int
		relative int
	}{
		{viewer: 2, relative: 0},
		{viewer: 3, relative: 3},
		{viewer: 0, relative: 2},
		{viewer: 1, relative: 1},
	}
	for _, tt := range tests {
		v := BuildView(round, tt.viewer)
		if v.CurrentSeat != tt.relative {
			t.Errorf("viewer %d: expected relative seat %d, got %d", tt.viewer, tt.relative, v.CurrentSeat)
		}
	}
}

func TestViewOwnHandOnly(t *testing.T) {
	round := fourSeatRound(t)
	v := BuildView(round, 0)
	if len(v.Hand) != 2 {
		t.Fatalf("expected 2 cards in viewer hand, got %d", len(v.Hand))
	}
	if v.ViewerSeat != 0 {
		t.Errorf("expected viewer seat 0, got %d", v.ViewerSeat)
	}
}

func TestViewDiscardSentinel(t *testing.T) {
	round := fourSeatRound(t)

	v := BuildView(round, 0)
	if v.HasDiscard {
		t.Error("expected no-discard sentinel on empty pile")
	}

	place(t, round, domain.DiscardContainer(), queenSpades)
	v = BuildView(round, 0)
	if !v.HasDiscard {
		t.Fatal("expected discard to be visible")
	}
	if v.TopDiscard.ID != queenSpades {
		t.Errorf("expected top discard %s, got %s", queenSpades, v.TopDiscard.ID)
	}
}

func TestViewTableMelds(t *testing.T) {
	round := fourSeatRound(t)
	place(t, round, domain.GroupOf(1, 0), nineHearts, nineDiamonds, nineClubs)
	place(t, round, domain.RunOf(2, 1), fourSpades, fiveSpades)

	v := BuildView(round, 0)
	if len(v.TableGroups) != 1 {
		t.Fatalf("expected 1 table group, got %d", len(v.TableGroups))
	}
	if v.TableGroups[0].Container != domain.GroupOf(1, 0) {
		t.Errorf("expected group container %s, got %s", domain.GroupOf(1, 0), v.TableGroups[0].Container)
	}
	if len(v.TableRuns) != 1 {
		t.Fatalf("expected 1 table run, got %d", len(v.TableRuns))
	}
	if len(v.TableRuns[0].Cards) != 2 {
		t.Errorf("expected 2 cards in run view, got %d", len(v.TableRuns[0].Cards))
	}
}

func TestDiscoverSeatsCountsMeldOnlySeats(t *testing.T) {
	round := newTestRound(t, 4, 1)
	place(t, round, domain.HandOf(0), aceHearts)
	place(t, round, domain.HandOf(1), aceDiamonds)
	place(t, round, domain.HandOf(2), aceClubs)
	// Seat 3's hand is transiently empty but its lay-down is on the table.
	place(t, round, domain.GroupOf(3, 0), nineHearts, nineDiamonds, nineClubs)

	if n := discoverSeats(round.Registry); n != 4 {
		t.Fatalf("expected 4 discovered seats, got %d", n)
	}

	round.CurrentSeat = 0
	v := BuildView(round, 3)
	if v.CurrentSeat != 1 {
		t.Errorf("expected relative seat 1 for viewer 3, got %d", v.CurrentSeat)
	}
}
