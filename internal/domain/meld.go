package domain

import "sort"

// Rules captures the variant knobs for meld validation: which ranks count as
// wild beyond the always-wild joker, and whether a run may use the ace high
// after the king. The zero value is jokers-only, ace low.
type Rules struct {
	WildRanks   []Rank
	AceHighRuns bool
}

// DefaultRules returns the base variant: jokers are the only wildcards and
// runs treat the ace as low only.
func DefaultRules() Rules {
	return Rules{}
}

// IsWild reports whether the rank substitutes for any card.
func (ru Rules) IsWild(r Rank) bool {
	if r == Joker {
		return true
	}
	for _, w := range ru.WildRanks {
		if w == r {
			return true
		}
	}
	return false
}

// IsValidGroup reports whether the cards form a legal group: at least three
// cards, all non-wild cards of one rank, and no suit claimed twice by
// non-wild cards. Wildcards fill the remaining slots without further
// constraint, so an all-wild set of three or more is legal.
func (ru Rules) IsValidGroup(cards []CardView) bool {
	if len(cards) < 3 {
		return false
	}
	var rank Rank
	seen := make(map[Suit]bool, 4)
	for _, c := range cards {
		if ru.IsWild(c.Rank) {
			continue
		}
		if rank == 0 {
			rank = c.Rank
		} else if c.Rank != rank {
			return false
		}
		if seen[c.Suit] {
			return false
		}
		seen[c.Suit] = true
	}
	return true
}

// IsValidRun reports whether the cards form a legal run: at least four cards
// of one suit arranged into strictly consecutive ranks, with wildcards
// filling interior gaps and extending the ends. Runs never wrap below the ace
// or past the king (past the high ace when AceHighRuns is enabled). Two
// non-wild cards of the same rank claim the same slot and invalidate the run,
// even when they come from different physical decks.
func (ru Rules) IsValidRun(cards []CardView) bool {
	if len(cards) < 4 {
		return false
	}

	wilds := 0
	suit := NoSuit
	var nonWild []Rank
	aces := 0
	for _, c := range cards {
		if ru.IsWild(c.Rank) {
			wilds++
			continue
		}
		if suit == NoSuit {
			suit = c.Suit
		} else if c.Suit != suit {
			return false
		}
		if c.Rank == Ace {
			aces++
		}
		nonWild = append(nonWild, c.Rank)
	}

	maxPos := int(King)
	if ru.AceHighRuns {
		maxPos = int(King) + 1
	}

	if len(nonWild) == 0 {
		// All wild: any contiguous placement works if it fits on the rank line.
		return len(cards) <= maxPos
	}

	// Each non-wild ace may sit low or, when enabled, high after the king.
	// Try every split of aces between the two positions.
	highTries := 0
	if ru.AceHighRuns {
		highTries = aces
	}
	for high := 0; high <= highTries; high++ {
		if runFits(nonWild, wilds, high, maxPos) {
			return true
		}
	}
	return false
}

// runFits checks one ace assignment: highAces of the aces are placed at
// king+1, the rest keep their low positions.
func runFits(nonWild []Rank, wilds, highAces, maxPos int) bool {
	positions := make([]int, 0, len(nonWild))
	assigned := 0
	for _, r := range nonWild {
		pos := int(r)
		if r == Ace && assigned < highAces {
			pos = int(King) + 1
			assigned++
		}
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	needed := 0
	for i := 1; i < len(positions); i++ {
		gap := positions[i] - positions[i-1]
		if gap == 0 {
			return false // two claims on one slot
		}
		needed += gap - 1
	}
	if needed > wilds {
		return false
	}

	total := len(positions) + wilds
	if total > maxPos {
		return false
	}

	// Leftover wildcards extend the ends without wrapping.
	leftover := wilds - needed
	slack := (positions[0] - 1) + (maxPos - positions[len(positions)-1])
	return leftover <= slack
}
