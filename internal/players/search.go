package players

import (
	"sort"

	"rummy/internal/domain"
)

// contractPlan is a concrete assignment of hand cards to the melds a contract
// demands. Runs are allocated before groups because runs are the scarcer
// resource: a card that anchors a run can usually not be replaced, while a
// group slot can be topped up with a wildcard.
type contractPlan struct {
	groups [][]domain.CardView
	runs   [][]domain.CardView
}

func (p contractPlan) size() int {
	n := 0
	for _, m := range p.groups {
		n += len(m)
	}
	for _, m := range p.runs {
		n += len(m)
	}
	return n
}

func (p contractPlan) cards() map[domain.CardID]bool {
	used := make(map[domain.CardID]bool, p.size())
	for _, m := range p.groups {
		for _, c := range m {
			used[c.ID] = true
		}
	}
	for _, m := range p.runs {
		for _, c := range m {
			used[c.ID] = true
		}
	}
	return used
}

// solveContract tries to carve the contract's melds out of the hand. It is a
// greedy single-pass solver, not an exhaustive search: it takes the cheapest
// run window per run slot and the deepest rank bucket per group slot. A false
// result therefore means "not found", not "provably impossible".
func solveContract(rules domain.Rules, contract domain.Contract, hand []domain.CardView) (contractPlan, bool) {
	var wilds, naturals []domain.CardView
	for _, c := range hand {
		if rules.IsWild(c.Rank) {
			wilds = append(wilds, c)
		} else {
			naturals = append(naturals, c)
		}
	}

	used := make(map[domain.CardID]bool)
	var plan contractPlan

	for i := 0; i < contract.Runs; i++ {
		run, ok := takeRun(naturals, &wilds, used)
		if !ok {
			return contractPlan{}, false
		}
		plan.runs = append(plan.runs, run)
	}
	for i := 0; i < contract.Groups; i++ {
		group, ok := takeGroup(naturals, &wilds, used)
		if !ok {
			return contractPlan{}, false
		}
		plan.groups = append(plan.groups, group)
	}
	return plan, true
}

// takeRun picks the four-slot suit window that needs the fewest wildcards,
// claims its cards and wildcards, and returns the assembled run. Aces are
// placed low only; the solver does not exploit the ace-high variant.
func takeRun(naturals []domain.CardView, wilds *[]domain.CardView, used map[domain.CardID]bool) ([]domain.CardView, bool) {
	bySuit := make(map[domain.Suit]map[int]domain.CardView)
	for _, c := range naturals {
		if used[c.ID] {
			continue
		}
		if bySuit[c.Suit] == nil {
			bySuit[c.Suit] = make(map[int]domain.CardView)
		}
		if _, taken := bySuit[c.Suit][int(c.Rank)]; !taken {
			bySuit[c.Suit][int(c.Rank)] = c
		}
	}

	suits := make([]domain.Suit, 0, len(bySuit))
	for s := range bySuit {
		suits = append(suits, s)
	}
	sort.Slice(suits, func(i, j int) bool { return suits[i] < suits[j] })

	bestMissing := len(*wilds) + 1
	var bestSuit domain.Suit
	bestStart := 0
	for _, suit := range suits {
		positions := bySuit[suit]
		for start := 1; start+3 <= int(domain.King); start++ {
			missing := 0
			for pos := start; pos < start+4; pos++ {
				if _, ok := positions[pos]; !ok {
					missing++
				}
			}
			if missing < bestMissing && missing < 4 {
				bestMissing = missing
				bestSuit = suit
				bestStart = start
			}
		}
	}

	if bestMissing > len(*wilds) {
		// No natural anchor fits; an all-wild run is the last resort.
		if len(*wilds) >= 4 {
			run := append([]domain.CardView(nil), (*wilds)[:4]...)
			*wilds = (*wilds)[4:]
			return run, true
		}
		return nil, false
	}

	var run []domain.CardView
	for pos := bestStart; pos < bestStart+4; pos++ {
		if c, ok := bySuit[bestSuit][pos]; ok {
			run = append(run, c)
			used[c.ID] = true
		} else {
			run = append(run, (*wilds)[0])
			*wilds = (*wilds)[1:]
		}
	}
	return run, true
}

// takeGroup picks the rank with the most distinct-suit copies still unclaimed
// and tops it up with wildcards to reach three cards.
func takeGroup(naturals []domain.CardView, wilds *[]domain.CardView, used map[domain.CardID]bool) ([]domain.CardView, bool) {
	byRank := make(map[domain.Rank][]domain.CardView)
	for _, c := range naturals {
		if used[c.ID] {
			continue
		}
		claimed := false
		for _, held := range byRank[c.Rank] {
			if held.Suit == c.Suit {
				claimed = true
				break
			}
		}
		if !claimed {
			byRank[c.Rank] = append(byRank[c.Rank], c)
		}
	}

	var bestRank domain.Rank
	best := 0
	for r := domain.Ace; r <= domain.King; r++ {
		if n := len(byRank[r]); n > best {
			best = n
			bestRank = r
		}
	}

	topUp := 0
	if best < 3 {
		topUp = 3 - best
	}
	if topUp > len(*wilds) {
		return nil, false
	}

	group := append([]domain.CardView(nil), byRank[bestRank]...)
	for _, c := range group {
		used[c.ID] = true
	}
	group = append(group, (*wilds)[:topUp]...)
	*wilds = (*wilds)[topUp:]
	return group, true
}
