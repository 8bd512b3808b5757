package players

import (
	"rummy/internal/app"
	"rummy/internal/domain"
)

// Greedy lays down the moment the contract solver finds a plan, then spends
// the rest of the hand feeding cards onto its own table melds. It never
// banks cards for a better lay-down.
type Greedy struct {
	rules domain.Rules
}

func NewGreedy(rules domain.Rules) *Greedy {
	return &Greedy{rules: rules}
}

// DecideDraw takes the upcard when it is wild or pairs with at least two held
// cards of the same rank, otherwise draws blind.
func (g *Greedy) DecideDraw(v app.View) app.DrawSource {
	if !v.HasDiscard {
		return app.DrawFromDeck
	}
	if g.rules.IsWild(v.TopDiscard.Rank) {
		return app.DrawFromDiscard
	}
	same := 0
	for _, c := range v.Hand {
		if c.Rank == v.TopDiscard.Rank {
			same++
		}
	}
	if same >= 2 {
		return app.DrawFromDiscard
	}
	return app.DrawFromDeck
}

func (g *Greedy) PlayTurn(v app.View) (app.Turn, error) {
	if v.ViewerSeat < len(v.LaidDown) && v.LaidDown[v.ViewerSeat] {
		return g.extend(v)
	}

	plan, ok := solveContract(g.rules, v.Contract, v.Hand)
	if ok && len(v.Hand) > plan.size() {
		return g.layDown(v, plan)
	}

	card, err := worstCard(g.rules, v.Hand)
	if err != nil {
		return app.Turn{}, err
	}
	return app.Turn{Discard: card.ID}, nil
}

func (g *Greedy) CheckNunu(v app.View, upcard domain.CardView) bool {
	// Claim the upcard out of turn only when it is wild.
	return g.rules.IsWild(upcard.Rank)
}

func (g *Greedy) Notify(app.View) {}

// layDown emits one move per planned card into the viewer's meld slots and
// discards the worst leftover.
func (g *Greedy) layDown(v app.View, plan contractPlan) (app.Turn, error) {
	seat := v.ViewerSeat
	var moves []app.CardMove
	for i, group := range plan.groups {
		for _, c := range group {
			moves = append(moves, app.CardMove{Card: c.ID, To: domain.GroupOf(seat, i)})
		}
	}
	for i, run := range plan.runs {
		for _, c := range run {
			moves = append(moves, app.CardMove{Card: c.ID, To: domain.RunOf(seat, i)})
		}
	}

	used := plan.cards()
	var leftover []domain.CardView
	for _, c := range v.Hand {
		if !used[c.ID] {
			leftover = append(leftover, c)
		}
	}
	card, err := worstCard(g.rules, leftover)
	if err != nil {
		return app.Turn{}, err
	}
	return app.Turn{Moves: moves, Discard: card.ID}, nil
}

// extend moves hand cards onto the viewer's own table melds wherever the
// extended meld stays valid, keeping one card back for the discard.
func (g *Greedy) extend(v app.View) (app.Turn, error) {
	type tableMeld struct {
		container domain.Container
		cards     []domain.CardView
	}
	var melds []tableMeld
	for _, m := range append(append([]app.MeldView(nil), v.TableGroups...), v.TableRuns...) {
		if m.Container.IsMeldOf(v.ViewerSeat) {
			melds = append(melds, tableMeld{container: m.Container, cards: append([]domain.CardView(nil), m.Cards...)})
		}
	}

	var moves []app.CardMove
	left := append([]domain.CardView(nil), v.Hand...)
	for changed := true; changed && len(left) > 1; {
		changed = false
		for i, c := range left {
			placed := false
			for j := range melds {
				candidate := append(append([]domain.CardView(nil), melds[j].cards...), c)
				if !g.meldHolds(melds[j].container, candidate) {
					continue
				}
				moves = append(moves, app.CardMove{Card: c.ID, To: melds[j].container})
				melds[j].cards = candidate
				left = append(left[:i], left[i+1:]...)
				placed = true
				break
			}
			if placed {
				changed = true
				break
			}
		}
	}

	card, err := worstCard(g.rules, left)
	if err != nil {
		return app.Turn{}, err
	}
	return app.Turn{Moves: moves, Discard: card.ID}, nil
}

func (g *Greedy) meldHolds(c domain.Container, cards []domain.CardView) bool {
	switch c.Kind {
	case domain.KindGroup:
		return g.rules.IsValidGroup(cards)
	case domain.KindRun:
		return g.rules.IsValidRun(cards)
	default:
		return false
	}
}

// worstCard returns the highest-score non-wild card, falling back to the
// highest card overall when only wildcards remain.
func worstCard(rules domain.Rules, hand []domain.CardView) (domain.CardView, error) {
	var best domain.CardView
	found := false
	for _, c := range hand {
		if rules.IsWild(c.Rank) {
			continue
		}
		if !found || c.Score > best.Score {
			best = c
			found = true
		}
	}
	if found {
		return best, nil
	}
	return highestCard(hand)
}
