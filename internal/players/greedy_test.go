package players

import (
	"testing"

	"rummy/internal/app"
	"rummy/internal/domain"
)

func cv(base uint8) domain.CardView {
	return domain.NewCardID(base, 1).View()
}

func cv2(base uint8) domain.CardView {
	return domain.NewCardID(base, 2).View()
}

var (
	aceHearts    = cv(1)
	aceDiamonds  = cv(14)
	aceClubs     = cv(27)
	nineHearts   = cv(9)
	nineDiamonds = cv(22)
	nineClubs    = cv(35)
	fourSpades   = cv(43)
	fiveSpades   = cv(44)
	sevenSpades  = cv(46)
	queenSpades  = cv(51)
	kingSpades   = cv(52)
	joker        = cv(53)
)

func TestSolveContractTwoGroups(t *testing.T) {
	rules := domain.DefaultRules()
	contract, err := domain.ContractForRound(1)
	if err != nil {
		t.Fatalf("contract: %v", err)
	}
	hand := []domain.CardView{
		aceHearts, aceDiamonds, aceClubs,
		nineHearts, nineDiamonds, nineClubs,
		fourSpades, fiveSpades, queenSpades, kingSpades,
	}

	plan, ok := solveContract(rules, contract, hand)
	if !ok {
		t.Fatal("expected a plan")
	}
	if len(plan.groups) != 2 || len(plan.runs) != 0 {
		t.Fatalf("expected 2 groups and no runs, got %d/%d", len(plan.groups), len(plan.runs))
	}
	for i, g := range plan.groups {
		if !rules.IsValidGroup(g) {
			t.Errorf("group %d is invalid: %v", i, g)
		}
	}
	if plan.size() != 6 {
		t.Errorf("expected 6 planned cards, got %d", plan.size())
	}
}

func TestSolveContractRunWithWildFill(t *testing.T) {
	rules := domain.DefaultRules()
	contract := domain.Contract{Round: 2, Groups: 1, Runs: 1, HandSize: 10}
	hand := []domain.CardView{
		fourSpades, fiveSpades, sevenSpades, joker, // run 4-5-W-7
		aceHearts, aceDiamonds, aceClubs, // group
		queenSpades, kingSpades, nineHearts,
	}

	plan, ok := solveContract(rules, contract, hand)
	if !ok {
		t.Fatal("expected a plan")
	}
	if len(plan.runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(plan.runs))
	}
	if !rules.IsValidRun(plan.runs[0]) {
		t.Errorf("run is invalid: %v", plan.runs[0])
	}
	if !rules.IsValidGroup(plan.groups[0]) {
		t.Errorf("group is invalid: %v", plan.groups[0])
	}
}

func TestSolveContractGroupWildTopUp(t *testing.T) {
	rules := domain.DefaultRules()
	contract, _ := domain.ContractForRound(1)
	hand := []domain.CardView{
		aceHearts, aceDiamonds, joker, // group of two plus wildcard
		nineHearts, nineDiamonds, nineClubs,
		fourSpades, fiveSpades, queenSpades, kingSpades,
	}

	plan, ok := solveContract(rules, contract, hand)
	if !ok {
		t.Fatal("expected a plan")
	}
	for i, g := range plan.groups {
		if !rules.IsValidGroup(g) {
			t.Errorf("group %d is invalid: %v", i, g)
		}
	}
}

func TestSolveContractImpossible(t *testing.T) {
	rules := domain.DefaultRules()
	contract, _ := domain.ContractForRound(1)
	hand := []domain.CardView{
		aceHearts, nineHearts, fourSpades, fiveSpades, sevenSpades,
		queenSpades, kingSpades, cv(2), cv(16), cv(30),
	}
	if _, ok := solveContract(rules, contract, hand); ok {
		t.Fatal("expected no plan from a hand with no pairs")
	}
}

func TestGreedyDecideDraw(t *testing.T) {
	g := NewGreedy(domain.DefaultRules())

	tests := []struct {
		name string
		view app.View
		want app.DrawSource
	}{
		{
			name: "empty pile draws from deck",
			view: app.View{Hand: []domain.CardView{aceHearts}},
			want: app.DrawFromDeck,
		},
		{
			name: "wild upcard is taken",
			view: app.View{HasDiscard: true, TopDiscard: joker},
			want: app.DrawFromDiscard,
		},
		{
			name: "pair in hand takes the upcard",
			view: app.View{
				HasDiscard: true, TopDiscard: aceClubs,
				Hand: []domain.CardView{aceHearts, aceDiamonds, kingSpades},
			},
			want: app.DrawFromDiscard,
		},
		{
			name: "single match draws blind",
			view: app.View{
				HasDiscard: true, TopDiscard: aceClubs,
				Hand: []domain.CardView{aceHearts, kingSpades},
			},
			want: app.DrawFromDeck,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.DecideDraw(tt.view); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestGreedyLaysDownWhenPlanFits(t *testing.T) {
	g := NewGreedy(domain.DefaultRules())
	contract, _ := domain.ContractForRound(1)
	view := app.View{
		Contract:   contract,
		ViewerSeat: 0,
		LaidDown:   []bool{false, false},
		Hand: []domain.CardView{
			aceHearts, aceDiamonds, aceClubs,
			nineHearts, nineDiamonds, nineClubs,
			kingSpades,
		},
	}

	turn, err := g.PlayTurn(view)
	if err != nil {
		t.Fatalf("play turn: %v", err)
	}
	if len(turn.Moves) != 6 {
		t.Fatalf("expected 6 lay-down moves, got %d", len(turn.Moves))
	}
	for _, m := range turn.Moves {
		if !m.To.IsMeldOf(0) {
			t.Errorf("move targets %s, expected own meld", m.To)
		}
	}
	if turn.Discard != kingSpades.ID {
		t.Errorf("expected discard %s, got %s", kingSpades.ID, turn.Discard)
	}
}

func TestGreedyHoldsWithoutSpareDiscard(t *testing.T) {
	g := NewGreedy(domain.DefaultRules())
	contract, _ := domain.ContractForRound(1)
	// The plan would consume the whole hand, leaving nothing to discard.
	view := app.View{
		Contract:   contract,
		ViewerSeat: 0,
		LaidDown:   []bool{false, false},
		Hand: []domain.CardView{
			aceHearts, aceDiamonds, aceClubs,
			nineHearts, nineDiamonds, nineClubs,
		},
	}

	turn, err := g.PlayTurn(view)
	if err != nil {
		t.Fatalf("play turn: %v", err)
	}
	if len(turn.Moves) != 0 {
		t.Fatalf("expected no moves, got %d", len(turn.Moves))
	}
}

func TestGreedyExtendsOwnMelds(t *testing.T) {
	g := NewGreedy(domain.DefaultRules())
	view := app.View{
		ViewerSeat: 0,
		LaidDown:   []bool{true, false},
		Hand:       []domain.CardView{cv2(40), kingSpades}, // ace of spades fits the group
		TableGroups: []app.MeldView{
			{Container: domain.GroupOf(0, 0), Cards: []domain.CardView{aceHearts, aceDiamonds, aceClubs}},
			{Container: domain.GroupOf(1, 0), Cards: []domain.CardView{nineHearts, nineDiamonds, nineClubs}},
		},
	}

	turn, err := g.PlayTurn(view)
	if err != nil {
		t.Fatalf("play turn: %v", err)
	}
	if len(turn.Moves) != 1 {
		t.Fatalf("expected 1 extension move, got %d", len(turn.Moves))
	}
	if turn.Moves[0].Card != cv2(40).ID || turn.Moves[0].To != domain.GroupOf(0, 0) {
		t.Errorf("unexpected move %+v", turn.Moves[0])
	}
	if turn.Discard != kingSpades.ID {
		t.Errorf("expected discard %s, got %s", kingSpades.ID, turn.Discard)
	}
}

func TestGreedyNeverExtendsForeignMelds(t *testing.T) {
	g := NewGreedy(domain.DefaultRules())
	view := app.View{
		ViewerSeat: 0,
		LaidDown:   []bool{true, true},
		Hand:       []domain.CardView{cv2(48), kingSpades}, // fits seat 1's group only
		TableGroups: []app.MeldView{
			{Container: domain.GroupOf(1, 0), Cards: []domain.CardView{nineHearts, nineDiamonds, nineClubs}},
		},
	}

	turn, err := g.PlayTurn(view)
	if err != nil {
		t.Fatalf("play turn: %v", err)
	}
	if len(turn.Moves) != 0 {
		t.Fatalf("expected no moves onto a foreign meld, got %d", len(turn.Moves))
	}
}

func TestWorstCardAvoidsWilds(t *testing.T) {
	rules := domain.DefaultRules()
	card, err := worstCard(rules, []domain.CardView{joker, fourSpades, kingSpades})
	if err != nil {
		t.Fatalf("worst card: %v", err)
	}
	if card.ID != kingSpades.ID {
		t.Errorf("expected %s, got %s", kingSpades.ID, card.ID)
	}

	card, err = worstCard(rules, []domain.CardView{joker})
	if err != nil {
		t.Fatalf("worst card: %v", err)
	}
	if card.ID != joker.ID {
		t.Errorf("expected the joker fallback, got %s", card.ID)
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel("greedy"); err != nil || l != LevelGreedy {
		t.Errorf("expected LevelGreedy, got %v/%v", l, err)
	}
	if _, err := ParseLevel("impossible"); err == nil {
		t.Error("expected error for unknown level")
	}
}
