package players

import (
	"errors"

	"rummy/internal/app"
	"rummy/internal/domain"
)

// Basic is the simplest strategy: always draw from the deck, never meld,
// discard the highest-score card.
type Basic struct{}

func (Basic) DecideDraw(app.View) app.DrawSource { return app.DrawFromDeck }

func (Basic) PlayTurn(v app.View) (app.Turn, error) {
	card, err := highestCard(v.Hand)
	if err != nil {
		return app.Turn{}, err
	}
	return app.Turn{Discard: card.ID}, nil
}

func (Basic) CheckNunu(app.View, domain.CardView) bool { return false }

func (Basic) Notify(app.View) {}

func highestCard(hand []domain.CardView) (domain.CardView, error) {
	if len(hand) == 0 {
		return domain.CardView{}, errors.New("hand is empty")
	}
	best := hand[0]
	for _, c := range hand[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best, nil
}
