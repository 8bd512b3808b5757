package app

import (
	"github.com/google/uuid"

	"rummy/internal/domain"
)

// MeldView is a public table meld together with its container address, so a
// player that has laid down can target it for extension.
type MeldView struct {
	Container domain.Container  `json:"container"`
	Cards     []domain.CardView `json:"cards"`
}

// View is one seat's restricted perspective on the round. It is derived from
// the registry on every build, never cached.
type View struct {
	HandID      uuid.UUID         `json:"hand_id"`
	Round       int               `json:"round"`
	Contract    domain.Contract   `json:"contract"`
	ViewerSeat  int               `json:"viewer_seat"`
	CurrentSeat int               `json:"current_seat"` // relative: 0 means the viewer's turn
	Hand        []domain.CardView `json:"hand"`
	TableGroups []MeldView        `json:"table_groups"`
	TableRuns   []MeldView        `json:"table_runs"`
	TopDiscard  domain.CardView   `json:"top_discard"`
	HasDiscard  bool              `json:"has_discard"`
	LaidDown    []bool            `json:"laid_down"`
	DeckSize    int               `json:"deck_size"`
}

// BuildView derives the viewing seat's perspective: its own hand in full,
// every table meld (public), the discard top and the current seat expressed
// relative to the viewer.
func BuildView(r *Round, viewer int) View {
	seats := discoverSeats(r.Registry)

	v := View{
		HandID:      r.ID,
		Round:       r.Contract.Round,
		Contract:    r.Contract,
		ViewerSeat:  viewer,
		CurrentSeat: relativeSeat(r.CurrentSeat, viewer, seats),
		Hand:        r.Registry.ViewOf(domain.HandOf(viewer)),
		LaidDown:    append([]bool(nil), r.LaidDown...),
		DeckSize:    r.Registry.Count(domain.DeckContainer()),
	}

	for seat := 0; seat < seats; seat++ {
		for idx := 0; idx < MaxMeldIndex; idx++ {
			if cards := r.Registry.ViewOf(domain.GroupOf(seat, idx)); len(cards) > 0 {
				v.TableGroups = append(v.TableGroups, MeldView{Container: domain.GroupOf(seat, idx), Cards: cards})
			}
			if cards := r.Registry.ViewOf(domain.RunOf(seat, idx)); len(cards) > 0 {
				v.TableRuns = append(v.TableRuns, MeldView{Container: domain.RunOf(seat, idx), Cards: cards})
			}
		}
	}

	if top, ok := r.Registry.Top(domain.DiscardContainer()); ok {
		v.TopDiscard = top.View()
		v.HasDiscard = true
	}

	return v
}

// discoverSeats counts the table population by scanning the registry. A seat
// is live if it holds cards in hand or on the table; checking melds too keeps
// a seat counted while its hand is transiently empty mid-turn.
func discoverSeats(registry *domain.Registry) int {
	highest := -1
	for seat := 0; seat < maxScanSeats; seat++ {
		if seatOccupied(registry, seat) {
			highest = seat
		}
	}
	return highest + 1
}

func seatOccupied(registry *domain.Registry, seat int) bool {
	if registry.Count(domain.HandOf(seat)) > 0 {
		return true
	}
	for idx := 0; idx < MaxMeldIndex; idx++ {
		if registry.Count(domain.GroupOf(seat, idx)) > 0 || registry.Count(domain.RunOf(seat, idx)) > 0 {
			return true
		}
	}
	return false
}

// relativeSeat expresses current from the viewer's perspective: 0 is the
// viewer, 1 the next seat clockwise, and so on.
func relativeSeat(current, viewer, seats int) int {
	if seats <= 0 {
		return 0
	}
	return ((current-viewer)%seats + seats) % seats
}
