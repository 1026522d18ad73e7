package engine

import "testing"

// card builds a test card; ids only need to be unique within one pile.
func card(rank Rank) Card {
	return Card{ID: string(rank) + "-spades-t", Rank: rank, Suit: Spades, Color: Black}
}

func removedCard(rank Rank) Card {
	c := card(rank)
	c.Removed = true
	return c
}

func TestCardValue(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{"A", 1},
		{"2", 2},
		{"7", 7},
		{"10", 10},
		{"J", 0},
		{"Q", 0},
		{"K", 0},
	}
	for _, tt := range tests {
		if got := CardValue(card(tt.rank)); got != tt.want {
			t.Errorf("CardValue(%s) = %d, want %d", tt.rank, got, tt.want)
		}
	}
}

func TestPileTotal(t *testing.T) {
	tests := []struct {
		name  string
		cards []Card
		want  int
	}{
		{"empty", nil, 0},
		{"numbers and ace", []Card{card("A"), card("5"), card("10")}, 16},
		{"king doubles previous number", []Card{card("5"), card("K")}, 10},
		{"two kings quadruple", []Card{card("5"), card("K"), card("K")}, 20},
		{"king after removed number is inert", []Card{removedCard("5"), card("K")}, 0},
		{"removed king breaks the chain", []Card{card("5"), removedCard("K"), card("K")}, 5},
		{"removed number contributes nothing", []Card{card("3"), removedCard("7"), card("4")}, 7},
		{"queen and jack score zero", []Card{card("6"), card("Q"), card("J")}, 6},
		{"king only doubles its own number", []Card{card("3"), card("K"), card("8")}, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PileTotal(tt.cards); got != tt.want {
				t.Errorf("PileTotal = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDirectionState(t *testing.T) {
	tests := []struct {
		name    string
		cards   []Card
		wantDir Direction
		wantVal int
		hasLast bool
	}{
		{"empty", nil, DirectionNone, 0, false},
		{"single number", []Card{card("5")}, DirectionNone, 5, true},
		{"ascending", []Card{card("5"), card("7")}, DirectionUp, 7, true},
		{"descending", []Card{card("7"), card("5")}, DirectionDown, 5, true},
		{"equal values poison the pile", []Card{card("5"), card("5")}, DirectionInvalid, 5, true},
		{"later steps only track last", []Card{card("5"), card("7"), card("3")}, DirectionUp, 3, true},
		{"queen flips established direction", []Card{card("5"), card("7"), card("Q")}, DirectionDown, 7, true},
		{"two queens flip back", []Card{card("5"), card("7"), card("Q"), card("Q")}, DirectionUp, 7, true},
		{"queen before establishment is inert", []Card{card("5"), card("Q")}, DirectionNone, 5, true},
		{"removed cards are skipped", []Card{card("5"), removedCard("7"), card("3")}, DirectionDown, 3, true},
		{"removed queen does not flip", []Card{card("5"), card("7"), removedCard("Q")}, DirectionUp, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, last, hasLast := DirectionState(tt.cards)
			if dir != tt.wantDir {
				t.Errorf("direction = %s, want %s", dir, tt.wantDir)
			}
			if hasLast != tt.hasLast {
				t.Errorf("hasLast = %v, want %v", hasLast, tt.hasLast)
			}
			if tt.hasLast && last != tt.wantVal {
				t.Errorf("last = %d, want %d", last, tt.wantVal)
			}
		})
	}
}

func TestComputePileView(t *testing.T) {
	view := ComputePileView([]Card{card("5"), card("7"), card("Q")})
	if view.Total != 12 {
		t.Errorf("Expected total 12, got %d", view.Total)
	}
	if view.Direction != DirectionDown {
		t.Errorf("Expected direction down, got %s", view.Direction)
	}
	if !view.Reversed {
		t.Error("Expected reversed indicator after one queen")
	}

	view = ComputePileView([]Card{card("5"), card("7"), card("Q"), card("Q")})
	if view.Reversed {
		t.Error("Expected reversal to clear after a second queen")
	}

	// A removed queen does not count toward the parity.
	view = ComputePileView([]Card{card("5"), card("7"), removedCard("Q")})
	if view.Reversed {
		t.Error("Removed queen should not set the reversed indicator")
	}
}

func TestComputeTotals(t *testing.T) {
	piles := []Pile{
		{Cards: []Card{card("10"), card("J")}},
		{Cards: []Card{card("5"), card("K")}},
		{Cards: nil},
	}
	totals := ComputeTotals(piles)
	if len(totals.PerPile) != 3 {
		t.Fatalf("Expected 3 per-pile entries, got %d", len(totals.PerPile))
	}
	if totals.PerPile[0] != 10 || totals.PerPile[1] != 10 || totals.PerPile[2] != 0 {
		t.Errorf("Unexpected per-pile totals %v", totals.PerPile)
	}
	if totals.Total != 20 {
		t.Errorf("Expected combined total 20, got %d", totals.Total)
	}
}

func TestFindTopmostFaceTarget(t *testing.T) {
	tests := []struct {
		name  string
		cards []Card
		want  int
	}{
		{"empty", nil, -1},
		{"single number", []Card{card("5")}, 0},
		{"most recent number wins", []Card{card("5"), card("7")}, 1},
		{"skips faces", []Card{card("5"), card("K"), card("Q")}, 0},
		{"skips removed", []Card{card("5"), removedCard("7")}, 0},
		{"all removed", []Card{removedCard("5"), removedCard("7")}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindTopmostFaceTarget(tt.cards); got != tt.want {
				t.Errorf("FindTopmostFaceTarget = %d, want %d", got, tt.want)
			}
		})
	}
}
