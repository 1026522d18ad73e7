package engine

import (
	"strings"
	"testing"
)

func TestNewEngineWithSeed(t *testing.T) {
	a, err := NewEngineWithSeed(nil, 42)
	if err != nil {
		t.Fatalf("NewEngineWithSeed: %v", err)
	}
	b, err := NewEngineWithSeed(nil, 42)
	if err != nil {
		t.Fatalf("NewEngineWithSeed: %v", err)
	}

	for i, c := range a.GetState().Players.Player.Hand {
		if other := b.GetState().Players.Player.Hand[i]; c.ID != other.ID {
			t.Fatalf("hands diverge at %d: %s vs %s", i, c.ID, other.ID)
		}
	}

	if _, err := NewEngineWithSeed(&RulesConfig{Name: "broken"}, 1); err == nil {
		t.Error("expected an invalid profile to be rejected")
	}
}

func TestEngineReset(t *testing.T) {
	e, err := NewEngineWithSeed(nil, 9)
	if err != nil {
		t.Fatalf("NewEngineWithSeed: %v", err)
	}

	played := testState([]Card{card("5"), card("7")}, []Card{card("3")}, nil)
	if err := e.SetState(played); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	id := played.Players.Player.Hand[0].ID
	if !e.ApplyMove(SidePlayer, SidePlayer, id, 0, nil) {
		t.Fatalf("move rejected: %q", e.GetState().Message)
	}
	e.SetAIEnabled(false)

	state := e.Reset()
	if state.MoveCount != 0 {
		t.Errorf("MoveCount = %d after reset, want 0", state.MoveCount)
	}
	if len(state.MoveLog) != 0 {
		t.Errorf("MoveLog length = %d after reset, want 0", len(state.MoveLog))
	}
	if state.Turn != SidePlayer {
		t.Errorf("Turn = %s after reset, want %s", state.Turn, SidePlayer)
	}
	if state.AIEnabled {
		t.Error("reset must preserve the AI toggle")
	}
	if got := len(state.Deck); got != DeckSize-2*DefaultRulesConfig().HandSize {
		t.Errorf("Deck size = %d after reset, want a fresh deal", got)
	}
}

func TestEngineSetState(t *testing.T) {
	e := NewEngineWithDefaults()
	if err := e.SetState(nil); err == nil {
		t.Error("nil state accepted")
	}

	gs := testState([]Card{card("5")}, []Card{card("3")}, nil)
	gs.MoveCount = 7
	if err := e.SetState(gs); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	if e.MoveCount() != 7 {
		t.Errorf("MoveCount = %d, want 7", e.MoveCount())
	}
}

func TestEngineSnapshotIsDetached(t *testing.T) {
	e := NewEngineWithDefaults()
	snap := e.Snapshot()
	snap.Turn = SideAI
	snap.Players.Player.Hand[0].Rank = "X"

	if e.GetState().Turn != SidePlayer {
		t.Error("snapshot shares turn with live state")
	}
	if e.GetState().Players.Player.Hand[0].Rank == "X" {
		t.Error("snapshot shares hand with live state")
	}
}

func TestEngineProjections(t *testing.T) {
	e := NewEngineWithDefaults()
	gs := testState([]Card{card("5")}, []Card{card("3")}, nil)
	gs.Players.AI.Piles[1].Cards = []Card{card("7"), card("9"), card("Q")}
	if err := e.SetState(gs); err != nil {
		t.Fatalf("SetState: %v", err)
	}

	view := e.PileView(SideAI, 1)
	if view.Total != 16 {
		t.Errorf("Total = %d, want 16", view.Total)
	}
	if view.Direction != DirectionDown {
		t.Errorf("Direction = %s, want %s after the queen flip", view.Direction, DirectionDown)
	}
	if !view.Reversed {
		t.Error("Reversed = false, want true with one queen")
	}

	totals := e.SideTotals(SideAI)
	if totals.Total != 16 {
		t.Errorf("side total = %d, want 16", totals.Total)
	}
	if len(totals.PerPile) != PileCount || totals.PerPile[1] != 16 {
		t.Errorf("PerPile = %v, want pile 1 at 16", totals.PerPile)
	}
}

func TestEngineSetConfig(t *testing.T) {
	e := NewEngineWithDefaults()

	small := DefaultRulesConfig()
	small.Name = "Short Deal"
	small.HandSize = 3
	if err := e.SetConfig(small); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if got := len(e.GetState().Players.Player.Hand); got != 3 {
		t.Errorf("hand size = %d under new profile, want 3", got)
	}
	if e.GetConfig().Name != "Short Deal" {
		t.Errorf("config name = %q, want Short Deal", e.GetConfig().Name)
	}

	bad := DefaultRulesConfig()
	bad.TargetHigh = bad.TargetLow - 1
	if err := e.SetConfig(bad); err == nil {
		t.Error("invalid profile accepted")
	} else if !strings.Contains(err.Error(), "target_high") {
		t.Errorf("error %q does not name target_high", err)
	}
}

func TestEngineMoveLog(t *testing.T) {
	e, err := NewEngineWithSeed(nil, 3)
	if err != nil {
		t.Fatalf("NewEngineWithSeed: %v", err)
	}
	if e.GetLastMove() != nil {
		t.Error("GetLastMove non-nil before any move")
	}

	gs := testState([]Card{card("8"), card("2")}, []Card{card("3")}, nil)
	if err := e.SetState(gs); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	id := gs.Players.Player.Hand[0].ID
	if !e.ApplyMove(SidePlayer, SidePlayer, id, 2, nil) {
		t.Fatalf("move rejected: %q", e.GetState().Message)
	}

	log := e.GetMoveLog()
	if len(log) != 1 {
		t.Fatalf("move log length = %d, want 1", len(log))
	}
	last := e.GetLastMove()
	if last == nil || last.Sequence != 1 || last.PileIndex != 2 {
		t.Errorf("unexpected last move %+v", last)
	}
}
