package engine

import (
	"math/rand"
	"testing"
)

func testState(playerHand, aiHand []Card, deck []Card) *GameState {
	return &GameState{
		Deck: deck,
		Players: Players{
			Player: Player{Hand: playerHand, Piles: emptyPiles()},
			AI:     Player{Hand: aiHand, Piles: emptyPiles()},
		},
		Turn:      SidePlayer,
		AIEnabled: true,
		MoveLog:   []MoveRecord{},
	}
}

func intPtr(n int) *int { return &n }

func TestNewGame(t *testing.T) {
	cfg := DefaultRulesConfig()
	gs, err := NewGame(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	if got := len(gs.Players.Player.Hand); got != cfg.HandSize {
		t.Errorf("Player hand size = %d, want %d", got, cfg.HandSize)
	}
	if got := len(gs.Players.AI.Hand); got != cfg.HandSize {
		t.Errorf("AI hand size = %d, want %d", got, cfg.HandSize)
	}
	if got := len(gs.Deck); got != DeckSize-2*cfg.HandSize {
		t.Errorf("Deck size = %d, want %d", got, DeckSize-2*cfg.HandSize)
	}
	if gs.Turn != SidePlayer {
		t.Errorf("Turn = %s, want %s", gs.Turn, SidePlayer)
	}
	if !gs.AIEnabled {
		t.Error("AIEnabled should default to true")
	}
	for side, piles := range map[Side][]Pile{SidePlayer: gs.Players.Player.Piles, SideAI: gs.Players.AI.Piles} {
		if len(piles) != PileCount {
			t.Errorf("%s has %d piles, want %d", side, len(piles), PileCount)
		}
		for i, p := range piles {
			if len(p.Cards) != 0 {
				t.Errorf("%s pile %d not empty", side, i)
			}
		}
	}
}

func TestApplyMove_NumericPlacement(t *testing.T) {
	cfg := DefaultRulesConfig()
	gs := testState(
		[]Card{card("5"), card("7"), card("K"), card("Q"), card("2")},
		[]Card{card("3"), card("4"), card("6"), card("8"), card("9")},
		[]Card{card("10")},
	)
	cardID := gs.Players.Player.Hand[0].ID

	if !gs.ApplyMove(cfg, SidePlayer, SidePlayer, cardID, 0, nil) {
		t.Fatalf("move rejected: %q", gs.Message)
	}

	if got := len(gs.Players.Player.Hand); got != 5 {
		t.Errorf("hand size = %d, want 5 after drawing replacement", got)
	}
	if got := len(gs.Deck); got != 0 {
		t.Errorf("deck size = %d, want 0", got)
	}
	pile := gs.Players.Player.Piles[0].Cards
	if len(pile) != 1 || pile[0].Rank != "5" {
		t.Fatalf("pile = %v, want the played 5", pile)
	}
	if gs.Turn != SideAI {
		t.Errorf("Turn = %s, want %s", gs.Turn, SideAI)
	}
	if gs.MoveCount != 1 {
		t.Errorf("MoveCount = %d, want 1", gs.MoveCount)
	}
	if gs.Message != "" {
		t.Errorf("Message = %q, want empty after accepted move", gs.Message)
	}
	if len(gs.MoveLog) != 1 {
		t.Fatalf("MoveLog length = %d, want 1", len(gs.MoveLog))
	}
	rec := gs.MoveLog[0]
	if rec.Actor != SidePlayer || rec.Target != SidePlayer || rec.CardRank != "5" ||
		rec.PileIndex != 0 || rec.TurnBefore != SidePlayer || rec.TurnAfter != SideAI || rec.Sequence != 1 {
		t.Errorf("unexpected MoveRecord %+v", rec)
	}
}

func TestApplyMove_EmptyDeckShrinksHand(t *testing.T) {
	cfg := DefaultRulesConfig()
	gs := testState([]Card{card("5"), card("7")}, []Card{card("3")}, nil)
	cardID := gs.Players.Player.Hand[0].ID

	if !gs.ApplyMove(cfg, SidePlayer, SidePlayer, cardID, 0, nil) {
		t.Fatalf("move rejected: %q", gs.Message)
	}
	if got := len(gs.Players.Player.Hand); got != 1 {
		t.Errorf("hand size = %d, want 1 with no deck to draw from", got)
	}
}

func TestApplyMove_Failures(t *testing.T) {
	cfg := DefaultRulesConfig()

	fresh := func() *GameState {
		return testState(
			[]Card{card("5"), card("K")},
			[]Card{card("3")},
			[]Card{card("10")},
		)
	}

	t.Run("not your turn", func(t *testing.T) {
		gs := fresh()
		aiCard := gs.Players.AI.Hand[0].ID
		if gs.ApplyMove(cfg, SideAI, SideAI, aiCard, 0, nil) {
			t.Fatal("out-of-turn move accepted")
		}
		if gs.Message != cfg.Messages.NotYourTurn {
			t.Errorf("Message = %q, want %q", gs.Message, cfg.Messages.NotYourTurn)
		}
		if gs.MoveCount != 0 || gs.Turn != SidePlayer {
			t.Error("state mutated by a rejected move")
		}
	})

	t.Run("card not in hand", func(t *testing.T) {
		gs := fresh()
		if gs.ApplyMove(cfg, SidePlayer, SidePlayer, "no-such-card", 0, nil) {
			t.Fatal("unknown card accepted")
		}
		if gs.Message != cfg.Messages.CardNotInHand {
			t.Errorf("Message = %q, want %q", gs.Message, cfg.Messages.CardNotInHand)
		}
	})

	t.Run("pile index out of range", func(t *testing.T) {
		gs := fresh()
		id := gs.Players.Player.Hand[0].ID
		if gs.ApplyMove(cfg, SidePlayer, SidePlayer, id, PileCount, nil) {
			t.Fatal("bad pile index accepted")
		}
		if gs.Message != cfg.Messages.InvalidMove {
			t.Errorf("Message = %q, want %q", gs.Message, cfg.Messages.InvalidMove)
		}
	})

	t.Run("face card needs a target on a non-empty pile", func(t *testing.T) {
		gs := fresh()
		gs.Players.Player.Piles[0].Cards = []Card{card("5")}
		kingID := gs.Players.Player.Hand[1].ID
		if gs.ApplyMove(cfg, SidePlayer, SidePlayer, kingID, 0, nil) {
			t.Fatal("targetless face card accepted on a non-empty pile")
		}
		if gs.Message != cfg.Messages.PickTarget {
			t.Errorf("Message = %q, want %q", gs.Message, cfg.Messages.PickTarget)
		}
	})

	t.Run("king on empty pile", func(t *testing.T) {
		gs := fresh()
		kingID := gs.Players.Player.Hand[1].ID
		if gs.ApplyMove(cfg, SidePlayer, SidePlayer, kingID, 0, nil) {
			t.Fatal("king accepted on an empty pile")
		}
		if gs.Message != cfg.Messages.KingNeedsNumber {
			t.Errorf("Message = %q, want %q", gs.Message, cfg.Messages.KingNeedsNumber)
		}
	})

	t.Run("king on a removed target", func(t *testing.T) {
		gs := fresh()
		gs.Players.Player.Piles[0].Cards = []Card{removedCard("5"), card("7")}
		kingID := gs.Players.Player.Hand[1].ID
		if gs.ApplyMove(cfg, SidePlayer, SidePlayer, kingID, 0, intPtr(0)) {
			t.Fatal("king accepted on a removed card")
		}
		if gs.Message != cfg.Messages.KingNeedsLiveNumber {
			t.Errorf("Message = %q, want %q", gs.Message, cfg.Messages.KingNeedsLiveNumber)
		}
	})

	t.Run("target index out of range", func(t *testing.T) {
		gs := fresh()
		gs.Players.Player.Piles[0].Cards = []Card{card("5")}
		kingID := gs.Players.Player.Hand[1].ID
		if gs.ApplyMove(cfg, SidePlayer, SidePlayer, kingID, 0, intPtr(3)) {
			t.Fatal("out-of-range target index accepted")
		}
		if gs.Message != cfg.Messages.InvalidMove {
			t.Errorf("Message = %q, want %q", gs.Message, cfg.Messages.InvalidMove)
		}
	})
}

func TestApplyMove_FaceCardInsertsAfterTarget(t *testing.T) {
	cfg := DefaultRulesConfig()
	gs := testState([]Card{card("K")}, []Card{card("3")}, nil)
	gs.Players.Player.Piles[1].Cards = []Card{card("5"), card("7"), card("9")}
	kingID := gs.Players.Player.Hand[0].ID

	if !gs.ApplyMove(cfg, SidePlayer, SidePlayer, kingID, 1, intPtr(1)) {
		t.Fatalf("king rejected: %q", gs.Message)
	}

	pile := gs.Players.Player.Piles[1].Cards
	want := []Rank{"5", "7", "K", "9"}
	if len(pile) != len(want) {
		t.Fatalf("pile length = %d, want %d", len(pile), len(want))
	}
	for i, r := range want {
		if pile[i].Rank != r {
			t.Errorf("pile[%d].Rank = %s, want %s", i, pile[i].Rank, r)
		}
	}
	if got := PileTotal(pile); got != 5+14+9 {
		t.Errorf("PileTotal = %d, want %d", got, 5+14+9)
	}
}

func TestApplyMove_JackRemovesInPlace(t *testing.T) {
	cfg := DefaultRulesConfig()
	gs := testState([]Card{card("J")}, []Card{card("3")}, nil)
	gs.Players.AI.Piles[2].Cards = []Card{card("5"), card("7")}
	jackID := gs.Players.Player.Hand[0].ID

	if !gs.ApplyMove(cfg, SidePlayer, SideAI, jackID, 2, intPtr(1)) {
		t.Fatalf("jack rejected: %q", gs.Message)
	}

	pile := gs.Players.AI.Piles[2].Cards
	if len(pile) != 3 {
		t.Fatalf("pile length = %d, want 3 (removed card stays)", len(pile))
	}
	if !pile[1].Removed {
		t.Error("target card not flagged removed")
	}
	if pile[2].Rank != "J" {
		t.Errorf("pile[2].Rank = %s, want J", pile[2].Rank)
	}
	if got := PileTotal(pile); got != 5 {
		t.Errorf("PileTotal = %d, want 5", got)
	}
}

func TestApplyMove_WinDetection(t *testing.T) {
	cfg := DefaultRulesConfig()

	t.Run("player completes three in-range piles", func(t *testing.T) {
		gs := testState([]Card{card("10")}, []Card{card("3")}, nil)
		gs.Players.Player.Piles[0].Cards = []Card{card("8"), card("9"), card("5")} // 22
		gs.Players.Player.Piles[1].Cards = []Card{card("4"), card("8")}            // 12, up
		gs.Players.Player.Piles[2].Cards = []Card{card("6"), card("7"), card("8")} // 21
		tenID := gs.Players.Player.Hand[0].ID

		if !gs.ApplyMove(cfg, SidePlayer, SidePlayer, tenID, 1, nil) {
			t.Fatalf("move rejected: %q", gs.Message)
		}
		if !gs.GameOver {
			t.Fatal("expected GameOver")
		}
		if gs.Winner != WinnerPlayer {
			t.Errorf("Winner = %q, want %q", gs.Winner, WinnerPlayer)
		}
		if gs.Message != cfg.Messages.PlayerWins {
			t.Errorf("Message = %q, want %q", gs.Message, cfg.Messages.PlayerWins)
		}
	})

	t.Run("both in range, higher total wins", func(t *testing.T) {
		gs := testState([]Card{card("10")}, []Card{card("3")}, nil)
		gs.Players.AI.Piles[0].Cards = []Card{card("8"), card("9"), card("5")}     // 22
		gs.Players.AI.Piles[1].Cards = []Card{card("10"), card("9"), card("4")}    // 23
		gs.Players.AI.Piles[2].Cards = []Card{card("6"), card("7"), card("8")}     // 21: 66 total
		gs.Players.Player.Piles[0].Cards = []Card{card("8"), card("9"), card("4")} // 21
		gs.Players.Player.Piles[1].Cards = []Card{card("4"), card("8")}            // 12
		gs.Players.Player.Piles[2].Cards = []Card{card("6"), card("7"), card("8")} // 21
		tenID := gs.Players.Player.Hand[0].ID

		if !gs.ApplyMove(cfg, SidePlayer, SidePlayer, tenID, 1, nil) {
			t.Fatalf("move rejected: %q", gs.Message)
		}
		// Player: 21+22+21 = 64, AI: 66.
		if gs.Winner != WinnerAI {
			t.Errorf("Winner = %q, want %q", gs.Winner, WinnerAI)
		}
		if gs.Message != cfg.Messages.AIWins {
			t.Errorf("Message = %q, want %q", gs.Message, cfg.Messages.AIWins)
		}
	})

	t.Run("both in range, equal totals tie", func(t *testing.T) {
		gs := testState([]Card{card("10")}, []Card{card("3")}, nil)
		for i := 0; i < PileCount; i++ {
			gs.Players.AI.Piles[i].Cards = []Card{card("8"), card("9"), card("5")} // 22 each
		}
		gs.Players.Player.Piles[0].Cards = []Card{card("8"), card("9"), card("5")} // 22
		gs.Players.Player.Piles[1].Cards = []Card{card("4"), card("8")}            // 12
		gs.Players.Player.Piles[2].Cards = []Card{card("8"), card("9"), card("5")} // 22
		tenID := gs.Players.Player.Hand[0].ID

		if !gs.ApplyMove(cfg, SidePlayer, SidePlayer, tenID, 1, nil) {
			t.Fatalf("move rejected: %q", gs.Message)
		}
		if gs.Winner != WinnerTie {
			t.Errorf("Winner = %q, want %q", gs.Winner, WinnerTie)
		}
		if gs.Message != cfg.Messages.TieGame {
			t.Errorf("Message = %q, want %q", gs.Message, cfg.Messages.TieGame)
		}
	})

	t.Run("finished game ignores moves", func(t *testing.T) {
		gs := testState([]Card{card("5")}, []Card{card("3")}, nil)
		gs.GameOver = true
		gs.Winner = WinnerPlayer
		id := gs.Players.Player.Hand[0].ID
		if gs.ApplyMove(cfg, SidePlayer, SidePlayer, id, 0, nil) {
			t.Fatal("move accepted on a finished game")
		}
		if gs.MoveCount != 0 || len(gs.MoveLog) != 0 {
			t.Error("finished game mutated")
		}
	})
}

func TestForfeitTurn(t *testing.T) {
	cfg := DefaultRulesConfig()
	gs := testState([]Card{card("5")}, []Card{card("3")}, nil)
	gs.Turn = SideAI

	gs.ForfeitTurn(SideAI, cfg.Messages.OpponentSkipped)
	if gs.Turn != SidePlayer {
		t.Errorf("Turn = %s, want %s", gs.Turn, SidePlayer)
	}
	if gs.Message != cfg.Messages.OpponentSkipped {
		t.Errorf("Message = %q, want %q", gs.Message, cfg.Messages.OpponentSkipped)
	}
	if gs.MoveCount != 0 || len(gs.MoveLog) != 0 {
		t.Error("forfeit must not record a move")
	}

	// Out of turn or game over: no effect.
	gs.ForfeitTurn(SideAI, "ignored")
	if gs.Turn != SidePlayer || gs.Message == "ignored" {
		t.Error("out-of-turn forfeit changed the state")
	}
}

func TestClone(t *testing.T) {
	cfg := DefaultRulesConfig()
	gs, err := NewGame(cfg, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	clone := gs.Clone()

	clone.Players.Player.Hand[0].Rank = "X"
	clone.Players.Player.Piles[0].Cards = append(clone.Players.Player.Piles[0].Cards, card("5"))
	clone.Deck = clone.Deck[:1]
	clone.Turn = SideAI

	if gs.Players.Player.Hand[0].Rank == "X" {
		t.Error("clone shares hand backing array")
	}
	if len(gs.Players.Player.Piles[0].Cards) != 0 {
		t.Error("clone shares pile backing array")
	}
	if len(gs.Deck) == 1 {
		t.Error("clone shares deck slice")
	}
	if gs.Turn != SidePlayer {
		t.Error("clone shares turn")
	}
}
