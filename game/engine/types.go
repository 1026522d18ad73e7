package engine

// Rank identifies a card's face: "A", "2".."10", "J", "Q", "K".
type Rank string

// Suit identifies a card's suit.
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Color is derived from the suit.
type Color string

const (
	Red   Color = "red"
	Black Color = "black"
)

// Side identifies one of the two players.
type Side string

const (
	SidePlayer Side = "player"
	SideAI     Side = "ai"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideAI
	}
	return SidePlayer
}

// Valid reports whether s names a real side.
func (s Side) Valid() bool {
	return s == SidePlayer || s == SideAI
}

// Direction is a pile's numeric trend once established.
type Direction string

const (
	DirectionNone    Direction = "none"
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionInvalid Direction = "invalid"
)

// Winner values for GameState.Winner. Empty until the game ends.
const (
	WinnerPlayer = "player"
	WinnerAI     = "ai"
	WinnerTie    = "tie"
)

const (
	// DeckSize is the number of cards in a fresh deck.
	DeckSize = 52

	// PileCount is the number of piles each side builds.
	PileCount = 3

	// Validation constants for rule profiles.
	MinHandSize   = 1
	MaxHandSize   = 10
	MinThinkDelay = 0
	MaxThinkDelay = 10000

	WebSocketBufferSize = 256
)

var suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var ranks = []Rank{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Card is a single playing card. Rank and suit never change after creation;
// Removed is set once by a Jack effect and never cleared.
type Card struct {
	ID      string `json:"id"`
	Rank    Rank   `json:"rank"`
	Suit    Suit   `json:"suit"`
	Color   Color  `json:"color"`
	Removed bool   `json:"removed,omitempty"`
}

// Pile is an ordered sequence of cards in chronological play order. Cards are
// never reordered or spliced out; a Jack only flags its target Removed.
type Pile struct {
	Cards []Card `json:"cards"`
}

// Player owns a hand and exactly PileCount piles.
type Player struct {
	Hand  []Card `json:"hand"`
	Piles []Pile `json:"piles"`
}

// Players holds both sides of the table.
type Players struct {
	Player Player `json:"player"`
	AI     Player `json:"ai"`
}

// GameState is the aggregate root for one game. It is mutated only through
// ApplyMove, ForfeitTurn, and SetAIEnabled.
type GameState struct {
	Deck       []Card       `json:"deck"`
	Players    Players      `json:"players"`
	Turn       Side         `json:"turn"`
	AIEnabled  bool         `json:"ai_enabled"`
	GameOver   bool         `json:"game_over"`
	Winner     string       `json:"winner,omitempty"`
	Message    string       `json:"message,omitempty"`
	MoveCount  int          `json:"move_count"`
	MoveLog    []MoveRecord `json:"move_log"`
	ConfigName string       `json:"config_name"`
}

// MoveRecord is an append-only audit entry written once per accepted move.
type MoveRecord struct {
	Actor       Side  `json:"actor"`
	Target      Side  `json:"target"`
	CardRank    Rank  `json:"card_rank"`
	PileIndex   int   `json:"pile_index"`
	TargetIndex *int  `json:"target_index,omitempty"`
	TurnBefore  Side  `json:"turn_before"`
	TurnAfter   Side  `json:"turn_after"`
	Sequence    int   `json:"sequence"`
	Timestamp   int64 `json:"timestamp"`
}

// PileView is a read-only projection of one pile for display collaborators.
// Reversed flips when an odd number of non-removed Queens has been played; it
// is an indicator only and never alters the visible chronological order.
type PileView struct {
	Total     int       `json:"total"`
	Direction Direction `json:"direction"`
	Reversed  bool      `json:"reversed"`
}

// Totals aggregates one side's pile scores.
type Totals struct {
	PerPile []int `json:"per_pile"`
	Total   int   `json:"total"`
}

// side returns a pointer to the named player's state.
func (gs *GameState) side(s Side) *Player {
	if s == SideAI {
		return &gs.Players.AI
	}
	return &gs.Players.Player
}

// Hand returns the named side's hand.
func (gs *GameState) Hand(s Side) []Card {
	return gs.side(s).Hand
}

// PileCards returns the card sequence of one pile, or nil if the index is out
// of range.
func (gs *GameState) PileCards(s Side, pileIndex int) []Card {
	p := gs.side(s)
	if pileIndex < 0 || pileIndex >= len(p.Piles) {
		return nil
	}
	return p.Piles[pileIndex].Cards
}

// findInHand returns the index of the card with the given id, or -1.
func findInHand(hand []Card, cardID string) int {
	for i, c := range hand {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}
