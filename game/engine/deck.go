package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrNotEnoughCards is returned by Deal when the deck cannot cover the
// requested hand size.
var ErrNotEnoughCards = errors.New("not enough cards in deck")

// BuildDeck constructs a fresh 52-card deck in suit-then-rank order. Card ids
// are unique within the returned deck; the counter is local to this call so
// two decks never share hidden state.
func BuildDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	counter := 0
	for _, suit := range suits {
		for _, rank := range ranks {
			deck = append(deck, Card{
				ID:    fmt.Sprintf("%s-%s-%d", rank, suit, counter),
				Rank:  rank,
				Suit:  suit,
				Color: colorForSuit(suit),
			})
			counter++
		}
	}
	return deck
}

func colorForSuit(suit Suit) Color {
	if suit == Hearts || suit == Diamonds {
		return Red
	}
	return Black
}

// Shuffle returns a Fisher-Yates permutation of deck using rng. The input
// slice is not mutated.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Deal splits the first n cards into a hand and returns the remainder as a
// new deck. It errors rather than clamps when n exceeds the deck size; the
// caller decides whether a short deck is acceptable.
func Deal(deck []Card, n int) ([]Card, []Card, error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("deal: negative count %d", n)
	}
	if n > len(deck) {
		return nil, nil, fmt.Errorf("deal %d from %d: %w", n, len(deck), ErrNotEnoughCards)
	}
	hand := make([]Card, n)
	copy(hand, deck[:n])
	rest := make([]Card, len(deck)-n)
	copy(rest, deck[n:])
	return hand, rest, nil
}

// Draw removes the top card from the deck. ok is false when the deck is
// empty; an exhausted deck is not an error.
func Draw(deck []Card) (Card, []Card, bool) {
	if len(deck) == 0 {
		return Card{}, deck, false
	}
	rest := make([]Card, len(deck)-1)
	copy(rest, deck[1:])
	return deck[0], rest, true
}
