// Package ai implements the computer opponent: legal-move enumeration over a
// game state, a uniform random pick among candidates, and a cancellable
// think-delay scheduler so the opponent responds on a human timescale.
//
// The scheduler never applies moves itself. The owning service installs a
// fire callback that re-validates the generation, turn, and move count before
// playing, which makes resets and rule changes race-free: staling the
// generation is enough to disarm any timer already in flight.
package ai
