// Package deck holds the vocabulary card model and its on-disk
// representation. A Deck is an ordered list of Cards stored as a single
// JSON file that is rewritten in full on every save.
package deck
