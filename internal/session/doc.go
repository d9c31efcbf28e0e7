// Package session implements the study session on top of a deck store.
// The Controller owns the deck and the transient view state (current
// card, visible face, theme) and persists every deck mutation before
// returning.
package session
