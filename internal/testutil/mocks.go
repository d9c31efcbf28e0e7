package testutil

import (
	"codeberg.org/snonux/hanzicards/internal/deck"
)

// MockStore is an in-memory deck.Store that records saves
type MockStore struct {
	Cards     deck.Deck
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// NewMockStore creates a store preloaded with cards
func NewMockStore(cards deck.Deck) *MockStore {
	return &MockStore{Cards: cards.Clone()}
}

// Load returns a copy of the stored cards
func (m *MockStore) Load() (deck.Deck, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Cards.Clone(), nil
}

// Save records the call and keeps a copy unless SaveErr is set
func (m *MockStore) Save(d deck.Deck) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cards = d.Clone()
	return nil
}
