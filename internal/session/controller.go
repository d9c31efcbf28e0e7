package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/hanzicards/internal/deck"
)

// Controller owns the deck and the session state. It is not safe for
// concurrent use; all calls are expected from the UI goroutine.
type Controller struct {
	store deck.Store
	cards deck.Deck

	index int
	front bool
	theme Theme

	rng *rand.Rand
	log zerolog.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithRand sets the random source used by NextCard
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = r
	}
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// New loads the deck from store and starts a session on the first card,
// front face, light theme. A corrupt data file is returned as an error.
func New(store deck.Store, opts ...Option) (*Controller, error) {
	c := &Controller{
		store: store,
		front: true,
		theme: ThemeLight,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	c.log = c.log.With().Str("component", "session").Logger()

	cards, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	c.cards = cards.Clone()

	c.log.Info().Int("cards", len(c.cards)).Msg("session started")
	return c, nil
}

// Flip toggles between front and back of the current card
func (c *Controller) Flip() {
	if len(c.cards) == 0 {
		return
	}
	c.front = !c.front
}

// AddCard appends a new card, persists the deck and makes the new card
// current on its front face. Blank fields yield a *deck.ValidationError
// and leave everything untouched.
func (c *Controller) AddCard(hanzi, pinyin, english, vietnamese string) error {
	card, err := deck.NewCard(hanzi, pinyin, english, vietnamese)
	if err != nil {
		return err
	}

	next := c.cards.Append(card)
	if err := c.commit(next, len(next)-1); err != nil {
		return err
	}

	c.log.Info().Str("hanzi", card.Hanzi).Int("cards", len(c.cards)).Msg("card added")
	return nil
}

// DeleteCurrent removes the current card and persists the deck. The
// session moves to the last card. On an empty deck it does nothing.
func (c *Controller) DeleteCurrent() error {
	if len(c.cards) == 0 {
		return nil
	}

	next, removed, err := c.cards.RemoveAt(c.index)
	if err != nil {
		return err
	}
	if err := c.commit(next, max(0, len(next)-1)); err != nil {
		return err
	}

	c.log.Info().Str("hanzi", removed.Hanzi).Int("cards", len(c.cards)).Msg("card deleted")
	return nil
}

// commit saves next and only then swaps it in, so a failed save leaves
// the in-memory deck and position exactly as they were.
func (c *Controller) commit(next deck.Deck, index int) error {
	if err := c.store.Save(next); err != nil {
		c.log.Error().Err(err).Msg("failed to persist deck, change rolled back")
		return fmt.Errorf("failed to save deck: %w", err)
	}
	c.cards = next
	c.index = index
	c.front = true
	return nil
}

// NextCard moves to a random card other than the current one and shows
// its front face. With a single card only the face is reset.
func (c *Controller) NextCard() {
	n := len(c.cards)
	if n == 0 {
		return
	}
	if n > 1 {
		// Draw among the n-1 other positions and skip over the current one.
		i := c.rng.IntN(n - 1)
		if i >= c.index {
			i++
		}
		c.index = i
	}
	c.front = true
}

// ToggleTheme switches between light and dark
func (c *Controller) ToggleTheme() {
	if c.theme == ThemeLight {
		c.theme = ThemeDark
	} else {
		c.theme = ThemeLight
	}
	c.log.Debug().Stringer("theme", c.theme).Msg("theme toggled")
}

// CurrentView projects the current card and face for rendering
func (c *Controller) CurrentView() View {
	if len(c.cards) == 0 {
		return View{Empty: true}
	}
	return newView(c.cards[c.index], c.front, c.index, len(c.cards))
}

// Len returns the number of cards in the deck
func (c *Controller) Len() int { return len(c.cards) }

// Index returns the current position. It is meaningless on an empty deck.
func (c *Controller) Index() int { return c.index }

// ShowingFront reports whether the front face is visible
func (c *Controller) ShowingFront() bool { return c.front }

// Theme returns the active theme
func (c *Controller) Theme() Theme { return c.theme }

// Cards returns a copy of the deck
func (c *Controller) Cards() deck.Deck { return c.cards.Clone() }
