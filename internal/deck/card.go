package deck

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Card is a single vocabulary entry
type Card struct {
	Hanzi      string `json:"hanzi"`
	Pinyin     string `json:"pinyin"`
	English    string `json:"english"`
	Vietnamese string `json:"vietnamese"`
}

// NewCard trims the four fields and returns a validated card
func NewCard(hanzi, pinyin, english, vietnamese string) (Card, error) {
	card := Card{
		Hanzi:      strings.TrimSpace(hanzi),
		Pinyin:     strings.TrimSpace(pinyin),
		English:    strings.TrimSpace(english),
		Vietnamese: strings.TrimSpace(vietnamese),
	}
	if err := card.Validate(); err != nil {
		return Card{}, err
	}
	return card, nil
}

// Validate reports every blank field as a *ValidationError
func (c Card) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Hanzi, validation.Required, validation.By(notBlank)),
		validation.Field(&c.Pinyin, validation.Required, validation.By(notBlank)),
		validation.Field(&c.English, validation.Required, validation.By(notBlank)),
		validation.Field(&c.Vietnamese, validation.Required, validation.By(notBlank)),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate card: %w", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for name := range fieldErrs {
		fields = append(fields, name)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fieldOrder(fields[i]) < fieldOrder(fields[j])
	})
	return &ValidationError{Fields: fields}
}

// Fields returns the card values in storage order
func (c Card) Fields() []string {
	return []string{c.Hanzi, c.Pinyin, c.English, c.Vietnamese}
}

// FieldNames lists the JSON field names in storage order
var FieldNames = []string{"hanzi", "pinyin", "english", "vietnamese"}

func fieldOrder(name string) int {
	for i, n := range FieldNames {
		if n == name {
			return i
		}
	}
	return len(FieldNames)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// Deck is an ordered collection of cards. Append and RemoveAt never
// modify the receiver's backing array.
type Deck []Card

// Append returns a new deck with card added at the end
func (d Deck) Append(card Card) Deck {
	out := make(Deck, len(d), len(d)+1)
	copy(out, d)
	return append(out, card)
}

// RemoveAt returns a new deck without the card at index i
func (d Deck) RemoveAt(i int) (Deck, Card, error) {
	if i < 0 || i >= len(d) {
		return d, Card{}, fmt.Errorf("index %d out of range for deck of %d cards", i, len(d))
	}
	out := make(Deck, 0, len(d)-1)
	out = append(out, d[:i]...)
	out = append(out, d[i+1:]...)
	return out, d[i], nil
}

// Clone returns an independent copy of the deck
func (d Deck) Clone() Deck {
	if d == nil {
		return Deck{}
	}
	out := make(Deck, len(d))
	copy(out, d)
	return out
}
