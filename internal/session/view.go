package session

import "codeberg.org/snonux/hanzicards/internal/deck"

// Face is the visible side of the current card
type Face int

const (
	FaceFront Face = iota // hanzi and pinyin
	FaceBack              // english and vietnamese
)

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	default:
		return "unknown"
	}
}

// Theme is the visual theme of the session
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "unknown"
	}
}

// View is what the presentation layer renders. When Empty is set the deck
// has no cards and all other fields are zero.
type View struct {
	Empty bool
	Face  Face
	// Primary and Secondary are the two visible fields: hanzi and pinyin
	// on the front, english and vietnamese on the back.
	Primary   string
	Secondary string
	Card      deck.Card
	Index     int
	Total     int
}

func newView(card deck.Card, front bool, index, total int) View {
	v := View{Card: card, Index: index, Total: total}
	if front {
		v.Face = FaceFront
		v.Primary, v.Secondary = card.Hanzi, card.Pinyin
	} else {
		v.Face = FaceBack
		v.Primary, v.Secondary = card.English, card.Vietnamese
	}
	return v
}
