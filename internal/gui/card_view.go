package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/hanzicards/internal/session"
)

// Text sizes of the two card lines
const (
	primaryTextSize   = 48
	secondaryTextSize = 20
)

// emptyDeckText is shown on the card when there is nothing to study
const emptyDeckText = "No Data"

// CardView is the tappable flashcard face
type CardView struct {
	widget.BaseWidget

	background *canvas.Rectangle
	primary    *canvas.Text
	secondary  *canvas.Text

	OnTapped func()
}

var _ fyne.Tappable = (*CardView)(nil)

// NewCardView creates an empty card face
func NewCardView(onTapped func()) *CardView {
	c := &CardView{OnTapped: onTapped}

	c.background = canvas.NewRectangle(lightPalette.CardBackground)
	c.background.CornerRadius = 8
	c.background.StrokeWidth = 3
	c.background.StrokeColor = lightPalette.Button

	c.primary = canvas.NewText("", lightPalette.CardForeground)
	c.primary.TextSize = primaryTextSize
	c.primary.TextStyle = fyne.TextStyle{Bold: true}
	c.primary.Alignment = fyne.TextAlignCenter

	c.secondary = canvas.NewText("", lightPalette.CardForeground)
	c.secondary.TextSize = secondaryTextSize
	c.secondary.Alignment = fyne.TextAlignCenter

	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *CardView) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewCenter(container.NewVBox(c.primary, c.secondary))
	return widget.NewSimpleRenderer(container.NewStack(c.background, container.NewPadded(text)))
}

// Tapped flips the card
func (c *CardView) Tapped(*fyne.PointEvent) {
	if c.OnTapped != nil {
		c.OnTapped()
	}
}

// Render paints v with the colours of p
func (c *CardView) Render(v session.View, p palette) {
	c.background.FillColor = p.CardBackground
	c.background.StrokeColor = p.Button

	if v.Empty {
		c.primary.Text = emptyDeckText
		c.primary.Color = p.Placeholder
		c.secondary.Text = ""
	} else {
		c.primary.Text = v.Primary
		c.primary.Color = p.CardForeground
		c.secondary.Text = v.Secondary
		c.secondary.Color = p.CardForeground
	}

	c.background.Refresh()
	c.primary.Refresh()
	c.secondary.Refresh()
}

// Text returns the two displayed lines
func (c *CardView) Text() (primary, secondary string) {
	return c.primary.Text, c.secondary.Text
}
