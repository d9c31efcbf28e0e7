package gui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"github.com/rs/zerolog"

	"codeberg.org/snonux/hanzicards/internal"
	"codeberg.org/snonux/hanzicards/internal/deck"
	"codeberg.org/snonux/hanzicards/internal/session"
	"codeberg.org/snonux/hanzicards/internal/suggest"
)

// Window geometry of the flashcard app
const (
	windowWidth  = 600
	windowHeight = 680
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	card        *CardView
	form        *entryForm
	statusLabel   *widget.Label
	positionLabel *widget.Label

	addButton     *ttwidget.Button
	deleteButton  *ttwidget.Button
	nextButton    *ttwidget.Button
	themeButton   *ttwidget.Button
	suggestButton *ttwidget.Button
	helpButton    *ttwidget.Button

	// State management
	session          *session.Controller
	deleteConfirming bool // Track if the delete confirmation is showing

	// Configuration
	config *Config
	log    zerolog.Logger

	// Background suggestion requests
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Config holds GUI application configuration
type Config struct {
	Suggester      suggest.Provider // nil disables the Suggest button
	SuggestTimeout time.Duration
	Logger         zerolog.Logger
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	return &Config{
		SuggestTimeout: suggest.DefaultTimeout,
		Logger:         zerolog.Nop(),
	}
}

// NewFyneApp creates the Fyne application the GUI runs in
func NewFyneApp() fyne.App {
	return app.NewWithID("org.codeberg.snonux.hanzicards")
}

// New creates a new GUI application around an already loaded session
func New(fyneApp fyne.App, ctrl *session.Controller, config *Config) *Application {
	if config == nil {
		config = DefaultConfig()
	} else if config.SuggestTimeout <= 0 {
		config.SuggestTimeout = suggest.DefaultTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())

	a := &Application{
		app:     fyneApp,
		session: ctrl,
		config:  config,
		log:     config.Logger.With().Str("component", "gui").Logger(),
		ctx:     ctx,
		cancel:  cancel,
	}

	a.setupUI()
	a.applyTheme()
	a.refresh()

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Chinese Flashcard App v%s", internal.Version))
	a.window.Resize(fyne.NewSize(windowWidth, windowHeight))
	a.window.SetFixedSize(true)

	a.card = NewCardView(a.onFlip)
	a.form = newEntryForm(a.onAdd)

	// Tooltips are set after the tooltip layer exists
	a.addButton = ttwidget.NewButtonWithIcon("Add", theme.ContentAddIcon(), a.onAdd)
	a.deleteButton = ttwidget.NewButtonWithIcon("Delete", theme.DeleteIcon(), a.onDelete)
	a.deleteButton.Importance = widget.DangerImportance
	a.nextButton = ttwidget.NewButtonWithIcon("Next", theme.NavigateNextIcon(), a.onNext)
	a.themeButton = ttwidget.NewButtonWithIcon("Toggle Dark Mode", theme.ColorPaletteIcon(), a.onToggleTheme)
	a.suggestButton = ttwidget.NewButtonWithIcon("Suggest", theme.SearchIcon(), a.onSuggest)
	a.helpButton = ttwidget.NewButtonWithIcon("", theme.HelpIcon(), a.onShowHotkeys)

	buttons := container.NewHBox(a.addButton, a.deleteButton, a.nextButton)
	if a.config.Suggester != nil {
		buttons.Add(a.suggestButton)
	}

	a.statusLabel = widget.NewLabel("Ready")
	a.statusLabel.TextStyle = fyne.TextStyle{Italic: true}
	a.positionLabel = widget.NewLabel("")

	bottom := container.NewVBox(
		a.form.content(),
		container.NewCenter(buttons),
		container.NewCenter(a.themeButton),
		container.NewBorder(nil, nil, nil, container.NewHBox(a.positionLabel, a.helpButton), a.statusLabel),
	)

	content := container.NewBorder(
		nil,
		bottom,
		nil, nil,
		container.New(layout.NewCustomPaddedLayout(20, 10, 20, 20), a.card),
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.setupTooltips()

	a.window.SetOnClosed(func() {
		a.cancel()
		a.wg.Wait()
	})

	a.setupKeyboardShortcuts()
}

// setupTooltips sets up all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.addButton.SetToolTip("Add the word from the form (Enter)")
	a.deleteButton.SetToolTip("Delete the current card (d)")
	a.nextButton.SetToolTip("Show a random other card (n)")
	a.themeButton.SetToolTip("Switch between light and dark mode (t)")
	a.suggestButton.SetToolTip("Fill empty fields from the hanzi (s)")
	a.helpButton.SetToolTip("Show hotkeys (h)")
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// refresh derives every widget property from the session state
func (a *Application) refresh() {
	view := a.session.CurrentView()
	a.card.Render(view, paletteFor(a.session.Theme()))

	if view.Empty {
		a.deleteButton.Disable()
		a.nextButton.Disable()
		a.positionLabel.SetText("")
	} else {
		a.deleteButton.Enable()
		a.nextButton.Enable()
		a.positionLabel.SetText(fmt.Sprintf("Card %d of %d", view.Index+1, view.Total))
	}
}

// applyTheme installs the theme matching the session
func (a *Application) applyTheme() {
	a.app.Settings().SetTheme(newAppTheme(a.session.Theme()))
}

func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

func (a *Application) showError(err error) {
	a.log.Error().Err(err).Msg("operation failed")
	dialog.ShowError(err, a.window)
	a.updateStatus("Error: " + err.Error())
}

// onFlip handles a tap on the card
func (a *Application) onFlip() {
	a.session.Flip()
	a.refresh()
}

// onAdd validates the form and appends a new card
func (a *Application) onAdd() {
	err := a.session.AddCard(a.form.values())
	if errors.Is(err, deck.ErrValidation) {
		dialog.ShowInformation("Missing Fields", "Please fill in all fields.", a.window)
		return
	}
	if err != nil {
		a.showError(err)
		a.refresh()
		return
	}

	a.form.clear()
	a.window.Canvas().Unfocus()
	a.refresh()
	a.updateStatus(fmt.Sprintf("Added card %d", a.session.Len()))
}

// onDelete asks for confirmation before removing the current card
func (a *Application) onDelete() {
	if a.session.Len() == 0 || a.deleteConfirming {
		return
	}

	a.deleteConfirming = true
	dialog.ShowConfirm("Confirm Delete", "Are you sure you want to delete this word?", a.confirmDelete, a.window)
}

// confirmDelete is the answer of the delete confirmation dialog
func (a *Application) confirmDelete(confirmed bool) {
	a.deleteConfirming = false
	if confirmed {
		a.deleteCurrent()
	}
}

func (a *Application) deleteCurrent() {
	if err := a.session.DeleteCurrent(); err != nil {
		a.showError(err)
	} else {
		a.updateStatus(fmt.Sprintf("%d card(s) left", a.session.Len()))
	}
	a.refresh()
}

// onNext shows a random other card
func (a *Application) onNext() {
	a.session.NextCard()
	a.refresh()
}

// onToggleTheme switches between light and dark mode
func (a *Application) onToggleTheme() {
	a.session.ToggleTheme()
	a.applyTheme()
	a.refresh()
}

// onSuggest asks the suggestion provider for the fields of the typed hanzi
func (a *Application) onSuggest() {
	if a.config.Suggester == nil || a.suggestButton.Disabled() {
		return
	}

	hanzi := strings.TrimSpace(a.form.hanzi.Text)
	if hanzi == "" {
		dialog.ShowInformation("Missing Hanzi", "Please enter the hanzi first.", a.window)
		return
	}

	if err := a.config.Suggester.IsAvailable(); err != nil {
		a.updateStatus("Suggestions unavailable: " + err.Error())
		return
	}

	a.suggestButton.Disable()
	a.updateStatus(fmt.Sprintf("Asking %s about %s...", a.config.Suggester.Name(), hanzi))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(a.ctx, a.config.SuggestTimeout)
		defer cancel()

		s, err := a.config.Suggester.Suggest(ctx, hanzi)
		fyne.Do(func() {
			a.finishSuggestion(hanzi, s, err)
		})
	}()
}

func (a *Application) finishSuggestion(hanzi string, s suggest.Suggestion, err error) {
	a.suggestButton.Enable()

	if err != nil {
		a.log.Warn().Err(err).Str("hanzi", hanzi).Msg("suggestion failed")
		a.updateStatus("Suggestion failed: " + err.Error())
		return
	}
	// The user may have moved on to another word meanwhile
	if strings.TrimSpace(a.form.hanzi.Text) != hanzi {
		a.updateStatus("Suggestion discarded, hanzi changed")
		return
	}

	a.form.fillBlank(s)
	a.updateStatus("Suggestion filled in, check before adding")
}
