package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const hotkeysHelp = `## Card
**Space** Flip card  
**n** Next card  
**d** Delete card  

## Form
**Enter** Add word (in any field)  
**s** Suggest missing fields  
**Esc** Unfocus field  

## Window
**t** Toggle dark mode  
**h** Show hotkeys  
**q** Quit application  

---
Hotkeys work while no form field is focused.`

// setupKeyboardShortcuts installs the single-key shortcuts on the canvas
func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		// Handle Escape key to unfocus any field
		if ev.Name == fyne.KeyEscape {
			a.window.Canvas().Unfocus()
			return
		}

		// If a form entry is focused, let the key be typed normally
		if focused := a.window.Canvas().Focused(); focused != nil && a.form.owns(focused) {
			return
		}

		a.handleShortcutKey(ev.Name)
	})
}

// handleShortcutKey handles the actual shortcut action
func (a *Application) handleShortcutKey(key fyne.KeyName) {
	// The confirmation dialog owns the keyboard while open
	if a.deleteConfirming {
		return
	}

	switch key {
	case fyne.KeySpace:
		a.onFlip()
	case fyne.KeyN:
		if !a.nextButton.Disabled() {
			a.onNext()
		}
	case fyne.KeyD:
		if !a.deleteButton.Disabled() {
			a.onDelete()
		}
	case fyne.KeyT:
		a.onToggleTheme()
	case fyne.KeyS:
		a.onSuggest()
	case fyne.KeyH:
		a.onShowHotkeys()
	case fyne.KeyQ:
		a.window.Close()
	}
}

// onShowHotkeys displays the keyboard shortcuts
func (a *Application) onShowHotkeys() {
	content := widget.NewRichTextFromMarkdown(hotkeysHelp)
	content.Wrapping = fyne.TextWrapWord

	scroll := container.NewScroll(container.NewPadded(content))
	scroll.SetMinSize(fyne.NewSize(360, 380))

	dialog.NewCustom("Keyboard Shortcuts", "Close", scroll, a.window).Show()
}
