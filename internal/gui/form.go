package gui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/hanzicards/internal/suggest"
)

// entryForm is the "Add New Word" form with one entry per card field
type entryForm struct {
	hanzi      *widget.Entry
	pinyin     *widget.Entry
	english    *widget.Entry
	vietnamese *widget.Entry
}

func newEntryForm(onSubmit func()) *entryForm {
	f := &entryForm{
		hanzi:      widget.NewEntry(),
		pinyin:     widget.NewEntry(),
		english:    widget.NewEntry(),
		vietnamese: widget.NewEntry(),
	}
	f.hanzi.SetPlaceHolder("汉字")
	f.pinyin.SetPlaceHolder("pīnyīn")
	f.english.SetPlaceHolder("English meaning")
	f.vietnamese.SetPlaceHolder("Nghĩa tiếng Việt")

	for _, e := range f.entries() {
		e.OnSubmitted = func(string) { onSubmit() }
	}
	return f
}

// entries returns the entries in card field order
func (f *entryForm) entries() []*widget.Entry {
	return []*widget.Entry{f.hanzi, f.pinyin, f.english, f.vietnamese}
}

func (f *entryForm) values() (hanzi, pinyin, english, vietnamese string) {
	return f.hanzi.Text, f.pinyin.Text, f.english.Text, f.vietnamese.Text
}

func (f *entryForm) clear() {
	for _, e := range f.entries() {
		e.SetText("")
	}
}

// fillBlank copies s into the entries the user left empty
func (f *entryForm) fillBlank(s suggest.Suggestion) {
	for _, pair := range []struct {
		entry *widget.Entry
		value string
	}{
		{f.pinyin, s.Pinyin},
		{f.english, s.English},
		{f.vietnamese, s.Vietnamese},
	} {
		if strings.TrimSpace(pair.entry.Text) == "" {
			pair.entry.SetText(pair.value)
		}
	}
}

// owns reports whether o is one of the form entries
func (f *entryForm) owns(o fyne.Focusable) bool {
	for _, e := range f.entries() {
		if o == fyne.Focusable(e) {
			return true
		}
	}
	return false
}

func (f *entryForm) content() fyne.CanvasObject {
	form := widget.NewForm(
		widget.NewFormItem("Hanzi", f.hanzi),
		widget.NewFormItem("Pinyin", f.pinyin),
		widget.NewFormItem("English", f.english),
		widget.NewFormItem("Vietnamese", f.vietnamese),
	)
	return widget.NewCard("Add New Word", "", form)
}
