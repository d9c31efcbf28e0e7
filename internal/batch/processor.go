package batch

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/hanzicards/internal/deck"
)

// Entry is one card parsed from a batch file
type Entry struct {
	Line int
	Card deck.Card
}

// LineError reports a batch line that could not be turned into a card
type LineError struct {
	Line   int
	Text   string
	Fields int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: expected 4 fields (hanzi|pinyin|english|vietnamese), got %d", e.Line, e.Fields)
}

// SkippedLinesError collects every LineError of a batch file. The entries
// returned alongside it are still valid.
type SkippedLinesError struct {
	Errors []*LineError
}

func (e *SkippedLinesError) Error() string {
	return fmt.Sprintf("%d batch line(s) skipped", len(e.Errors))
}

func (e *SkippedLinesError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, le := range e.Errors {
		errs[i] = le
	}
	return errs
}

// ReadBatchFile reads cards from a file, one per line:
//
//	你好 | nǐ hǎo | hello | xin chào
//
// Fields are separated by '|' or a TAB. Blank lines and lines starting with
// '#' are ignored. Lines with the wrong number of fields are skipped and
// reported through a *SkippedLinesError.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return parse(content)
}

func parse(content []byte) ([]Entry, error) {
	var entries []Entry
	var skipped []*LineError

	scanner := bufio.NewScanner(bytes.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitFields(line)
		if len(fields) != 4 {
			skipped = append(skipped, &LineError{Line: lineNo, Text: line, Fields: len(fields)})
			continue
		}

		entries = append(entries, Entry{
			Line: lineNo,
			Card: deck.Card{
				Hanzi:      fields[0],
				Pinyin:     fields[1],
				English:    fields[2],
				Vietnamese: fields[3],
			},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan batch file: %w", err)
	}

	if len(skipped) > 0 {
		return entries, &SkippedLinesError{Errors: skipped}
	}
	return entries, nil
}

// splitFields splits on '|' when present, otherwise on TAB
func splitFields(line string) []string {
	sep := "\t"
	if strings.Contains(line, "|") {
		sep = "|"
	}
	parts := strings.Split(line, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
