package deck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultFileName is the name of the data file inside the state directory
const DefaultFileName = "flashcards.json"

// Store persists a whole Deck
type Store interface {
	Load() (Deck, error)
	Save(Deck) error
}

// FileStore keeps the deck in a single JSON file
type FileStore struct {
	path string
	log  zerolog.Logger
}

// NewFileStore creates a store for the given file path. The file does not
// need to exist yet.
func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{
		path: path,
		log:  log.With().Str("component", "deck").Logger(),
	}
}

// Path returns the data file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the deck. A missing or empty file is an empty deck.
func (s *FileStore) Load() (Deck, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Str("path", s.path).Msg("no data file yet, starting with an empty deck")
		return Deck{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Deck{}, nil
	}

	var records []storedCard
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}

	cards := make([]Card, 0, len(records))
	for i, rec := range records {
		card, err := rec.card()
		if err != nil {
			return nil, &CorruptError{Path: s.path, Err: fmt.Errorf("card %d: %w", i, err)}
		}
		cards = append(cards, card)
	}

	s.log.Debug().Str("path", s.path).Int("cards", len(cards)).Msg("deck loaded")
	return Deck(cards).Clone(), nil
}

// storedCard is a Card as read from disk. Pointers tell an absent or null
// key apart from an empty string; field content is not checked here.
type storedCard struct {
	Hanzi      *string `json:"hanzi"`
	Pinyin     *string `json:"pinyin"`
	English    *string `json:"english"`
	Vietnamese *string `json:"vietnamese"`
}

func (r storedCard) card() (Card, error) {
	values := []*string{r.Hanzi, r.Pinyin, r.English, r.Vietnamese}
	var missing []string
	for i, v := range values {
		if v == nil {
			missing = append(missing, FieldNames[i])
		}
	}
	if len(missing) > 0 {
		return Card{}, fmt.Errorf("record lacks keys: %s", strings.Join(missing, ", "))
	}
	return Card{Hanzi: *r.Hanzi, Pinyin: *r.Pinyin, English: *r.English, Vietnamese: *r.Vietnamese}, nil
}

// Save overwrites the data file with the full deck. The new content is
// written to a temporary file and renamed into place.
func (s *FileStore) Save(d Deck) error {
	data, err := Encode(d)
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &WriteError{Path: s.path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &WriteError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	s.log.Debug().Str("path", s.path).Int("cards", len(d)).Msg("deck saved")
	return nil
}

// Encode renders the deck the way it is stored on disk: a JSON array
// indented by four spaces with non-ASCII text kept as is.
func Encode(d Deck) ([]byte, error) {
	if d == nil {
		d = Deck{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode deck: %w", err)
	}
	return buf.Bytes(), nil
}
