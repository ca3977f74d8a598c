package cardkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one discovered card: its corpus ID, its path on disk, and the
// parsed document.
type Entry struct {
	ID   string
	Path string
	Card Card
}

// LoadFailure records a card file that could not be parsed. Failures are
// data, not aborts: one bad file never stops a corpus run.
type LoadFailure struct {
	ID   string
	Path string
	Err  error
}

// Corpus is a loaded set of cards plus whatever failed to load.
type Corpus struct {
	Root     string
	Entries  []Entry
	Failures []LoadFailure
}

// Cards returns the corpus as an ID → card map.
func (c *Corpus) Cards() map[string]Card {
	out := make(map[string]Card, len(c.Entries))
	for _, e := range c.Entries {
		out[e.ID] = e.Card
	}
	return out
}

// DiscoverCards walks root for card JSON files, skipping dotfiles,
// backup directories, and anything under a templates directory.
// Returned paths are sorted so runs are deterministic.
func DiscoverCards(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case "templates", "backups":
				return filepath.SkipDir
			}
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover cards in %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// EntryID derives a card's corpus ID from its path: the parent directory
// name for the conventional character.json layout, the file stem
// otherwise.
func EntryID(path string) string {
	base := filepath.Base(path)
	if base == "character.json" {
		return filepath.Base(filepath.Dir(path))
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadCard reads and parses one card file.
func LoadCard(path string) (Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read card %s: %w", path, err)
	}
	var card Card
	if err := json.Unmarshal(data, &card); err != nil {
		return nil, fmt.Errorf("parse card %s: %w", path, err)
	}
	return card, nil
}

// LoadCorpus discovers and loads every card under root. Unparsable files
// become Failures; the rest of the corpus still loads.
func LoadCorpus(root string) (*Corpus, error) {
	paths, err := DiscoverCards(root)
	if err != nil {
		return nil, err
	}
	corpus := &Corpus{Root: root}
	for _, path := range paths {
		id := EntryID(path)
		card, err := LoadCard(path)
		if err != nil {
			corpus.Failures = append(corpus.Failures, LoadFailure{ID: id, Path: path, Err: err})
			continue
		}
		corpus.Entries = append(corpus.Entries, Entry{ID: id, Path: path, Card: card})
	}
	return corpus, nil
}

// SaveCard rewrites a card file: two-space indent, trailing newline,
// written to a temp file in the same directory and renamed into place so
// a crash never leaves a half-written card.
func SaveCard(path string, card Card) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(card); err != nil {
		return fmt.Errorf("marshal card %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".card-*.json")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write card %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close card %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace card %s: %w", path, err)
	}
	return nil
}
