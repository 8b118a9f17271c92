// Package catalog finds puzzle files on disk and in the embedded defaults.
// It depends on puzzle and formats; neither depends on catalog.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hive/internal/puzzle"
	"github.com/vovakirdan/hive/internal/puzzle/formats"
)

// SourceEmbedded marks entries that ship inside the binary.
const SourceEmbedded = "embedded"

//go:embed defaults/*
var defaultFS embed.FS

// Entry is one puzzle known to the catalog.
type Entry struct {
	ID     string
	Name   string
	Source string // File path, or SourceEmbedded
	Raw    puzzle.Raw
}

// Catalog holds the puzzles available to a session, keyed by ID.
// Directory entries override embedded ones with the same ID.
type Catalog struct {
	entries map[string]Entry
	logger  *log.Logger
}

// New creates a catalog pre-filled with the embedded default puzzles.
func New(logger *log.Logger) *Catalog {
	c := &Catalog{
		entries: make(map[string]Entry),
		logger:  logger,
	}
	c.loadEmbedded()
	return c
}

// loadEmbedded adds every puzzle under defaults/.
func (c *Catalog) loadEmbedded() {
	files, err := fs.ReadDir(defaultFS, "defaults")
	if err != nil {
		c.warn("cannot read embedded puzzles", "error", err)
		return
	}

	for _, f := range files {
		name := path.Join("defaults", f.Name())
		data, err := defaultFS.ReadFile(name)
		if err != nil {
			c.warn("cannot read embedded puzzle", "file", name, "error", err)
			continue
		}
		raw, err := formats.Parse(data, path.Ext(name))
		if err != nil {
			c.warn("skipping embedded puzzle", "file", name, "error", err)
			continue
		}
		c.add(raw, name, SourceEmbedded)
	}
}

// LoadDir recursively scans dir and adds every supported puzzle file.
// Files that fail to parse are skipped and logged.
func (c *Catalog) LoadDir(dir string) error {
	err := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.Supported(filepath.Ext(p)) {
			return nil
		}

		raw, err := LoadFile(p)
		if err != nil {
			c.warn("skipping puzzle file", "file", p, "error", err)
			return nil
		}
		c.add(raw, p, p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("catalog: walking directory %s: %w", dir, err)
	}
	return nil
}

// add registers raw, deriving the ID from the file name when absent.
func (c *Catalog) add(raw puzzle.Raw, file, source string) {
	if raw.ID == "" {
		raw.ID = stem(file)
	}
	if prev, ok := c.entries[raw.ID]; ok && prev.Source != SourceEmbedded {
		c.warn("duplicate puzzle id", "id", raw.ID, "kept", source, "dropped", prev.Source)
	}
	name := raw.Name
	if name == "" {
		name = raw.ID
	}
	c.entries[raw.ID] = Entry{
		ID:     raw.ID,
		Name:   name,
		Source: source,
		Raw:    raw,
	}
}

// List returns all entries sorted by ID.
func (c *Catalog) List() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Get looks up an entry by ID.
func (c *Catalog) Get(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Definition resolves id to a playable puzzle. Unknown IDs and malformed
// puzzles both yield the placeholder.
func (c *Catalog) Definition(id string) puzzle.Definition {
	e, ok := c.entries[id]
	if !ok {
		c.warn("unknown puzzle", "id", id)
		return puzzle.Placeholder()
	}
	return puzzle.LoadOrPlaceholder(e.Raw, c.logger)
}

func (c *Catalog) warn(msg string, keyvals ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, keyvals...)
	}
}

// LoadFile reads and parses a single puzzle file. The ID defaults to the
// file name without extension.
func LoadFile(p string) (puzzle.Raw, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return puzzle.Raw{}, fmt.Errorf("catalog: reading file %s: %w", p, err)
	}

	raw, err := formats.Parse(data, filepath.Ext(p))
	if err != nil {
		return puzzle.Raw{}, fmt.Errorf("catalog: parsing file %s: %w", p, err)
	}
	if raw.ID == "" {
		raw.ID = stem(p)
	}
	return raw, nil
}

func stem(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
