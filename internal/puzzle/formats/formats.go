// Package formats provides pluggable puzzle file parsers keyed by extension.
// Parsers only decode; validation happens in puzzle.Load.
package formats

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hive/internal/puzzle"
)

// Parser decodes file contents into a raw puzzle record.
type Parser func(data []byte) (puzzle.Raw, error)

// File is the on-disk puzzle record. The key names follow the play data
// written by the dictionary tools.
type File struct {
	ID           string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	KeyLetter    string   `json:"key_letter" yaml:"key_letter"`
	OtherLetters []string `json:"other_letters" yaml:"other_letters"`
	Words        []string `json:"words" yaml:"words"`
	TotalWords   int      `json:"total_words" yaml:"total_words"`
}

// Raw converts the file record into loader input.
func (f File) Raw() puzzle.Raw {
	return puzzle.Raw{
		ID:         f.ID,
		Name:       f.Name,
		Required:   f.KeyLetter,
		Others:     f.OtherLetters,
		Answers:    f.Words,
		TotalWords: f.TotalWords,
	}
}

var (
	parsers = make(map[string]Parser)
	mu      sync.RWMutex
)

func init() {
	Register(".json", ParseJSON)
	Register(".yaml", ParseYAML)
	Register(".yml", ParseYAML)
}

// Register adds a parser for a file extension (with the leading dot).
// Panics if the extension is already registered.
func Register(ext string, p Parser) {
	mu.Lock()
	defer mu.Unlock()

	ext = strings.ToLower(ext)
	if _, exists := parsers[ext]; exists {
		panic(fmt.Sprintf("formats: extension %q already registered", ext))
	}
	parsers[ext] = p
}

// Supported reports whether ext has a registered parser.
func Supported(ext string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := parsers[strings.ToLower(ext)]
	return ok
}

// Extensions returns the registered extensions, sorted.
func Extensions() []string {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]string, 0, len(parsers))
	for ext := range parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Parse routes data to the parser registered for ext.
func Parse(data []byte, ext string) (puzzle.Raw, error) {
	mu.RLock()
	p, ok := parsers[strings.ToLower(ext)]
	mu.RUnlock()

	if !ok {
		return puzzle.Raw{}, fmt.Errorf("formats: unsupported extension %q", ext)
	}
	return p(data)
}

// ParseJSON parses a JSON puzzle file.
func ParseJSON(data []byte) (puzzle.Raw, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return puzzle.Raw{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return f.Raw(), nil
}

// ParseYAML parses a YAML puzzle file.
func ParseYAML(data []byte) (puzzle.Raw, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return puzzle.Raw{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return f.Raw(), nil
}
