package puzzle

import (
	"github.com/charmbracelet/log"
)

// LoadOrPlaceholder loads raw and falls back to Placeholder on failure so
// the UI always has a puzzle to show. The failure is logged, not returned.
func LoadOrPlaceholder(raw Raw, logger *log.Logger) Definition {
	def, err := Load(raw)
	if err != nil {
		if logger != nil {
			logger.Warn("using placeholder puzzle", "puzzle", raw.ID, "error", err)
		}
		return Placeholder()
	}
	return def
}
