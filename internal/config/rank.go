package config

import (
	"sort"

	"github.com/vovakirdan/hive/internal/core"
)

// Rank is a named progress threshold shown next to the score.
type Rank struct {
	Name        string  `yaml:"name"`
	MinProgress float64 `yaml:"min_progress"` // 0.0 = start, 1.0 = every word found
}

// RankFor returns the highest rank whose threshold progress has reached.
// ranks must be sorted ascending (Validate does this). Returns the zero
// Rank when none apply.
func RankFor(ranks []Rank, progress float64) Rank {
	progress = core.ClampF(progress, 0.0, 1.0)

	var best Rank
	for _, r := range ranks {
		if progress+1e-9 < r.MinProgress {
			break
		}
		best = r
	}
	return best
}

// NextRank returns the first rank above the current progress, if any.
func NextRank(ranks []Rank, progress float64) (Rank, bool) {
	progress = core.ClampF(progress, 0.0, 1.0)
	for _, r := range ranks {
		if progress+1e-9 < r.MinProgress {
			return r, true
		}
	}
	return Rank{}, false
}

// sortRanks clamps thresholds into [0, 1] and orders them ascending.
func sortRanks(ranks []Rank) []Rank {
	out := make([]Rank, len(ranks))
	for i, r := range ranks {
		r.MinProgress = core.ClampF(r.MinProgress, 0.0, 1.0)
		out[i] = r
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MinProgress < out[j].MinProgress
	})
	return out
}
