// Package pick implements the exclusion-aware random content picker. The
// picker itself is side-effect free with respect to session state: the caller
// records the chosen title into the session's exclusion set, and applies the
// reset when the picker signals exhaustion.
package pick

import (
	"errors"
	"math/rand"

	"ai-writerbot-be/internal/entity"
)

// ErrNoContent is returned only when the author has zero poems at all.
// Exhaustion of unseen poems never fails; it resets the exclusions instead.
var ErrNoContent = errors.New("no content available to pick from")

// Picker chooses a random poem from a candidate set, avoiding exclusions.
// The random source is injected so tests can seed it.
type Picker struct {
	rng *rand.Rand
}

func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// Result carries the chosen poem and whether the caller must reset the
// session's exclusion set (every candidate had already been shown).
type Result struct {
	Poem           entity.PoemEntry
	ExclusionReset bool
}

// Pick filters out excluded titles and chooses uniformly at random from the
// remainder. When every candidate is excluded it retries against the full,
// unfiltered set and flags ExclusionReset, so the operation only fails when
// candidates is empty.
func (p *Picker) Pick(candidates []entity.PoemEntry, exclude map[string]bool) (Result, error) {
	if len(candidates) == 0 {
		return Result{}, ErrNoContent
	}

	remaining := make([]entity.PoemEntry, 0, len(candidates))
	for _, c := range candidates {
		if !exclude[c.Title] {
			remaining = append(remaining, c)
		}
	}

	if len(remaining) > 0 {
		return Result{Poem: remaining[p.rng.Intn(len(remaining))]}, nil
	}

	return Result{
		Poem:           candidates[p.rng.Intn(len(candidates))],
		ExclusionReset: true,
	}, nil
}
