package pick

import (
	"errors"
	"math/rand"
	"testing"

	"ai-writerbot-be/internal/entity"
)

func poemSet(titles ...string) []entity.PoemEntry {
	poems := make([]entity.PoemEntry, 0, len(titles))
	for _, title := range titles {
		poems = append(poems, entity.PoemEntry{Title: title, Text: "текст"})
	}
	return poems
}

func TestPickEmptyCandidates(t *testing.T) {
	p := NewPicker(rand.New(rand.NewSource(1)))

	_, err := p.Pick(nil, nil)
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("Pick() error = %v, want ErrNoContent", err)
	}
}

func TestPickAvoidsExclusions(t *testing.T) {
	p := NewPicker(rand.New(rand.NewSource(1)))
	candidates := poemSet("Няне", "Узник", "Осень")
	exclude := map[string]bool{"Няне": true, "Узник": true}

	for i := 0; i < 20; i++ {
		result, err := p.Pick(candidates, exclude)
		if err != nil {
			t.Fatalf("Pick() error = %v", err)
		}
		if result.Poem.Title != "Осень" {
			t.Fatalf("Pick() = %q, want the only unexcluded poem", result.Poem.Title)
		}
		if result.ExclusionReset {
			t.Fatal("ExclusionReset flagged while unexcluded candidates remain")
		}
	}
}

// Every candidate is returned exactly once before the exclusion set is
// exhausted; exhaustion flags a reset instead of failing.
func TestPickExhaustionResets(t *testing.T) {
	p := NewPicker(rand.New(rand.NewSource(42)))
	candidates := poemSet("Няне", "Узник", "Осень", "Кавказ")
	exclude := make(map[string]bool)

	seen := make(map[string]bool)
	for i := 0; i < len(candidates); i++ {
		result, err := p.Pick(candidates, exclude)
		if err != nil {
			t.Fatalf("Pick() error = %v", err)
		}
		if result.ExclusionReset {
			t.Fatalf("unexpected reset on pick %d", i)
		}
		if seen[result.Poem.Title] {
			t.Fatalf("poem %q picked twice before exhaustion", result.Poem.Title)
		}
		seen[result.Poem.Title] = true
		exclude[result.Poem.Title] = true
	}

	// All candidates excluded now: the next pick must reset, not fail.
	result, err := p.Pick(candidates, exclude)
	if err != nil {
		t.Fatalf("Pick() after exhaustion error = %v", err)
	}
	if !result.ExclusionReset {
		t.Fatal("expected ExclusionReset after full exhaustion")
	}
	if !seen[result.Poem.Title] {
		t.Fatalf("reset pick returned unknown poem %q", result.Poem.Title)
	}
}
