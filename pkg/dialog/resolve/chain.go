// Package resolve implements the tiered content resolution chain tried after
// state machine interception. Scripted, authoritative content always wins
// over generative text, so the chain is strict precedence with first match
// taking the turn: poem text, poem listing intent, character insight, FAQ.
// Only a full miss delegates to the generative fallback, which the caller
// invokes.
package resolve

import (
	"fmt"
	"strings"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/pkg/content"
	"ai-writerbot-be/pkg/dialog/match"
)

// Result is the chain's verdict. Matched=false means no scripted content
// applied and the caller must fall back to generation.
type Result struct {
	Matched bool
	Reply   string
	Source  string
}

// Resolve runs the normalized message through the precedence chain against
// the author's content snapshot.
func Resolve(snap *content.Snapshot, normalized string) Result {
	// 1. A specific poem request beats the generic listing intent below:
	// the listing phrases "расскажи" and "стих" routinely appear inside
	// requests that also name a poem.
	for _, poem := range snap.Poems {
		if match.ContainsAny(normalized, poem.Keywords) {
			return Result{
				Matched: true,
				Reply:   fmt.Sprintf("%s\n\n%s", poem.Title, poem.Text),
				Source:  entity.TurnSourcePoem,
			}
		}
	}

	// 2. Listing intent.
	if strings.Contains(normalized, "расскажи") && strings.Contains(normalized, "стих") {
		titles := make([]string, 0, len(snap.Poems))
		for _, poem := range snap.Poems {
			titles = append(titles, poem.Title)
		}
		return Result{
			Matched: true,
			Reply: fmt.Sprintf(
				"Могу рассказать стихи: %s. Уточните, какой вам нужен.",
				strings.Join(titles, ", "),
			),
			Source: entity.TurnSourcePoemListing,
		}
	}

	// 3. Character insight.
	for _, char := range snap.Characters {
		if match.ContainsAny(normalized, char.Keywords) {
			return Result{
				Matched: true,
				Reply:   fmt.Sprintf("%s: %s", char.Name, char.Description),
				Source:  entity.TurnSourceCharacter,
			}
		}
	}

	// 4. FAQ.
	for _, faq := range snap.Faq {
		if match.ContainsAny(normalized, faq.Keywords) {
			return Result{
				Matched: true,
				Reply:   faq.Answer,
				Source:  entity.TurnSourceFaq,
			}
		}
	}

	return Result{}
}
