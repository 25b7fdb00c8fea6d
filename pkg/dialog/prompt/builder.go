// Package prompt builds the persona system prompt for the generative
// fallback. The prompt grounds the model in the author's style descriptor,
// key biographical facts and catalogued works so it stays factual.
package prompt

import (
	"fmt"
	"strings"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/pkg/content"
)

// BuildSystemPrompt renders the author profile and grouped works into the
// instruction block sent as the system message.
func BuildSystemPrompt(author *entity.Author, works []content.WorkGroup) string {
	var facts strings.Builder
	for i, item := range author.KeyFacts {
		if i > 0 {
			facts.WriteString("\n")
		}
		facts.WriteString(fmt.Sprintf("- %s: %s", item.Year, item.Fact))
	}

	var worksBlock strings.Builder
	for _, group := range works {
		if worksBlock.Len() > 0 {
			worksBlock.WriteString("\n")
		}
		worksBlock.WriteString(group.Category + ":")
		for _, work := range group.Works {
			year := ""
			if work.Year != nil {
				year = fmt.Sprintf(" (%d)", *work.Year)
			}
			worksBlock.WriteString(fmt.Sprintf("\n  • %s%s — %s", work.Title, year, work.Summary))
			if work.Excerpt != nil && *work.Excerpt != "" {
				worksBlock.WriteString(fmt.Sprintf("\n    Цитата: «%s»", *work.Excerpt))
			}
		}
	}

	return fmt.Sprintf(
		"%s\n\n"+
			"Главные факты биографии:\n%s\n\n"+
			"Краткая биографическая справка: %s\n\n"+
			"Произведения для упоминания:\n%s\n\n"+
			"Отвечай как живой %s, но не выдавай вымыслы, если их нет в фактах. "+
			"Поддерживай диалог, задавая встречные вопросы, когда уместно. "+
			"Сохраняй уважительный тон, не отклоняйся от исторического контекста XIX века.",
		author.StyleDescription,
		facts.String(),
		author.Bio,
		worksBlock.String(),
		author.Name,
	)
}
