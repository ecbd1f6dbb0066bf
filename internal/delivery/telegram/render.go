package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
	"github.com/aliskhannn/lingua-trainer-bot/internal/generator"
	"github.com/aliskhannn/lingua-trainer-bot/internal/lang"
	"github.com/aliskhannn/lingua-trainer-bot/internal/scoring"
	"github.com/aliskhannn/lingua-trainer-bot/internal/service"
	"github.com/aliskhannn/lingua-trainer-bot/internal/srs"
)

// renderRound formats the question message for one practice round.
func renderRound(round *entities.PracticeRound, sel *srs.Selection, settings *entities.UserSettings) string {
	var b strings.Builder

	if cat, ok := generator.Category(sel.GrammarID); ok {
		fmt.Fprintf(&b, "📌 <b>%s</b>", esc(cat.Name))
		if sel.Reason != "" {
			fmt.Fprintf(&b, " · <i>%s</i>", esc(sel.Reason))
		}
		b.WriteString("\n\n")
	}

	switch round.Question.Type {
	case entities.QuestionRespond:
		fmt.Fprintf(&b, "💬 Respond in %s:\n\n<b>%s</b>", esc(lang.Name(settings.TargetLang)), esc(round.DisplayText))
		if round.Question.RespondWithHint != "" {
			b.WriteString("\n\n<i>Stuck? /hint will tell you what to respond with.</i>")
		}
	default:
		fmt.Fprintf(&b, "✍️ Translate to %s:\n\n<b>%s</b>", esc(lang.Name(settings.TargetLang)), esc(round.DisplayText))
	}

	if round.Streak >= 3 {
		fmt.Fprintf(&b, "\n\n🔥 Streak: %d", round.Streak)
	}
	return b.String()
}

// renderFeedback formats the answer verdict: similarity, a word-by-word
// diff, the schedule update, and the session counters.
func renderFeedback(result *service.CheckResult) string {
	var b strings.Builder

	switch {
	case result.Similarity >= 95:
		fmt.Fprintf(&b, "🎉 Perfect! <b>%d%%</b>", result.Similarity)
	case result.Passed:
		fmt.Fprintf(&b, "✅ Good! <b>%d%%</b>", result.Similarity)
	case result.Similarity >= 50:
		fmt.Fprintf(&b, "🤏 Almost — <b>%d%%</b>", result.Similarity)
	default:
		fmt.Fprintf(&b, "❌ Not quite — <b>%d%%</b>", result.Similarity)
	}

	if diff := renderDiff(result.Diff, result.Missing); diff != "" {
		b.WriteString("\n\n")
		b.WriteString(diff)
	}

	if result.Similarity < 100 {
		fmt.Fprintf(&b, "\n\nExpected:\n<b>%s</b>", esc(result.BestMatch))
	}
	if len(result.AllResponses) > 1 {
		b.WriteString("\n\nAlso accepted:")
		for _, r := range result.AllResponses[1:] {
			fmt.Fprintf(&b, "\n• %s", esc(r))
		}
	}

	if result.Review.GrammarID != "" {
		name := result.Review.GrammarID
		if cat, ok := generator.Category(result.Review.GrammarID); ok {
			name = cat.Name
		}
		fmt.Fprintf(&b, "\n\n%s %s — %s",
			srs.StatusIcon(result.Review.Status),
			esc(name),
			esc(srs.FormatNextReview(&result.Review.NextReview, time.Now())))
	}

	fmt.Fprintf(&b, "\nScore: %d", result.Score)
	if result.Streak > 1 {
		fmt.Fprintf(&b, " · 🔥 %d in a row", result.Streak)
	}
	return b.String()
}

// renderDiff lays the submission out word by word: correct words plain,
// near misses underlined with the intended word, extras struck through.
func renderDiff(tokens []scoring.DiffToken, missing []string) string {
	if len(tokens) == 0 && len(missing) == 0 {
		return ""
	}

	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		switch t.Class {
		case scoring.DiffClose:
			parts = append(parts, fmt.Sprintf("<u>%s</u> (→ %s)", esc(t.Token), esc(t.Suggestion)))
		case scoring.DiffExtra:
			parts = append(parts, "<s>"+esc(t.Token)+"</s>")
		default:
			parts = append(parts, esc(t.Token))
		}
	}

	out := strings.Join(parts, " ")
	if len(missing) > 0 {
		out += "\nMissing: <b>" + esc(strings.Join(missing, ", ")) + "</b>"
	}
	return out
}

func renderGrammarList(level entities.Level, list []srs.GrammarStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 <b>%s progress</b>\n", level)

	now := time.Now()
	for _, g := range list {
		fmt.Fprintf(&b, "\n%s <b>%s</b> — %s", srs.StatusIcon(g.Status), esc(g.Name), esc(srs.FormatNextReview(g.NextReview, now)))
		if g.Attempts > 0 {
			fmt.Fprintf(&b, " (%d%% of %d)", g.Accuracy, g.Attempts)
		}
	}

	b.WriteString("\n\n★ mastered · ↻ reviewing · ◐ learning · ○ new")
	return b.String()
}

func renderOverallStats(stats srs.OverallStats) string {
	var b strings.Builder
	b.WriteString("📊 <b>Your statistics</b>\n")

	fmt.Fprintf(&b, "\n★ Mastered: %d", stats.Mastered)
	fmt.Fprintf(&b, "\n↻ Reviewing: %d", stats.Reviewing)
	fmt.Fprintf(&b, "\n◐ Learning: %d", stats.Learning)
	fmt.Fprintf(&b, "\n○ Not started: %d", stats.New)

	fmt.Fprintf(&b, "\n\n⏰ Due today: %d", stats.DueToday)
	if stats.OverdueCount > 0 {
		fmt.Fprintf(&b, " (%d overdue)", stats.OverdueCount)
	}

	if stats.TotalReviews > 0 {
		fmt.Fprintf(&b, "\n🎯 Accuracy: %d%% over %d reviews", stats.Accuracy, stats.TotalReviews)
		fmt.Fprintf(&b, "\n📈 Average ease: %.2f", stats.AverageEaseFactor)
	} else {
		b.WriteString("\n\nNo reviews yet — try /practice!")
	}
	return b.String()
}

func renderWordInfo(info *service.WordInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📖 <b>%s</b>", esc(info.Word))
	if info.Phonetic != "" {
		fmt.Fprintf(&b, " %s", esc(info.Phonetic))
	}

	for _, d := range info.Definitions {
		fmt.Fprintf(&b, "\n\n<i>%s</i>\n%s", esc(d.PartOfSpeech), esc(d.Definition))
		if d.Example != "" {
			fmt.Fprintf(&b, "\n<i>“%s”</i>", esc(d.Example))
		}
	}

	if len(info.Synonyms) > 0 {
		fmt.Fprintf(&b, "\n\nSynonyms: %s", esc(strings.Join(info.Synonyms, ", ")))
	}

	if len(info.Translations) > 0 {
		b.WriteString("\n")
		for code, text := range info.Translations {
			fmt.Fprintf(&b, "\n%s: <b>%s</b>", esc(lang.Name(code)), esc(text))
		}
	}
	return b.String()
}

func renderSettings(settings *entities.UserSettings) string {
	return fmt.Sprintf(
		"⚙️ <b>Settings</b>\n\nLevel: <b>%s</b>\nNative language: <b>%s</b>\nTarget language: <b>%s</b>\n\nWhat would you like to change?",
		settings.Level,
		esc(lang.Name(settings.NativeLang)),
		esc(lang.Name(settings.TargetLang)),
	)
}
